package components

import (
	"interpreting-payments/internal/pkg/clock"
	"interpreting-payments/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewQuoteUseCase,
		usecase.NewPaymentDecisionUseCase,
	),
)
