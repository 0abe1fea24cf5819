package bootstrap

import (
	"log/slog"

	"interpreting-payments/internal/pkg/config"
	"interpreting-payments/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return logger.New(cfg.Log)
}
