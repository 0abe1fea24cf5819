package usecase

import (
	"context"
	"log/slog"

	"interpreting-payments/internal/domain/pricing"
	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/infra"
	"interpreting-payments/internal/pkg/clock"
	"interpreting-payments/internal/pkg/config"
	"interpreting-payments/internal/pkg/errs"
	applog "interpreting-payments/internal/pkg/logger"
	"interpreting-payments/internal/usecase/readmodel"
	"interpreting-payments/internal/usecase/request"

	"github.com/jinzhu/copier"
)

var (
	ErrRateCardNotFound = errs.New("no active rate card")

	// Error markers for categorization
	ErrQuoteFailed         = errs.ErrQuoteFailed
	ErrRateLoadFailed      = errs.ErrRateLoadFailed
	ErrInvalidQuoteRequest = errs.ErrInvalidQuoteRequest
)

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/mock_$GOFILE -package=usecasemock

type RateRepository interface {
	FindActive(ctx context.Context) ([]rate.Rate, error)
}

type QuoteUseCase interface {
	Quote(ctx context.Context, req request.QuoteRequest) (*readmodel.QuoteRM, error)
}

type quoteUseCaseImpl struct {
	rateRepo     RateRepository
	clock        clock.Clock
	logger       *slog.Logger
	maxExtraDays int
}

func NewQuoteUseCase(
	rateRepo RateRepository,
	clock clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) QuoteUseCase {
	return &quoteUseCaseImpl{
		rateRepo:     rateRepo,
		clock:        clock,
		logger:       logger,
		maxExtraDays: cfg.Payment.MaxExtraDays,
	}
}

func (q *quoteUseCaseImpl) Quote(ctx context.Context, req request.QuoteRequest) (*readmodel.QuoteRM, error) {
	decisionID := applog.NewDecisionID(q.clock.Now())
	logger := q.logger.With(slog.String("decision_id", decisionID))

	cfg, typ, err := req.ToDomain()
	if err != nil {
		logger.WarnContext(ctx, "invalid quote request", slog.Any("error", err))
		return nil, errs.Mark(err, ErrInvalidQuoteRequest)
	}

	table, err := q.loadRateTable(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load rate card", slog.Any("error", err))
		return nil, err
	}

	svc := pricing.NewService(table, pricing.WithMaxExtraDays(q.maxExtraDays))
	result, steps, err := q.calculate(svc, cfg, typ)
	if err != nil {
		logger.WarnContext(ctx, "quote calculation failed",
			slog.String("calculation_type", typ.String()),
			slog.Bool("configuration_error", errs.IsConfiguration(err)),
			slog.Any("error", err),
		)
		return nil, errs.Mark(err, ErrQuoteFailed)
	}

	rm := &readmodel.QuoteRM{}
	if err := copier.Copy(rm, result); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to map quote result"), ErrQuoteFailed)
	}
	if len(steps) > 0 {
		if err := copier.Copy(&rm.AuditSteps, &steps); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to map audit steps"), ErrQuoteFailed)
		}
	}
	rm.DecisionID = decisionID

	logger.InfoContext(ctx, "quote calculated",
		slog.String("calculation_type", rm.CalculationType),
		slog.Int("billable_duration", rm.BillableDuration),
		slog.Int("blocks", len(rm.Blocks)),
		slog.String("scenario", rm.Scenario),
		slog.String("client_full_amount", rm.ClientFullAmount.String()),
		slog.String("interpreter_full_amount", rm.InterpreterFullAmount.String()),
		slog.Bool("discounted", rm.AppliedDiscounts != nil),
	)
	return rm, nil
}

func (q *quoteUseCaseImpl) calculate(svc *pricing.Service, cfg pricing.Config, typ pricing.CalculationType) (*pricing.Result, []pricing.AuditStep, error) {
	if typ == pricing.CalculationTypeDetailedBreakdown {
		b, err := svc.CalculateDetailed(cfg)
		if err != nil {
			return nil, nil, err
		}
		return b.Result, b.Steps, nil
	}
	res, err := svc.Calculate(cfg, typ)
	return res, nil, err
}

func (q *quoteUseCaseImpl) loadRateTable(ctx context.Context) (*rate.Table, error) {
	rows, err := q.rateRepo.FindActive(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrRateCardNotFound, ErrRateLoadFailed)
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to find rates"), ErrRateLoadFailed)
	}

	table, err := rate.NewTable(rows)
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, errs.ErrConfiguration), ErrRateLoadFailed)
	}
	return table, nil
}
