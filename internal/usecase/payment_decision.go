package usecase

import (
	"context"
	"log/slog"
	"time"

	"interpreting-payments/internal/domain/payment"
	"interpreting-payments/internal/domain/pricing"
	"interpreting-payments/internal/pkg/clock"
	"interpreting-payments/internal/pkg/config"
	applog "interpreting-payments/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDecisionUseCase selects the strategy for each payment lifecycle operation and logs
// every decision, including validation failures.
type PaymentDecisionUseCase interface {
	Authorization(ctx context.Context, c payment.AuthorizationContext) payment.ProcessOperation
	AuthorizationCancel(ctx context.Context, c payment.AuthorizationCancelContext) payment.ProcessOperation
	AuthorizationRecreate(ctx context.Context, c payment.AuthorizationRecreateContext) payment.ProcessOperation
	Capture(ctx context.Context, c payment.CaptureContext) payment.ProcessOperation
	Transfer(ctx context.Context, c payment.TransferContext) payment.ProcessOperation

	TimingContext(appointmentStart time.Time) payment.TimingContext
	DepositChargeContext(balance, required decimal.Decimal) payment.DepositChargeContext
	PostPaymentCreditContext(limit, used, required decimal.Decimal) payment.PostPaymentCreditContext
	CommissionContext(clientCompanyID, interpreterCompanyID uuid.UUID, prices *pricing.Result) payment.CommissionContext
}

type paymentDecisionUseCaseImpl struct {
	clock             clock.Clock
	logger            *slog.Logger
	timingPolicy      payment.TimingPolicy
	lowBalancePercent decimal.Decimal
}

func NewPaymentDecisionUseCase(clock clock.Clock, logger *slog.Logger, cfg config.Config) PaymentDecisionUseCase {
	policy := payment.DefaultTimingPolicy()
	if cfg.Payment.WaitListThreshold > 0 {
		policy.WaitListThreshold = cfg.Payment.WaitListThreshold
	}
	if cfg.Payment.TooLateLeadTime > 0 {
		policy.TooLateLeadTime = cfg.Payment.TooLateLeadTime
	}
	lowBalance := payment.DefaultLowBalancePercent
	if cfg.Payment.LowBalancePercent.IsPositive() {
		lowBalance = cfg.Payment.LowBalancePercent
	}

	return &paymentDecisionUseCaseImpl{
		clock:             clock,
		logger:            logger,
		timingPolicy:      policy,
		lowBalancePercent: lowBalance,
	}
}

func (p *paymentDecisionUseCaseImpl) Authorization(ctx context.Context, c payment.AuthorizationContext) payment.ProcessOperation {
	op := payment.DecideAuthorization(c)
	p.logDecision(ctx, op, c.AppointmentID,
		slog.String("client_type", c.ClientType.String()),
		slog.Bool("has_existing_payment", c.ExistingPayment != nil),
		slog.Bool("too_late_for_payment", c.Timing.IsTooLateForPayment),
		slog.Bool("beyond_wait_list_threshold", c.Timing.IsBeyondWaitListThreshold),
	)
	return op
}

func (p *paymentDecisionUseCaseImpl) AuthorizationCancel(ctx context.Context, c payment.AuthorizationCancelContext) payment.ProcessOperation {
	op := payment.DecideAuthorizationCancel(c)
	p.logDecision(ctx, op, c.AppointmentID,
		slog.String("client_type", c.ClientType.String()),
		slog.String("payment_status", paymentStatus(c.ExistingPayment)),
	)
	return op
}

func (p *paymentDecisionUseCaseImpl) AuthorizationRecreate(ctx context.Context, c payment.AuthorizationRecreateContext) payment.ProcessOperation {
	op := payment.DecideAuthorizationRecreate(c)
	p.logDecision(ctx, op, c.AppointmentID,
		slog.String("client_type", c.ClientType.String()),
		slog.String("payment_status", paymentStatus(c.ExistingPayment)),
		slog.Bool("beyond_wait_list_threshold", c.Timing.IsBeyondWaitListThreshold),
	)
	return op
}

func (p *paymentDecisionUseCaseImpl) Capture(ctx context.Context, c payment.CaptureContext) payment.ProcessOperation {
	op := payment.DecideCapture(c)
	p.logDecision(ctx, op, c.AppointmentID,
		slog.String("client_type", c.ClientType.String()),
		slog.String("payment_status", paymentStatus(c.ExistingPayment)),
		slog.Bool("same_company", c.Commission != nil && c.Commission.IsSameCompany),
	)
	return op
}

func (p *paymentDecisionUseCaseImpl) Transfer(ctx context.Context, c payment.TransferContext) payment.ProcessOperation {
	op := payment.DecideTransfer(c)
	p.logDecision(ctx, op, c.AppointmentID,
		slog.String("payment_status", paymentStatus(c.ExistingPayment)),
		slog.String("payout_method", c.Interpreter.PayoutMethod.String()),
		slog.Bool("second_attempt", c.IsSecondAttempt),
	)
	return op
}

func (p *paymentDecisionUseCaseImpl) TimingContext(appointmentStart time.Time) payment.TimingContext {
	return payment.NewTimingContext(p.clock.Now(), appointmentStart, p.timingPolicy)
}

func (p *paymentDecisionUseCaseImpl) DepositChargeContext(balance, required decimal.Decimal) payment.DepositChargeContext {
	return payment.NewDepositChargeContext(balance, required, p.lowBalancePercent)
}

func (p *paymentDecisionUseCaseImpl) PostPaymentCreditContext(limit, used, required decimal.Decimal) payment.PostPaymentCreditContext {
	return payment.NewPostPaymentCreditContext(limit, used, required)
}

func (p *paymentDecisionUseCaseImpl) CommissionContext(clientCompanyID, interpreterCompanyID uuid.UUID, prices *pricing.Result) payment.CommissionContext {
	return payment.NewCommissionContext(clientCompanyID, interpreterCompanyID, prices)
}

func (p *paymentDecisionUseCaseImpl) logDecision(ctx context.Context, op payment.ProcessOperation, appointmentID uuid.UUID, attrs ...slog.Attr) {
	v := op.Validation()
	all := append([]slog.Attr{
		slog.String("decision_id", applog.NewDecisionID(p.clock.Now())),
		slog.String("operation", op.Kind().String()),
		slog.String("strategy", op.StrategyName()),
		slog.Bool("executable", op.IsExecutable()),
		slog.String("appointment_id", appointmentID.String()),
	}, attrs...)

	level := slog.LevelInfo
	if !v.Valid {
		level = slog.LevelWarn
		all = append(all, slog.Any("validation_errors", v.Errors))
	}
	p.logger.LogAttrs(ctx, level, "payment strategy selected", all...)
}

func paymentStatus(s *payment.PaymentSnapshot) string {
	if s == nil {
		return "none"
	}
	return s.Status.String()
}
