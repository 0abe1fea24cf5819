//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"interpreting-payments/internal/domain/payment"
	"interpreting-payments/internal/pkg/clock"
	"interpreting-payments/internal/pkg/config"
	"interpreting-payments/internal/usecase"
	"interpreting-payments/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentDecisionUseCase(t *testing.T, cfg config.Config) (usecase.PaymentDecisionUseCase, *bytes.Buffer, *clock.MockClock) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	clk := clock.NewMockClock(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
	return usecase.NewPaymentDecisionUseCase(clk, logger, cfg), &buf, clk
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestPaymentDecisionUseCase_Decisions(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		decide     func(usecase.PaymentDecisionUseCase) payment.ProcessOperation
		kind       payment.Operation
		strategy   string
		executable bool
	}{
		{
			name: "authorization",
			decide: func(uc usecase.PaymentDecisionUseCase) payment.ProcessOperation {
				return uc.Authorization(ctx, builder.NewPaymentContextBuilder().BuildAuthorization())
			},
			kind:       payment.OperationAuthorization,
			strategy:   "individual-stripe-auth",
			executable: true,
		},
		{
			name: "authorization cancel",
			decide: func(uc usecase.PaymentDecisionUseCase) payment.ProcessOperation {
				return uc.AuthorizationCancel(ctx, builder.NewPaymentContextBuilder().
					WithPayment(payment.StatusCaptured).BuildAuthorizationCancel())
			},
			kind:       payment.OperationAuthorizationCancel,
			strategy:   "authorization-cancel-not-allowed",
			executable: false,
		},
		{
			name: "authorization recreate",
			decide: func(uc usecase.PaymentDecisionUseCase) payment.ProcessOperation {
				return uc.AuthorizationRecreate(ctx, builder.NewPaymentContextBuilder().
					WithPayment(payment.StatusAuthorized).BuildAuthorizationRecreate())
			},
			kind:       payment.OperationAuthorizationRecreate,
			strategy:   "individual-cancel-and-reauthorize",
			executable: true,
		},
		{
			name: "capture",
			decide: func(uc usecase.PaymentDecisionUseCase) payment.ProcessOperation {
				return uc.Capture(ctx, builder.NewPaymentContextBuilder().
					AsCorporate(payment.FundingSourceDepositCharge).
					WithPayment(payment.StatusAuthorized).
					SameCompany().
					BuildCapture())
			},
			kind:       payment.OperationCapture,
			strategy:   "same-company-commission",
			executable: true,
		},
		{
			name: "transfer",
			decide: func(uc usecase.PaymentDecisionUseCase) payment.ProcessOperation {
				return uc.Transfer(ctx, builder.NewPaymentContextBuilder().
					WithPayment(payment.StatusCaptured).BuildTransfer())
			},
			kind:       payment.OperationTransfer,
			strategy:   "individual-platform-account-transfer",
			executable: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, buf, _ := newPaymentDecisionUseCase(t, config.NewTestConfig())

			op := tc.decide(uc)

			assert.Equal(t, tc.kind, op.Kind())
			assert.Equal(t, tc.strategy, op.StrategyName())
			assert.Equal(t, tc.executable, op.IsExecutable())
			assert.True(t, op.Validation().Valid)

			lines := decodeLogLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "INFO", lines[0]["level"])
			assert.Equal(t, tc.kind.String(), lines[0]["operation"])
			assert.Equal(t, tc.strategy, lines[0]["strategy"])
			assert.Equal(t, tc.executable, lines[0]["executable"])
			assert.NotEmpty(t, lines[0]["decision_id"])
			assert.NotContains(t, lines[0], "validation_errors")
		})
	}
}

func TestPaymentDecisionUseCase_ValidationFailureIsLogged(t *testing.T) {
	uc, buf, _ := newPaymentDecisionUseCase(t, config.NewTestConfig())

	op := uc.Capture(context.Background(), builder.NewPaymentContextBuilder().BuildCapture())

	assert.Equal(t, "validation-failed", op.StrategyName())
	assert.False(t, op.IsExecutable())

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "none", lines[0]["payment_status"])
	assert.Equal(t, []any{"payment is required"}, lines[0]["validation_errors"])
}

func TestPaymentDecisionUseCase_TimingContext(t *testing.T) {
	t.Run("default policy", func(t *testing.T) {
		uc, _, clk := newPaymentDecisionUseCase(t, config.Config{})

		far := uc.TimingContext(clk.Now().Add(10 * 24 * time.Hour))
		assert.True(t, far.IsBeyondWaitListThreshold)
		assert.False(t, far.IsTooLateForPayment)

		soon := uc.TimingContext(clk.Now().Add(time.Hour))
		assert.False(t, soon.IsBeyondWaitListThreshold)
		assert.True(t, soon.IsTooLateForPayment)
		assert.Equal(t, time.Hour, soon.TimeUntilAppointment)
	})

	t.Run("configured policy", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Payment.WaitListThreshold = 48 * time.Hour
		cfg.Payment.TooLateLeadTime = 30 * time.Minute
		uc, _, clk := newPaymentDecisionUseCase(t, cfg)

		timing := uc.TimingContext(clk.Now().Add(72 * time.Hour))
		assert.True(t, timing.IsBeyondWaitListThreshold)

		timing = uc.TimingContext(clk.Now().Add(time.Hour))
		assert.False(t, timing.IsTooLateForPayment)
	})

	t.Run("follows the clock", func(t *testing.T) {
		uc, _, clk := newPaymentDecisionUseCase(t, config.NewTestConfig())
		start := clk.Now().Add(8 * 24 * time.Hour)

		assert.True(t, uc.TimingContext(start).IsBeyondWaitListThreshold)

		clk.Add(2 * 24 * time.Hour)
		assert.False(t, uc.TimingContext(start).IsBeyondWaitListThreshold)
	})
}

func TestPaymentDecisionUseCase_FinancialContexts(t *testing.T) {
	t.Run("deposit uses the configured low balance percentage", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Payment.LowBalancePercent = decimal.NewFromInt(50)
		uc, _, _ := newPaymentDecisionUseCase(t, cfg)

		deposit := uc.DepositChargeContext(decimal.NewFromInt(100), decimal.NewFromInt(60))

		assert.True(t, deposit.IsBalanceSufficient)
		assert.True(t, deposit.IsLowBalance)
		assert.True(t, decimal.NewFromInt(40).Equal(deposit.BalanceAfterCharge))
	})

	t.Run("deposit with the default low balance percentage", func(t *testing.T) {
		uc, _, _ := newPaymentDecisionUseCase(t, config.Config{})

		deposit := uc.DepositChargeContext(decimal.NewFromInt(100), decimal.NewFromInt(60))
		assert.False(t, deposit.IsLowBalance)

		deposit = uc.DepositChargeContext(decimal.NewFromInt(100), decimal.NewFromInt(95))
		assert.True(t, deposit.IsLowBalance)

		deposit = uc.DepositChargeContext(decimal.NewFromInt(50), decimal.NewFromInt(60))
		assert.False(t, deposit.IsBalanceSufficient)
	})

	t.Run("post-payment credit", func(t *testing.T) {
		uc, _, _ := newPaymentDecisionUseCase(t, config.NewTestConfig())

		credit := uc.PostPaymentCreditContext(decimal.NewFromInt(500), decimal.NewFromInt(400), decimal.NewFromInt(100))
		assert.True(t, credit.IsWithinLimit)
		assert.True(t, decimal.NewFromInt(100).Equal(credit.Remaining))

		credit = uc.PostPaymentCreditContext(decimal.NewFromInt(500), decimal.NewFromInt(400), decimal.RequireFromString("100.01"))
		assert.False(t, credit.IsWithinLimit)
	})

	t.Run("commission", func(t *testing.T) {
		uc, _, _ := newPaymentDecisionUseCase(t, config.NewTestConfig())
		companyID := uuid.New()
		prices := builder.NewPaymentContextBuilder().Prices

		same := uc.CommissionContext(companyID, companyID, prices)
		assert.True(t, same.IsSameCompany)
		assert.True(t, same.HasAmounts)
		assert.True(t, decimal.NewFromInt(10).Equal(same.CommissionAmount))

		assert.False(t, uc.CommissionContext(companyID, uuid.New(), prices).IsSameCompany)
		assert.False(t, uc.CommissionContext(uuid.Nil, uuid.Nil, prices).IsSameCompany)
		assert.False(t, uc.CommissionContext(companyID, companyID, nil).HasAmounts)
	})
}
