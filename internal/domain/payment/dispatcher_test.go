//go:build unit

package payment_test

import (
	"testing"

	"interpreting-payments/internal/domain/payment"
	"interpreting-payments/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	t.Run("authorization", func(t *testing.T) {
		ctx := builder.NewPaymentContextBuilder().BuildAuthorization()

		op := payment.DecideAuthorization(ctx)

		assert.Equal(t, payment.OperationAuthorization, op.Kind())
		assert.Equal(t, "individual-stripe-auth", op.StrategyName())
		assert.True(t, op.IsExecutable())
		assert.True(t, op.Validation().Valid)
		assert.Equal(t, ctx, op.Context)
	})

	t.Run("validation failure is a value", func(t *testing.T) {
		ctx := builder.NewPaymentContextBuilder().With(func(b *builder.PaymentContextBuilder) {
			b.Currency = ""
			b.PaymentMethod = nil
		}).BuildAuthorization()

		op := payment.DecideAuthorization(ctx)

		assert.Equal(t, payment.AuthorizationStrategyValidationFailed, op.Strategy)
		assert.False(t, op.IsExecutable())
		assert.False(t, op.Validation().Valid)
		assert.ElementsMatch(t, []string{"currency is required", "payment method is required"}, op.Validation().Errors)
	})

	t.Run("deferred authorization ignores the corporate balance", func(t *testing.T) {
		ctx := builder.NewPaymentContextBuilder().With(func(b *builder.PaymentContextBuilder) {
			b.AsCorporate(payment.FundingSourceDepositCharge).AppointmentIn(tenDays)
			deposit := payment.NewDepositChargeContext(decimal.NewFromInt(10), decimal.NewFromInt(66), payment.DefaultLowBalancePercent)
			b.DepositCharge = &deposit
		}).BuildAuthorization()

		op := payment.DecideAuthorization(ctx)

		assert.Equal(t, payment.AuthorizationStrategyWaitListRedirect, op.Strategy)
		assert.True(t, op.Validation().Valid)
	})

	t.Run("funding failure reports the funding error", func(t *testing.T) {
		ctx := builder.NewPaymentContextBuilder().With(func(b *builder.PaymentContextBuilder) {
			b.AsCorporate(payment.FundingSourceDepositCharge)
			deposit := payment.NewDepositChargeContext(decimal.NewFromInt(10), decimal.NewFromInt(66), payment.DefaultLowBalancePercent)
			b.DepositCharge = &deposit
		}).BuildAuthorization()

		op := payment.DecideAuthorization(ctx)

		assert.Equal(t, payment.AuthorizationStrategyValidationFailed, op.Strategy)
		assert.False(t, op.Validation().Valid)
		assert.Equal(t, []string{"insufficient deposit balance"}, op.Validation().Errors)
	})

	t.Run("non-executable strategies", func(t *testing.T) {
		cancel := payment.DecideAuthorizationCancel(builder.NewPaymentContextBuilder().WithPayment(payment.StatusCaptured).BuildAuthorizationCancel())
		assert.Equal(t, payment.OperationAuthorizationCancel, cancel.Kind())
		assert.Equal(t, payment.AuthorizationCancelStrategyNotAllowed, cancel.Strategy)
		assert.True(t, cancel.Validation().Valid)
		assert.False(t, cancel.IsExecutable())

		transfer := payment.DecideTransfer(builder.NewPaymentContextBuilder().
			AsCorporate(payment.FundingSourceDepositCharge).
			WithPayment(payment.StatusAuthorized).
			SameCompany().
			BuildTransfer())
		assert.Equal(t, payment.OperationTransfer, transfer.Kind())
		assert.Equal(t, payment.TransferStrategyNoTransferRequired, transfer.Strategy)
		assert.False(t, transfer.IsExecutable())
	})
}

// Every selector returns a member of its enum for any well-typed context, including zero values.
func TestDecide_Totality(t *testing.T) {
	var ops []payment.ProcessOperation

	authorizations := []payment.AuthorizationContext{
		{},
		{ClientType: payment.ClientTypeCorporate, Currency: "AUD"},
		{ClientType: payment.ClientTypeCorporate, Currency: "AUD", Company: &payment.CompanyContext{}},
		{ClientType: "government", Currency: "AUD"},
		builder.NewPaymentContextBuilder().BuildAuthorization(),
	}
	for _, c := range authorizations {
		ops = append(ops, payment.DecideAuthorization(c))
	}

	cancels := []payment.AuthorizationCancelContext{
		{},
		{ClientType: payment.ClientTypeCorporate, ExistingPayment: &payment.PaymentSnapshot{}},
		{ClientType: payment.ClientTypeIndividual, ExistingPayment: &payment.PaymentSnapshot{Status: "unknown"}},
	}
	for _, c := range cancels {
		ops = append(ops, payment.DecideAuthorizationCancel(c))
	}

	recreates := []payment.AuthorizationRecreateContext{
		{},
		{ClientType: payment.ClientTypeCorporate, ExistingPayment: &payment.PaymentSnapshot{}},
		builder.NewPaymentContextBuilder().WithPayment(payment.StatusPending).BuildAuthorizationRecreate(),
	}
	for _, c := range recreates {
		ops = append(ops, payment.DecideAuthorizationRecreate(c))
	}

	captures := []payment.CaptureContext{
		{},
		{ClientType: payment.ClientTypeCorporate, ExistingPayment: &payment.PaymentSnapshot{}},
		{Commission: &payment.CommissionContext{IsSameCompany: true}},
	}
	for _, c := range captures {
		ops = append(ops, payment.DecideCapture(c))
	}

	transfers := []payment.TransferContext{
		{},
		{ExistingPayment: &payment.PaymentSnapshot{}},
		{ExistingPayment: &payment.PaymentSnapshot{Status: payment.StatusCaptured}, Prices: builder.NewPaymentContextBuilder().Prices},
	}
	for _, c := range transfers {
		ops = append(ops, payment.DecideTransfer(c))
	}

	for i, op := range ops {
		require.NotEmpty(t, op.StrategyName(), "operation %d", i)
		assert.True(t, op.Kind().IsValid(), "operation %d", i)
		if !op.Validation().Valid {
			assert.Equal(t, "validation-failed", op.StrategyName(), "operation %d", i)
			assert.NotEmpty(t, op.Validation().Errors, "operation %d", i)
		}
	}
}
