//go:build unit || e2e

package builder

import (
	"time"

	"interpreting-payments/internal/domain/payment"
	"interpreting-payments/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentContextBuilder holds the fields shared by every payment operation context. The
// defaults describe an individual client with a card, an appointment one day out and a price.
type PaymentContextBuilder struct {
	Now               time.Time
	AppointmentID     uuid.UUID
	ClientType        payment.ClientType
	Currency          string
	PaymentMethod     *payment.PaymentMethodSnapshot
	ExistingPayment   *payment.PaymentSnapshot
	Prices            *pricing.Result
	Timing            payment.TimingContext
	WaitList          payment.WaitListContext
	Company           *payment.CompanyContext
	DepositCharge     *payment.DepositChargeContext
	PostPaymentCredit *payment.PostPaymentCreditContext
	Commission        *payment.CommissionContext
	Interpreter       payment.InterpreterPayoutContext
	IsSecondAttempt   bool
}

func NewPaymentContextBuilder() *PaymentContextBuilder {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	return &PaymentContextBuilder{
		Now:           now,
		AppointmentID: uuid.New(),
		ClientType:    payment.ClientTypeIndividual,
		Currency:      "AUD",
		PaymentMethod: &payment.PaymentMethodSnapshot{
			ID:       "pm_test",
			Brand:    "visa",
			ExpireAt: now.AddDate(2, 0, 0),
		},
		Prices: &pricing.Result{
			CalculationType:       pricing.CalculationTypeAppointmentStartPrice,
			ClientAmount:          decimal.RequireFromString("60.00"),
			ClientGSTAmount:       decimal.RequireFromString("6.00"),
			ClientFullAmount:      decimal.RequireFromString("66.00"),
			InterpreterAmount:     decimal.RequireFromString("50.00"),
			InterpreterGSTAmount:  decimal.RequireFromString("5.00"),
			InterpreterFullAmount: decimal.RequireFromString("55.00"),
			CommissionAmount:      decimal.RequireFromString("10.00"),
			CommissionGSTAmount:   decimal.RequireFromString("1.00"),
			BillableDuration:      30,
		},
		Timing: payment.NewTimingContext(now, now.Add(24*time.Hour), payment.DefaultTimingPolicy()),
		Interpreter: payment.InterpreterPayoutContext{
			InterpreterID:   uuid.New(),
			PayoutMethod:    payment.PayoutMethodPlatformAccount,
			PayoutAccountID: "acct_test",
			PayoutsEnabled:  true,
		},
	}
}

func (b *PaymentContextBuilder) With(mutate func(*PaymentContextBuilder)) *PaymentContextBuilder {
	mutate(b)
	return b
}

// AppointmentIn moves the appointment start to d after Now.
func (b *PaymentContextBuilder) AppointmentIn(d time.Duration) *PaymentContextBuilder {
	b.Timing = payment.NewTimingContext(b.Now, b.Now.Add(d), payment.DefaultTimingPolicy())
	return b
}

func (b *PaymentContextBuilder) WithPayment(status payment.Status) *PaymentContextBuilder {
	b.ExistingPayment = &payment.PaymentSnapshot{
		ID:         uuid.New(),
		Status:     status,
		Amount:     decimal.RequireFromString("66.00"),
		Currency:   b.Currency,
		ExternalID: "pi_test",
	}
	return b
}

// AsCorporate turns the client into a company funded by source with enough balance or credit.
func (b *PaymentContextBuilder) AsCorporate(source payment.FundingSource) *PaymentContextBuilder {
	companyID := uuid.New()
	b.ClientType = payment.ClientTypeCorporate
	b.PaymentMethod = nil
	b.Company = &payment.CompanyContext{
		CompanyID:           companyID,
		OperatedByCompanyID: companyID,
		Name:                "Test Company",
		FundingSource:       source,
	}
	required := decimal.RequireFromString("66.00")
	switch source {
	case payment.FundingSourceDepositCharge:
		deposit := payment.NewDepositChargeContext(decimal.NewFromInt(1000), required, payment.DefaultLowBalancePercent)
		b.DepositCharge = &deposit
	case payment.FundingSourcePostPaymentCredit:
		credit := payment.NewPostPaymentCreditContext(decimal.NewFromInt(5000), decimal.NewFromInt(100), required)
		b.PostPaymentCredit = &credit
	}
	return b
}

// SameCompany makes the client and the interpreter operated by one company.
func (b *PaymentContextBuilder) SameCompany() *PaymentContextBuilder {
	companyID := uuid.New()
	if b.Company != nil {
		companyID = b.Company.OperatedByCompanyID
	}
	commission := payment.NewCommissionContext(companyID, companyID, b.Prices)
	b.Commission = &commission
	b.Interpreter.IsCorporate = true
	b.Interpreter.CompanyID = companyID
	return b
}

func (b *PaymentContextBuilder) BuildAuthorization() payment.AuthorizationContext {
	return payment.AuthorizationContext{
		AppointmentID:     b.AppointmentID,
		ClientType:        b.ClientType,
		Currency:          b.Currency,
		PaymentMethod:     b.PaymentMethod,
		ExistingPayment:   b.ExistingPayment,
		Prices:            b.Prices,
		Timing:            b.Timing,
		WaitList:          b.WaitList,
		Company:           b.Company,
		DepositCharge:     b.DepositCharge,
		PostPaymentCredit: b.PostPaymentCredit,
	}
}

func (b *PaymentContextBuilder) BuildAuthorizationCancel() payment.AuthorizationCancelContext {
	return payment.AuthorizationCancelContext{
		AppointmentID:   b.AppointmentID,
		ClientType:      b.ClientType,
		ExistingPayment: b.ExistingPayment,
		Company:         b.Company,
	}
}

func (b *PaymentContextBuilder) BuildAuthorizationRecreate() payment.AuthorizationRecreateContext {
	return payment.AuthorizationRecreateContext{
		AppointmentID:     b.AppointmentID,
		ClientType:        b.ClientType,
		Currency:          b.Currency,
		PaymentMethod:     b.PaymentMethod,
		ExistingPayment:   b.ExistingPayment,
		Prices:            b.Prices,
		Timing:            b.Timing,
		WaitList:          b.WaitList,
		Company:           b.Company,
		DepositCharge:     b.DepositCharge,
		PostPaymentCredit: b.PostPaymentCredit,
	}
}

func (b *PaymentContextBuilder) BuildCapture() payment.CaptureContext {
	return payment.CaptureContext{
		AppointmentID:   b.AppointmentID,
		ClientType:      b.ClientType,
		ExistingPayment: b.ExistingPayment,
		Prices:          b.Prices,
		Company:         b.Company,
		Commission:      b.Commission,
	}
}

func (b *PaymentContextBuilder) BuildTransfer() payment.TransferContext {
	return payment.TransferContext{
		AppointmentID:   b.AppointmentID,
		ExistingPayment: b.ExistingPayment,
		Prices:          b.Prices,
		Interpreter:     b.Interpreter,
		Commission:      b.Commission,
		IsSecondAttempt: b.IsSecondAttempt,
	}
}
