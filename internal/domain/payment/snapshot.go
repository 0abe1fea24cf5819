package payment

import (
	"time"

	"interpreting-payments/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Appointments further away than the wait-list threshold are not authorized yet. Closer than
// the too-late lead time, payment can no longer be deferred.
const (
	DefaultWaitListThreshold = 7 * 24 * time.Hour
	DefaultTooLateLeadTime   = 2 * time.Hour
)

var DefaultLowBalancePercent = decimal.NewFromInt(10)

type PaymentSnapshot struct {
	ID         uuid.UUID
	Status     Status
	Amount     decimal.Decimal
	Currency   string
	ExternalID string
}

type PaymentMethodSnapshot struct {
	ID       string
	Brand    string
	ExpireAt time.Time
}

type CompanyContext struct {
	CompanyID           uuid.UUID
	OperatedByCompanyID uuid.UUID
	Name                string
	FundingSource       FundingSource
	// IsRestricted blocks self-service cancellation of corporate authorizations.
	IsRestricted bool
}

type TimingPolicy struct {
	WaitListThreshold time.Duration
	TooLateLeadTime   time.Duration
}

func DefaultTimingPolicy() TimingPolicy {
	return TimingPolicy{
		WaitListThreshold: DefaultWaitListThreshold,
		TooLateLeadTime:   DefaultTooLateLeadTime,
	}
}

type TimingContext struct {
	Now                       time.Time
	AppointmentStart          time.Time
	TimeUntilAppointment      time.Duration
	IsTooLateForPayment       bool
	IsBeyondWaitListThreshold bool
}

// NewTimingContext derives the timing flags for an appointment starting at start.
func NewTimingContext(now, start time.Time, policy TimingPolicy) TimingContext {
	until := start.Sub(now)
	return TimingContext{
		Now:                       now,
		AppointmentStart:          start,
		TimeUntilAppointment:      until,
		IsTooLateForPayment:       until < policy.TooLateLeadTime,
		IsBeyondWaitListThreshold: until > policy.WaitListThreshold,
	}
}

// WaitListContext is enabled unless Disabled is set.
type WaitListContext struct {
	Disabled bool
}

type DepositChargeContext struct {
	Balance             decimal.Decimal
	Required            decimal.Decimal
	BalanceAfterCharge  decimal.Decimal
	IsBalanceSufficient bool
	IsLowBalance        bool
}

// NewDepositChargeContext flags the balance as low when what remains after the charge is under
// lowBalancePercent of the current balance.
func NewDepositChargeContext(balance, required, lowBalancePercent decimal.Decimal) DepositChargeContext {
	after := balance.Sub(required)
	threshold := balance.Mul(lowBalancePercent).Div(decimal.NewFromInt(100))
	return DepositChargeContext{
		Balance:             balance,
		Required:            required,
		BalanceAfterCharge:  after,
		IsBalanceSufficient: !after.IsNegative(),
		IsLowBalance:        after.LessThan(threshold),
	}
}

type PostPaymentCreditContext struct {
	CreditLimit   decimal.Decimal
	Used          decimal.Decimal
	Required      decimal.Decimal
	Remaining     decimal.Decimal
	IsWithinLimit bool
}

func NewPostPaymentCreditContext(limit, used, required decimal.Decimal) PostPaymentCreditContext {
	remaining := limit.Sub(used)
	return PostPaymentCreditContext{
		CreditLimit:   limit,
		Used:          used,
		Required:      required,
		Remaining:     remaining,
		IsWithinLimit: required.LessThanOrEqual(remaining),
	}
}

type CommissionContext struct {
	ClientCompanyID      uuid.UUID
	InterpreterCompanyID uuid.UUID
	IsSameCompany        bool
	CommissionAmount     decimal.Decimal
	CommissionGSTAmount  decimal.Decimal
	HasAmounts           bool
}

// NewCommissionContext compares the companies operating the client and the interpreter. Nil ids
// never match. Amounts are taken from prices when present.
func NewCommissionContext(clientCompanyID, interpreterCompanyID uuid.UUID, prices *pricing.Result) CommissionContext {
	c := CommissionContext{
		ClientCompanyID:      clientCompanyID,
		InterpreterCompanyID: interpreterCompanyID,
		IsSameCompany:        clientCompanyID != uuid.Nil && clientCompanyID == interpreterCompanyID,
	}
	if prices != nil {
		c.CommissionAmount = prices.CommissionAmount
		c.CommissionGSTAmount = prices.CommissionGSTAmount
		c.HasAmounts = true
	}
	return c
}

type InterpreterPayoutContext struct {
	InterpreterID   uuid.UUID
	IsCorporate     bool
	CompanyID       uuid.UUID
	PayoutMethod    PayoutMethod
	PayoutAccountID string
	PayoutsEnabled  bool
}
