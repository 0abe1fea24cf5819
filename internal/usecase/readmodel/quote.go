package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteRM struct {
	DecisionID      string `json:"decision_id"`
	CalculationType string `json:"calculation_type"`

	ClientAmount          decimal.Decimal `json:"client_amount"`
	ClientGSTAmount       decimal.Decimal `json:"client_gst_amount"`
	ClientFullAmount      decimal.Decimal `json:"client_full_amount"`
	InterpreterAmount     decimal.Decimal `json:"interpreter_amount"`
	InterpreterGSTAmount  decimal.Decimal `json:"interpreter_gst_amount"`
	InterpreterFullAmount decimal.Decimal `json:"interpreter_full_amount"`
	CommissionAmount      decimal.Decimal `json:"commission_amount"`
	CommissionGSTAmount   decimal.Decimal `json:"commission_gst_amount"`

	BillableDuration                     int            `json:"billable_duration"`
	AddedDurationToLastBlockWhenRounding int            `json:"added_duration_to_last_block_when_rounding"`
	Scenario                             string         `json:"scenario"`
	RequiresCrossRateLogic               bool           `json:"requires_cross_rate_logic"`
	Blocks                               []QuoteBlockRM `json:"blocks"`

	AppliedDiscounts *DiscountSummaryRM `json:"applied_discounts,omitempty"`
	AuditSteps       []AuditStepRM      `json:"audit_steps,omitempty"`
}

type QuoteBlockRM struct {
	Type                   string          `json:"type"`
	Start                  time.Time       `json:"start"`
	Duration               int             `json:"duration"`
	ClientMode             string          `json:"client_mode"`
	InterpreterMode        string          `json:"interpreter_mode"`
	RequiresCrossRateLogic bool            `json:"requires_cross_rate_logic"`
	ClientPrice            decimal.Decimal `json:"client_price"`
	InterpreterPayment     decimal.Decimal `json:"interpreter_payment"`
}

type DiscountSummaryRM struct {
	ByMembershipMinutes    decimal.Decimal     `json:"by_membership_minutes"`
	ByMembershipPercentage decimal.Decimal     `json:"by_membership_percentage"`
	ByPromoCode            decimal.Decimal     `json:"by_promo_code"`
	Total                  decimal.Decimal     `json:"total"`
	Applied                []AppliedDiscountRM `json:"applied"`
}

type AppliedDiscountRM struct {
	Kind       string          `json:"kind"`
	Method     string          `json:"method"`
	Code       string          `json:"code,omitempty"`
	Percentage decimal.Decimal `json:"percentage"`
	Minutes    int             `json:"minutes"`
	Requested  decimal.Decimal `json:"requested"`
	Applied    decimal.Decimal `json:"applied"`
	Clipped    bool            `json:"clipped"`
}

type AuditStepRM struct {
	Stage   string         `json:"stage"`
	Message string         `json:"message"`
	Fields  []AuditFieldRM `json:"fields"`
}

type AuditFieldRM struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
