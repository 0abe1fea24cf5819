package request

import (
	"strings"
	"time"

	"interpreting-payments/internal/domain/pricing"
	"interpreting-payments/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var ErrInvalidRequest = errs.New("invalid quote request")

type QuoteRequest struct {
	CalculationType       string            `json:"calculation_type"`
	InterpreterType       string            `json:"interpreter_type"`
	SchedulingType        string            `json:"scheduling_type"`
	CommunicationType     string            `json:"communication_type"`
	InterpretingType      string            `json:"interpreting_type"`
	Topic                 string            `json:"topic,omitempty"`
	Duration              int               `json:"duration"`
	ScheduleDateTime      time.Time         `json:"schedule_date_time"`
	ClientTimezone        string            `json:"client_timezone"`
	InterpreterTimezone   string            `json:"interpreter_timezone"`
	AcceptedOvertime      bool              `json:"accepted_overtime"`
	IsExternalInterpreter bool              `json:"is_external_interpreter"`
	ElapsedDuration       int               `json:"elapsed_duration,omitempty"`
	ExtraDays             []ExtraDayRequest `json:"extra_days,omitempty"`
	Discounts             []DiscountRequest `json:"discounts,omitempty"`
	ClientIsGSTPayer      bool              `json:"client_is_gst_payer"`
	InterpreterIsGSTPayer bool              `json:"interpreter_is_gst_payer"`
}

type ExtraDayRequest struct {
	ScheduleDateTime time.Time `json:"schedule_date_time"`
	Duration         int       `json:"duration"`
}

type DiscountRequest struct {
	Kind        string          `json:"kind"`
	Code        string          `json:"code,omitempty"`
	Percentage  decimal.Decimal `json:"percentage"`
	FreeMinutes int             `json:"free_minutes"`
}

// ToDomain maps the request onto a calculation config. Shape problems are reported here;
// domain rules are checked by the pricing service.
func (r QuoteRequest) ToDomain() (pricing.Config, pricing.CalculationType, error) {
	typ := pricing.CalculationType(strings.TrimSpace(r.CalculationType))
	if typ == "" {
		typ = pricing.CalculationTypePreliminaryEstimate
	}
	if !typ.IsValid() {
		return pricing.Config{}, "", errs.Wrapf(ErrInvalidRequest, "calculation type %q", r.CalculationType)
	}

	var cfg pricing.Config
	if err := copier.Copy(&cfg, &r); err != nil {
		return pricing.Config{}, "", errs.Wrap(errs.Mark(err, ErrInvalidRequest), "failed to map quote request")
	}
	cfg.ClientTimezone = strings.TrimSpace(cfg.ClientTimezone)
	cfg.InterpreterTimezone = strings.TrimSpace(cfg.InterpreterTimezone)
	if cfg.InterpreterTimezone == "" {
		cfg.InterpreterTimezone = cfg.ClientTimezone
	}
	return cfg, typ, nil
}
