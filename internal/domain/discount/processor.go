package discount

import (
	"interpreting-payments/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidDuration = errs.New("discount duration must be positive")

// Amounts is the client side of a price. Full = Amount + GST.
type Amounts struct {
	Amount decimal.Decimal
	GST    decimal.Decimal
	Full   decimal.Decimal
}

// Applied records one discount step. Requested is what the discount asked for; Applied is what
// was taken after clipping at the remaining amount.
type Applied struct {
	Kind       Kind
	Method     Method
	Code       string
	Percentage decimal.Decimal
	Minutes    int
	Requested  decimal.Decimal
	Applied    decimal.Decimal
	Clipped    bool
}

type Summary struct {
	ByMembershipMinutes    decimal.Decimal
	ByMembershipPercentage decimal.Decimal
	ByPromoCode            decimal.Decimal
	Total                  decimal.Decimal
	Applied                []Applied
}

func (s Summary) Clips() []Applied {
	var clips []Applied
	for _, a := range s.Applied {
		if a.Clipped {
			clips = append(clips, a)
		}
	}
	return clips
}

type Outcome struct {
	Amounts Amounts
	Summary Summary
}

type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Apply reduces the client amount in a fixed order: membership free minutes, membership
// percentage, then the promo code. GST shrinks in proportion to the amount.
func (p *Processor) Apply(amounts Amounts, duration int, r Rate) (Outcome, error) {
	if r.IsZero() {
		return Outcome{Amounts: amounts}, nil
	}
	if duration <= 0 {
		return Outcome{}, errs.Wrapf(ErrInvalidDuration, "got %d", duration)
	}

	s := &state{
		base:      amounts.Amount,
		remaining: amounts.Amount,
		perMinute: amounts.Amount.Div(decimal.NewFromInt(int64(duration))),
	}

	if m := r.Membership; m != nil {
		if m.FreeMinutes > 0 {
			s.Summary.ByMembershipMinutes = s.takeMinutes(*m)
		}
		if m.Percentage.IsPositive() {
			s.Summary.ByMembershipPercentage = s.takePercentage(*m)
		}
	}
	if pr := r.Promo; pr != nil {
		switch {
		case pr.FreeMinutes > 0:
			s.Summary.ByPromoCode = s.takeMinutes(*pr)
		case pr.Percentage.IsPositive():
			s.Summary.ByPromoCode = s.takePercentage(*pr)
		}
	}
	s.Summary.Total = s.base.Sub(s.remaining)

	gst := amounts.GST
	if s.base.IsPositive() {
		gst = amounts.GST.Mul(s.remaining).Div(s.base)
	}
	return Outcome{
		Amounts: Amounts{
			Amount: s.remaining,
			GST:    gst,
			Full:   s.remaining.Add(gst),
		},
		Summary: s.Summary,
	}, nil
}

type state struct {
	base      decimal.Decimal
	remaining decimal.Decimal
	perMinute decimal.Decimal
	Summary   Summary
}

func (s *state) takeMinutes(a Assignment) decimal.Decimal {
	requested := s.perMinute.Mul(decimal.NewFromInt(int64(a.FreeMinutes)))
	return s.take(Applied{
		Kind:      a.Kind,
		Method:    MethodFreeMinutes,
		Code:      a.Code,
		Minutes:   a.FreeMinutes,
		Requested: requested,
	})
}

func (s *state) takePercentage(a Assignment) decimal.Decimal {
	requested := s.remaining.Mul(a.Percentage).Div(hundred)
	return s.take(Applied{
		Kind:       a.Kind,
		Method:     MethodPercentage,
		Code:       a.Code,
		Percentage: a.Percentage,
		Requested:  requested,
	})
}

func (s *state) take(step Applied) decimal.Decimal {
	step.Applied = decimal.Min(step.Requested, s.remaining)
	step.Clipped = step.Applied.LessThan(step.Requested)
	s.remaining = s.remaining.Sub(step.Applied)
	s.Summary.Applied = append(s.Summary.Applied, step)
	return step.Applied
}
