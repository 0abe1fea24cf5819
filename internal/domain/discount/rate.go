package discount

import (
	"interpreting-payments/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAssignment     = errs.New("invalid discount assignment")
	ErrDuplicateDiscountKind = errs.New("more than one discount of the same kind")
	ErrMixedPromo            = errs.New("promo discount cannot combine percentage and free minutes")
)

var hundred = decimal.NewFromInt(100)

// Assignment is one discount held by the client, either a membership or a promo code.
type Assignment struct {
	Kind        Kind
	Code        string
	Percentage  decimal.Decimal
	FreeMinutes int
}

func (a Assignment) Validate() error {
	switch {
	case !a.Kind.IsValid():
		return errs.Wrapf(ErrInvalidAssignment, "kind %q", a.Kind)
	case a.Percentage.IsNegative() || a.Percentage.GreaterThan(hundred):
		return errs.Wrapf(ErrInvalidAssignment, "%s percentage %s", a.Kind, a.Percentage)
	case a.FreeMinutes < 0:
		return errs.Wrapf(ErrInvalidAssignment, "%s free minutes %d", a.Kind, a.FreeMinutes)
	case a.Kind == KindPromo && a.Percentage.IsPositive() && a.FreeMinutes > 0:
		return errs.Wrapf(ErrMixedPromo, "promo %q", a.Code)
	}
	return nil
}

// Rate combines at most one membership and one promo assignment.
type Rate struct {
	Membership *Assignment
	Promo      *Assignment
}

func NewRate(assignments []Assignment) (Rate, error) {
	var r Rate
	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return Rate{}, err
		}
		switch a.Kind {
		case KindMembership:
			if r.Membership != nil {
				return Rate{}, errs.Wrapf(ErrDuplicateDiscountKind, "%s", a.Kind)
			}
			r.Membership = &a
		case KindPromo:
			if r.Promo != nil {
				return Rate{}, errs.Wrapf(ErrDuplicateDiscountKind, "%s", a.Kind)
			}
			r.Promo = &a
		}
	}
	return r, nil
}

func (r Rate) IsZero() bool {
	return r.Membership == nil && r.Promo == nil
}
