package pricing

import (
	"interpreting-payments/internal/domain/block"
	"interpreting-payments/internal/domain/boundary"
	"interpreting-payments/internal/domain/discount"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one calculation. Amounts are rounded to 2 decimal places and the
// value is not modified after it is returned.
type Result struct {
	CalculationType CalculationType

	ClientAmount          decimal.Decimal
	ClientGSTAmount       decimal.Decimal
	ClientFullAmount      decimal.Decimal
	InterpreterAmount     decimal.Decimal
	InterpreterGSTAmount  decimal.Decimal
	InterpreterFullAmount decimal.Decimal
	CommissionAmount      decimal.Decimal
	CommissionGSTAmount   decimal.Decimal

	BillableDuration                     int
	AddedDurationToLastBlockWhenRounding int
	Scenario                             boundary.Scenario
	RequiresCrossRateLogic               bool
	Blocks                               []block.Block

	DiscountRate     *discount.Rate
	AppliedDiscounts *discount.Summary
}

type Breakdown struct {
	Result *Result
	Steps  []AuditStep
}

// roundParty rounds amount and full once and derives GST from them so that the three values
// always reconcile.
func roundParty(amount, full decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	a := amount.Round(2)
	f := full.Round(2)
	return a, f.Sub(a), f
}

func roundSummary(s discount.Summary) discount.Summary {
	out := discount.Summary{
		ByMembershipMinutes:    s.ByMembershipMinutes.Round(2),
		ByMembershipPercentage: s.ByMembershipPercentage.Round(2),
		ByPromoCode:            s.ByPromoCode.Round(2),
		Total:                  s.Total.Round(2),
		Applied:                make([]discount.Applied, 0, len(s.Applied)),
	}
	for _, a := range s.Applied {
		a.Requested = a.Requested.Round(2)
		a.Applied = a.Applied.Round(2)
		out.Applied = append(out.Applied, a)
	}
	return out
}

func roundBlocks(blocks []block.Block) []block.Block {
	out := make([]block.Block, 0, len(blocks))
	for _, b := range blocks {
		b.ClientPrice = b.ClientPrice.Round(2)
		b.InterpreterPayment = b.InterpreterPayment.Round(2)
		out = append(out, b)
	}
	return out
}
