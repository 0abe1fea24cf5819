package price

import (
	"interpreting-payments/internal/domain/block"
	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidDetailsTime = errs.New("rate details time must be positive")

// GSTPayers holds the GST registration of each party. The two flags are independent.
type GSTPayers struct {
	Client      bool
	Interpreter bool
}

// Amounts are unrounded totals. Full = Amount + GST for each party.
type Amounts struct {
	ClientAmount      decimal.Decimal
	ClientGST         decimal.Decimal
	ClientFull        decimal.Decimal
	InterpreterAmount decimal.Decimal
	InterpreterGST    decimal.Decimal
	InterpreterFull   decimal.Decimal

	// Commission is informational. It is never subtracted from the interpreter payment here.
	CommissionAmount decimal.Decimal
	CommissionGST    decimal.Decimal
}

func (a Amounts) Add(b Amounts) Amounts {
	return Amounts{
		ClientAmount:      a.ClientAmount.Add(b.ClientAmount),
		ClientGST:         a.ClientGST.Add(b.ClientGST),
		ClientFull:        a.ClientFull.Add(b.ClientFull),
		InterpreterAmount: a.InterpreterAmount.Add(b.InterpreterAmount),
		InterpreterGST:    a.InterpreterGST.Add(b.InterpreterGST),
		InterpreterFull:   a.InterpreterFull.Add(b.InterpreterFull),
		CommissionAmount:  a.CommissionAmount.Add(b.CommissionAmount),
		CommissionGST:     a.CommissionGST.Add(b.CommissionGST),
	}
}

type Priced struct {
	Blocks  []block.Block
	Amounts Amounts
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Price prices every block with the row matching its sequence and each party's mode. The
// interpreter side of a split block is priced span by span against the same sequence. Amounts
// are scaled by minutes / DetailsTime and are not rounded.
func (c *Calculator) Price(res block.Result, rates rate.Collection, payers GSTPayers) (Priced, error) {
	priced := Priced{Blocks: make([]block.Block, 0, len(res.Blocks))}
	for _, b := range res.Blocks {
		clientRow, err := rates.Lookup(b.Type, b.ClientMode.Qualifier())
		if err != nil {
			return Priced{}, errs.Wrap(err, "client rate")
		}
		amounts, err := priceClient(b.Duration, clientRow, payers.Client)
		if err != nil {
			return Priced{}, err
		}

		for _, sp := range b.InterpreterSpans() {
			interpreterRow, err := rates.Lookup(b.Type, sp.Mode.Qualifier())
			if err != nil {
				return Priced{}, errs.Wrap(err, "interpreter rate")
			}
			part, err := priceInterpreter(sp.Duration, interpreterRow, payers.Interpreter)
			if err != nil {
				return Priced{}, err
			}
			amounts = amounts.Add(part)
		}

		b.ClientPrice = amounts.ClientFull
		b.InterpreterPayment = amounts.InterpreterFull
		priced.Blocks = append(priced.Blocks, b)
		priced.Amounts = priced.Amounts.Add(amounts)
	}
	return priced, nil
}

func priceClient(minutes int, row rate.Rate, gstPayer bool) (Amounts, error) {
	scale, err := scaler(minutes, row)
	if err != nil {
		return Amounts{}, err
	}
	var a Amounts
	a.ClientAmount, a.ClientGST, a.ClientFull = split(
		gstPayer, row.PaidByClientWithGST, row.PaidByClientWithoutGST, row.PaidByClientSpecial, scale)
	a.CommissionAmount = scale(row.CommissionWithoutGST)
	a.CommissionGST = scale(row.CommissionWithGST).Sub(a.CommissionAmount)
	return a, nil
}

func priceInterpreter(minutes int, row rate.Rate, gstPayer bool) (Amounts, error) {
	scale, err := scaler(minutes, row)
	if err != nil {
		return Amounts{}, err
	}
	var a Amounts
	a.InterpreterAmount, a.InterpreterGST, a.InterpreterFull = split(
		gstPayer, row.PaidToInterpreterWithGST, row.PaidToInterpreterWithoutGST, row.PaidToInterpreterSpecial, scale)
	return a, nil
}

func scaler(minutes int, r rate.Rate) (func(decimal.Decimal) decimal.Decimal, error) {
	if r.DetailsTime <= 0 {
		return nil, errs.Wrapf(ErrInvalidDetailsTime, "%s", r.Key)
	}
	m := decimal.NewFromInt(int64(minutes))
	d := decimal.NewFromInt(int64(r.DetailsTime))
	return func(amount decimal.Decimal) decimal.Decimal {
		return amount.Mul(m).Div(d)
	}, nil
}

// split returns (amount, gst, full). A GST payer pays the GST-inclusive amount; anyone else pays
// the GST-exempt special amount when the row defines one, otherwise the GST-exclusive amount.
func split(gstPayer bool, withGST, withoutGST decimal.Decimal, special decimal.NullDecimal, scale func(decimal.Decimal) decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	if gstPayer {
		full := scale(withGST)
		amount := scale(withoutGST)
		return amount, full.Sub(amount), full
	}
	base := withoutGST
	if special.Valid {
		base = special.Decimal
	}
	amount := scale(base)
	return amount, decimal.Zero, amount
}
