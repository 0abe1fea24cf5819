//go:build unit || e2e

package builder

import (
	"interpreting-payments/internal/domain/rate"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RowAmounts are the per-block amounts of one rate row.
type RowAmounts struct {
	ClientWithGST         string
	ClientWithoutGST      string
	CommissionWithGST     string
	CommissionWithoutGST  string
	InterpreterWithGST    string
	InterpreterWithoutGST string
}

type RateCardBuilder struct {
	Query            rate.Query
	NormalHoursStart civil.Time
	NormalHoursEnd   civil.Time

	FirstMinutes              int
	AdditionalBlock           int
	AfterHoursFirstMinutes    int
	AfterHoursAdditionalBlock int

	StandardFirst        RowAmounts
	StandardAdditional   RowAmounts
	AfterHoursFirst      RowAmounts
	AfterHoursAdditional RowAmounts

	// InterpreterSpecial is the GST-exempt interpreter amount of the standard first-minutes row.
	InterpreterSpecial string

	Flat           bool
	AllDay         RowAmounts
	OmitAfterHours bool
}

func NewRateCardBuilder() *RateCardBuilder {
	return &RateCardBuilder{
		Query: rate.Query{
			InterpreterType:   rate.InterpreterTypeProfessional,
			SchedulingType:    rate.SchedulingTypeOnDemand,
			CommunicationType: rate.CommunicationTypeAudio,
			InterpretingType:  rate.InterpretingTypeConsecutive,
			Topic:             rate.TopicAny,
		},
		NormalHoursStart:          civil.Time{Hour: 9},
		NormalHoursEnd:            civil.Time{Hour: 17},
		FirstMinutes:              30,
		AdditionalBlock:           15,
		AfterHoursFirstMinutes:    30,
		AfterHoursAdditionalBlock: 15,
		StandardFirst:             RowAmounts{"66.00", "60.00", "11.00", "10.00", "55.00", "50.00"},
		StandardAdditional:        RowAmounts{"33.00", "30.00", "5.50", "5.00", "27.50", "25.00"},
		AfterHoursFirst:           RowAmounts{"99.00", "90.00", "16.50", "15.00", "82.50", "75.00"},
		AfterHoursAdditional:      RowAmounts{"49.50", "45.00", "8.25", "7.50", "41.25", "37.50"},
		AllDay:                    RowAmounts{"880.00", "800.00", "132.00", "120.00", "660.00", "600.00"},
	}
}

func (b *RateCardBuilder) With(mutate func(*RateCardBuilder)) *RateCardBuilder {
	mutate(b)
	return b
}

func (b *RateCardBuilder) BuildRows() []rate.Rate {
	if b.Flat {
		return []rate.Rate{b.row(rate.QualifierStandardHours, rate.SequenceAllDay, 480, b.AllDay)}
	}

	first := b.row(rate.QualifierStandardHours, rate.SequenceFirstMinutes, b.FirstMinutes, b.StandardFirst)
	if b.InterpreterSpecial != "" {
		first.PaidToInterpreterSpecial = decimal.NewNullDecimal(decimal.RequireFromString(b.InterpreterSpecial))
	}
	rows := []rate.Rate{
		first,
		b.row(rate.QualifierStandardHours, rate.SequenceAdditionalBlock, b.AdditionalBlock, b.StandardAdditional),
	}
	if !b.OmitAfterHours {
		rows = append(rows,
			b.row(rate.QualifierAfterHours, rate.SequenceFirstMinutes, b.AfterHoursFirstMinutes, b.AfterHoursFirst),
			b.row(rate.QualifierAfterHours, rate.SequenceAdditionalBlock, b.AfterHoursAdditionalBlock, b.AfterHoursAdditional),
		)
	}
	return rows
}

func (b *RateCardBuilder) BuildTable() (*rate.Table, error) {
	return rate.NewTable(b.BuildRows())
}

func (b *RateCardBuilder) row(q rate.Qualifier, seq rate.DetailsSequence, detailsTime int, a RowAmounts) rate.Rate {
	return rate.Rate{
		Key: rate.Key{
			InterpreterType:   b.Query.InterpreterType,
			SchedulingType:    b.Query.SchedulingType,
			CommunicationType: b.Query.CommunicationType,
			InterpretingType:  b.Query.InterpretingType,
			Topic:             b.Query.Topic,
			Qualifier:         q,
			DetailsSequence:   seq,
		},
		NormalHoursStart:            b.NormalHoursStart,
		NormalHoursEnd:              b.NormalHoursEnd,
		DetailsTime:                 detailsTime,
		PaidByClientWithGST:         decimal.RequireFromString(a.ClientWithGST),
		PaidByClientWithoutGST:      decimal.RequireFromString(a.ClientWithoutGST),
		CommissionWithGST:           decimal.RequireFromString(a.CommissionWithGST),
		CommissionWithoutGST:        decimal.RequireFromString(a.CommissionWithoutGST),
		PaidToInterpreterWithGST:    decimal.RequireFromString(a.InterpreterWithGST),
		PaidToInterpreterWithoutGST: decimal.RequireFromString(a.InterpreterWithoutGST),
	}
}
