package rate

import (
	"interpreting-payments/internal/pkg/errs"

	"cloud.google.com/go/civil"
)

// Collection is the set of rows needed to price one appointment. It is either a
// StandardCollection or a FlatCollection; callers branch on the concrete type.
type Collection interface {
	// Lookup returns the row pricing a block of the given sequence in the given part of the day.
	Lookup(seq DetailsSequence, qualifier Qualifier) (Rate, error)
	// BlockSizes returns the block sizes used to decompose a span priced with qualifier.
	BlockSizes(qualifier Qualifier) BlockSizes
	// NormalHours returns the normal-hours window shared by the collection.
	NormalHours() (start, end civil.Time)
	IsFlat() bool

	collection()
}

type BlockSizes struct {
	FirstMinutes    int
	AdditionalBlock int
}

type StandardCollection struct {
	StandardFirstMinutes      Rate
	StandardAdditionalBlock   Rate
	AfterHoursFirstMinutes    Rate
	AfterHoursAdditionalBlock Rate
}

func (c StandardCollection) Lookup(seq DetailsSequence, qualifier Qualifier) (Rate, error) {
	switch {
	case seq == SequenceFirstMinutes && qualifier == QualifierStandardHours:
		return c.StandardFirstMinutes, nil
	case seq == SequenceAdditionalBlock && qualifier == QualifierStandardHours:
		return c.StandardAdditionalBlock, nil
	case seq == SequenceFirstMinutes && qualifier == QualifierAfterHours:
		return c.AfterHoursFirstMinutes, nil
	case seq == SequenceAdditionalBlock && qualifier == QualifierAfterHours:
		return c.AfterHoursAdditionalBlock, nil
	}
	return Rate{}, errs.Wrapf(ErrRateNotFound, "standard collection has no %s/%s row", qualifier, seq)
}

func (c StandardCollection) BlockSizes(qualifier Qualifier) BlockSizes {
	if qualifier == QualifierAfterHours {
		return BlockSizes{
			FirstMinutes:    c.AfterHoursFirstMinutes.DetailsTime,
			AdditionalBlock: c.AfterHoursAdditionalBlock.DetailsTime,
		}
	}
	return BlockSizes{
		FirstMinutes:    c.StandardFirstMinutes.DetailsTime,
		AdditionalBlock: c.StandardAdditionalBlock.DetailsTime,
	}
}

func (c StandardCollection) NormalHours() (civil.Time, civil.Time) {
	return c.StandardFirstMinutes.NormalHoursStart, c.StandardFirstMinutes.NormalHoursEnd
}

func (StandardCollection) IsFlat() bool { return false }

func (StandardCollection) collection() {}

// FlatCollection prices the whole appointment in all-day blocks, whatever the time of day.
type FlatCollection struct {
	AllDay Rate
}

func (c FlatCollection) Lookup(seq DetailsSequence, _ Qualifier) (Rate, error) {
	if seq != SequenceAllDay {
		return Rate{}, errs.Wrapf(ErrRateNotFound, "flat collection has no %s row", seq)
	}
	return c.AllDay, nil
}

func (c FlatCollection) BlockSizes(Qualifier) BlockSizes {
	return BlockSizes{FirstMinutes: c.AllDay.DetailsTime, AdditionalBlock: c.AllDay.DetailsTime}
}

func (c FlatCollection) NormalHours() (civil.Time, civil.Time) {
	return c.AllDay.NormalHoursStart, c.AllDay.NormalHoursEnd
}

func (FlatCollection) IsFlat() bool { return true }

func (FlatCollection) collection() {}
