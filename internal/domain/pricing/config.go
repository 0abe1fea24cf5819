package pricing

import (
	"time"

	"interpreting-payments/internal/domain/discount"
	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/pkg/errs"
)

const DefaultMaxExtraDays = 30

var (
	ErrInvalidConfig          = errs.New("invalid calculation config")
	ErrUnknownCalculationType = errs.New("unknown calculation type")
	ErrTooManyExtraDays       = errs.New("too many extra days")
)

// ExtraDay is an additional sub-appointment of a multi-day booking.
type ExtraDay struct {
	ScheduleDateTime time.Time
	Duration         int
}

// Config is built by the caller for every calculation and never modified by the service.
type Config struct {
	InterpreterType   rate.InterpreterType
	SchedulingType    rate.SchedulingType
	CommunicationType rate.CommunicationType
	InterpretingType  rate.InterpretingType
	Topic             rate.Topic

	Duration            int
	ScheduleDateTime    time.Time
	ClientTimezone      string
	InterpreterTimezone string

	AcceptedOvertime      bool
	IsExternalInterpreter bool
	// ElapsedDuration is the actual length in minutes, used by the end price.
	ElapsedDuration int
	ExtraDays       []ExtraDay

	Discounts             []discount.Assignment
	ClientIsGSTPayer      bool
	InterpreterIsGSTPayer bool
}

func (c Config) Query() rate.Query {
	return rate.Query{
		InterpreterType:   c.InterpreterType,
		SchedulingType:    c.SchedulingType,
		CommunicationType: c.CommunicationType,
		InterpretingType:  c.InterpretingType,
		Topic:             c.Topic,
	}
}

func (c Config) Validate(maxExtraDays int) error {
	if err := c.Query().Validate(); err != nil {
		return errs.Mark(err, ErrInvalidConfig)
	}
	switch {
	case c.Duration <= 0:
		return errs.Wrapf(ErrInvalidConfig, "duration %d", c.Duration)
	case c.ScheduleDateTime.IsZero():
		return errs.Wrap(ErrInvalidConfig, "schedule date time is required")
	case c.ElapsedDuration < 0:
		return errs.Wrapf(ErrInvalidConfig, "elapsed duration %d", c.ElapsedDuration)
	case len(c.ExtraDays) > maxExtraDays:
		return errs.Wrapf(errs.Mark(ErrTooManyExtraDays, ErrInvalidConfig), "%d extra days, max %d", len(c.ExtraDays), maxExtraDays)
	}
	for i, d := range c.ExtraDays {
		if d.Duration <= 0 || d.ScheduleDateTime.IsZero() {
			return errs.Wrapf(ErrInvalidConfig, "extra day %d", i)
		}
	}
	return nil
}

// BillableDuration is the duration priced by the end price: the scheduled duration, or the
// elapsed one when the client accepted overtime and the appointment ran longer.
func (c Config) BillableDuration() int {
	if c.AcceptedOvertime && c.ElapsedDuration > c.Duration {
		return c.ElapsedDuration
	}
	return c.Duration
}
