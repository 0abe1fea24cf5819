//go:build unit || e2e

package builder

import (
	"time"

	"interpreting-payments/internal/domain/discount"
	"interpreting-payments/internal/domain/pricing"
	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/usecase/request"

	"github.com/shopspring/decimal"
)

const TestTimezone = "Australia/Sydney"

// At returns the given wall-clock time on 10 March 2026 in TestTimezone.
func At(hour, minute int) time.Time {
	loc, err := time.LoadLocation(TestTimezone)
	if err != nil {
		panic(err)
	}
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, loc)
}

type PricingConfigBuilder struct {
	Config pricing.Config
}

func NewPricingConfigBuilder() *PricingConfigBuilder {
	return &PricingConfigBuilder{
		Config: pricing.Config{
			InterpreterType:       rate.InterpreterTypeProfessional,
			SchedulingType:        rate.SchedulingTypeOnDemand,
			CommunicationType:     rate.CommunicationTypeAudio,
			InterpretingType:      rate.InterpretingTypeConsecutive,
			Topic:                 rate.TopicGeneral,
			Duration:              30,
			ScheduleDateTime:      At(10, 0),
			ClientTimezone:        TestTimezone,
			InterpreterTimezone:   TestTimezone,
			ClientIsGSTPayer:      true,
			InterpreterIsGSTPayer: true,
		},
	}
}

func (b *PricingConfigBuilder) With(mutate func(*pricing.Config)) *PricingConfigBuilder {
	mutate(&b.Config)
	return b
}

func (b *PricingConfigBuilder) WithMembership(freeMinutes int, percentage int64) *PricingConfigBuilder {
	b.Config.Discounts = append(b.Config.Discounts, discount.Assignment{
		Kind:        discount.KindMembership,
		Code:        "member",
		FreeMinutes: freeMinutes,
		Percentage:  decimal.NewFromInt(percentage),
	})
	return b
}

func (b *PricingConfigBuilder) WithPromoPercentage(code string, percentage int64) *PricingConfigBuilder {
	b.Config.Discounts = append(b.Config.Discounts, discount.Assignment{
		Kind:       discount.KindPromo,
		Code:       code,
		Percentage: decimal.NewFromInt(percentage),
	})
	return b
}

func (b *PricingConfigBuilder) Build() pricing.Config {
	return b.Config
}

func (b *PricingConfigBuilder) BuildRequest(typ pricing.CalculationType) request.QuoteRequest {
	c := b.Config
	req := request.QuoteRequest{
		CalculationType:       typ.String(),
		InterpreterType:       c.InterpreterType.String(),
		SchedulingType:        c.SchedulingType.String(),
		CommunicationType:     c.CommunicationType.String(),
		InterpretingType:      c.InterpretingType.String(),
		Topic:                 c.Topic.String(),
		Duration:              c.Duration,
		ScheduleDateTime:      c.ScheduleDateTime,
		ClientTimezone:        c.ClientTimezone,
		InterpreterTimezone:   c.InterpreterTimezone,
		AcceptedOvertime:      c.AcceptedOvertime,
		IsExternalInterpreter: c.IsExternalInterpreter,
		ElapsedDuration:       c.ElapsedDuration,
		ClientIsGSTPayer:      c.ClientIsGSTPayer,
		InterpreterIsGSTPayer: c.InterpreterIsGSTPayer,
	}
	for _, d := range c.ExtraDays {
		req.ExtraDays = append(req.ExtraDays, request.ExtraDayRequest{ScheduleDateTime: d.ScheduleDateTime, Duration: d.Duration})
	}
	for _, d := range c.Discounts {
		req.Discounts = append(req.Discounts, request.DiscountRequest{
			Kind:        d.Kind.String(),
			Code:        d.Code,
			Percentage:  d.Percentage,
			FreeMinutes: d.FreeMinutes,
		})
	}
	return req
}
