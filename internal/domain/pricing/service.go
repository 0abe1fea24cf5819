package pricing

import (
	"time"

	"interpreting-payments/internal/domain/block"
	"interpreting-payments/internal/domain/boundary"
	"interpreting-payments/internal/domain/discount"
	"interpreting-payments/internal/domain/price"
	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Option func(*Service)

func WithMaxExtraDays(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxExtraDays = n
		}
	}
}

// Service composes boundary analysis, block building, pricing and discounts for every
// calculation mode. It holds no per-call state and may be shared between goroutines.
type Service struct {
	rates        *rate.Table
	analyzer     *boundary.Analyzer
	builder      *block.Builder
	calculator   *price.Calculator
	discounts    *discount.Processor
	maxExtraDays int
}

func NewService(rates *rate.Table, opts ...Option) *Service {
	s := &Service{
		rates:        rates,
		analyzer:     boundary.NewAnalyzer(),
		builder:      block.NewBuilder(),
		calculator:   price.NewCalculator(),
		discounts:    discount.NewProcessor(),
		maxExtraDays: DefaultMaxExtraDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Calculate(cfg Config, typ CalculationType) (*Result, error) {
	if typ == CalculationTypeDetailedBreakdown {
		b, err := s.CalculateDetailed(cfg)
		if err != nil {
			return nil, err
		}
		return b.Result, nil
	}
	return s.calculate(cfg, typ, nil)
}

// CalculateDetailed prices the scheduled appointment with extra days and returns every
// intermediate step. The audit trail belongs to this call only.
func (s *Service) CalculateDetailed(cfg Config) (*Breakdown, error) {
	audit := NewAuditCollector()
	res, err := s.calculate(cfg, CalculationTypeDetailedBreakdown, audit)
	if err != nil {
		return nil, err
	}
	return &Breakdown{Result: res, Steps: audit.Steps()}, nil
}

// span is one independently analyzed piece of the booking.
type span struct {
	start     time.Time
	duration  int
	extension bool
}

func (s *Service) spans(cfg Config, typ CalculationType) []span {
	switch typ {
	case CalculationTypeSingleBlock:
		end := cfg.ScheduleDateTime.Add(time.Duration(cfg.Duration) * time.Minute)
		return []span{{start: end, extension: true}}
	case CalculationTypeAppointmentEndPrice:
		return []span{{start: cfg.ScheduleDateTime, duration: cfg.BillableDuration()}}
	}

	spans := []span{{start: cfg.ScheduleDateTime, duration: cfg.Duration}}
	if typ.includesExtraDays() {
		for _, d := range cfg.ExtraDays {
			spans = append(spans, span{start: d.ScheduleDateTime, duration: d.Duration})
		}
	}
	return spans
}

func (s *Service) calculate(cfg Config, typ CalculationType, audit *AuditCollector) (*Result, error) {
	if !typ.IsValid() {
		return nil, configuration(errs.Wrapf(ErrUnknownCalculationType, "%q", typ))
	}
	if err := cfg.Validate(s.maxExtraDays); err != nil {
		return nil, configuration(err)
	}
	audit.Record(StageConfig, "calculation requested",
		field("type", typ),
		field("duration", cfg.Duration),
		field("scheduleDateTime", cfg.ScheduleDateTime),
		field("clientTimezone", cfg.ClientTimezone),
		field("interpreterTimezone", cfg.InterpreterTimezone),
		field("extraDays", len(cfg.ExtraDays)),
	)

	discountRate, err := discount.NewRate(cfg.Discounts)
	if err != nil {
		return nil, configuration(errs.Mark(err, ErrInvalidConfig))
	}

	rates, err := s.rates.Collection(cfg.Query())
	if err != nil {
		return nil, configuration(err)
	}
	normalStart, normalEnd := rates.NormalHours()
	audit.Record(StageRates, "rates resolved",
		field("flat", rates.IsFlat()),
		field("normalHoursStart", normalStart),
		field("normalHoursEnd", normalEnd),
	)

	payers := price.GSTPayers{Client: cfg.ClientIsGSTPayer, Interpreter: cfg.InterpreterIsGSTPayer}
	var (
		total  price.Amounts
		blocks []block.Block
		first  block.Result
		cross  bool
	)
	billable, added := 0, 0
	for i, sp := range s.spans(cfg, typ) {
		res, err := s.buildSpan(sp, cfg, rates, audit)
		if err != nil {
			return nil, err
		}
		priced, err := s.calculator.Price(res, rates, payers)
		if err != nil {
			return nil, configuration(err)
		}
		audit.Record(StagePrice, "span priced",
			field("span", i),
			field("clientFull", priced.Amounts.ClientFull),
			field("interpreterFull", priced.Amounts.InterpreterFull),
			field("commission", priced.Amounts.CommissionAmount),
		)

		if i == 0 {
			first = res
		}
		cross = cross || blocksCross(res.Blocks)
		total = total.Add(priced.Amounts)
		blocks = append(blocks, priced.Blocks...)
		billable += res.TotalDuration()
		added += res.AddedDurationToLastBlockWhenRounding
	}

	outcome, err := s.discounts.Apply(discount.Amounts{
		Amount: total.ClientAmount,
		GST:    total.ClientGST,
		Full:   total.ClientFull,
	}, billable, discountRate)
	if err != nil {
		return nil, err
	}
	if !discountRate.IsZero() {
		audit.Record(StageDiscount, "discounts applied",
			field("byMembershipMinutes", outcome.Summary.ByMembershipMinutes),
			field("byMembershipPercentage", outcome.Summary.ByMembershipPercentage),
			field("byPromoCode", outcome.Summary.ByPromoCode),
			field("clips", len(outcome.Summary.Clips())),
		)
	}

	interpreterAmount, interpreterFull := total.InterpreterAmount, total.InterpreterFull
	if cfg.IsExternalInterpreter {
		interpreterAmount, interpreterFull = decimal.Zero, decimal.Zero
	}

	result := &Result{
		CalculationType:                      typ,
		BillableDuration:                     billable,
		AddedDurationToLastBlockWhenRounding: added,
		Scenario:                             first.Scenario,
		RequiresCrossRateLogic:               cross,
		Blocks:                               roundBlocks(blocks),
	}
	result.ClientAmount, result.ClientGSTAmount, result.ClientFullAmount = roundParty(outcome.Amounts.Amount, outcome.Amounts.Full)
	result.InterpreterAmount, result.InterpreterGSTAmount, result.InterpreterFullAmount = roundParty(interpreterAmount, interpreterFull)
	result.CommissionAmount, result.CommissionGSTAmount, _ = roundParty(total.CommissionAmount, total.CommissionAmount.Add(total.CommissionGST))
	if !discountRate.IsZero() {
		summary := roundSummary(outcome.Summary)
		result.DiscountRate = &discountRate
		result.AppliedDiscounts = &summary
	}

	audit.Record(StageResult, "result assembled",
		field("billableDuration", result.BillableDuration),
		field("clientFullAmount", result.ClientFullAmount),
		field("interpreterFullAmount", result.InterpreterFullAmount),
	)
	return result, nil
}

func (s *Service) buildSpan(sp span, cfg Config, rates rate.Collection, audit *AuditCollector) (block.Result, error) {
	normalStart, normalEnd := rates.NormalHours()
	duration := sp.duration
	if sp.extension {
		mode, err := s.analyzer.ModeAt(sp.start, normalStart, normalEnd, cfg.ClientTimezone)
		if err != nil {
			return block.Result{}, configuration(errs.Wrap(err, "client"))
		}
		duration = rates.BlockSizes(mode.Qualifier()).AdditionalBlock
	}
	end := sp.start.Add(time.Duration(duration) * time.Minute)

	br, err := s.analyzer.Analyze(sp.start, end, normalStart, normalEnd, cfg.ClientTimezone, cfg.InterpreterTimezone)
	if err != nil {
		return block.Result{}, configuration(err)
	}
	audit.Record(StageBoundary, "boundary analyzed",
		field("start", sp.start),
		field("end", end),
		field("clientScenario", br.Client.Scenario),
		field("interpreterScenario", br.Interpreter.Scenario),
		field("requiresCrossRateLogic", br.RequiresCrossRateLogic),
	)

	var res block.Result
	if sp.extension {
		res, err = s.builder.BuildExtension(sp.start, br, rates)
	} else {
		res, err = s.builder.Build(sp.duration, sp.start, br, rates)
	}
	if err != nil {
		return block.Result{}, err
	}
	audit.Record(StageBlocks, "blocks built",
		field("blocks", len(res.Blocks)),
		field("duration", res.TotalDuration()),
		field("addedDurationToLastBlockWhenRounding", res.AddedDurationToLastBlockWhenRounding),
	)
	return res, nil
}

func blocksCross(blocks []block.Block) bool {
	for _, b := range blocks {
		if b.RequiresCrossRateLogic {
			return true
		}
	}
	return false
}

func configuration(err error) error {
	return errs.Mark(err, errs.ErrConfiguration)
}
