package boundary

import (
	"time"
	_ "time/tzdata"

	"interpreting-payments/internal/pkg/errs"

	"cloud.google.com/go/civil"
)

var (
	ErrInvalidTimezone = errs.New("invalid timezone")
	ErrInvalidInterval = errs.New("scheduled start must be before scheduled end")
)

// Details describes how one party's normal hours relate to the scheduled interval.
type Details struct {
	Scenario            Scenario
	NormalHoursStart    time.Time
	NormalHoursEnd      time.Time
	Start               time.Time
	End                 time.Time
	IsStartBeforeNormal bool
	IsEndAfterNormal    bool
}

// ModeAt reports whether t falls inside the party's normal hours.
func (d Details) ModeAt(t time.Time) Mode {
	if !t.Before(d.NormalHoursStart) && t.Before(d.NormalHoursEnd) {
		return ModeNormal
	}
	return ModePeak
}

// CrossingPoints returns the normal-hours boundaries lying strictly inside the interval.
func (d Details) CrossingPoints() []time.Time {
	var points []time.Time
	for _, b := range []time.Time{d.NormalHoursStart, d.NormalHoursEnd} {
		if d.Start.Before(b) && d.End.After(b) {
			points = append(points, b)
		}
	}
	return points
}

type Result struct {
	Client                 Details
	Interpreter            Details
	RequiresCrossRateLogic bool
}

type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies [start, end) against the normal-hours window for both parties. Normal hours
// are projected onto the calendar date of start as seen in each party's timezone.
func (a *Analyzer) Analyze(start, end time.Time, normalStart, normalEnd civil.Time, clientTZ, interpreterTZ string) (Result, error) {
	if !start.Before(end) {
		return Result{}, errs.Wrapf(ErrInvalidInterval, "start %s, end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	client, err := analyzeParty(start, end, normalStart, normalEnd, clientTZ)
	if err != nil {
		return Result{}, errs.Wrap(err, "client")
	}
	interpreter, err := analyzeParty(start, end, normalStart, normalEnd, interpreterTZ)
	if err != nil {
		return Result{}, errs.Wrap(err, "interpreter")
	}

	return Result{
		Client:                 client,
		Interpreter:            interpreter,
		RequiresCrossRateLogic: client.Scenario != interpreter.Scenario,
	}, nil
}

// ModeAt reports the mode of t for a party in tz, with normal hours projected onto the date of t.
func (a *Analyzer) ModeAt(t time.Time, normalStart, normalEnd civil.Time, tz string) (Mode, error) {
	ns, ne, err := normalWindow(t, normalStart, normalEnd, tz)
	if err != nil {
		return "", err
	}
	return Details{NormalHoursStart: ns, NormalHoursEnd: ne}.ModeAt(t), nil
}

func normalWindow(t time.Time, normalStart, normalEnd civil.Time, tz string) (time.Time, time.Time, error) {
	if tz == "" {
		return time.Time{}, time.Time{}, errs.Wrap(ErrInvalidTimezone, "empty timezone")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrapf(ErrInvalidTimezone, "%q", tz)
	}

	date := civil.DateOf(t.In(loc))
	return civil.DateTime{Date: date, Time: normalStart}.In(loc), civil.DateTime{Date: date, Time: normalEnd}.In(loc), nil
}

func analyzeParty(start, end time.Time, normalStart, normalEnd civil.Time, tz string) (Details, error) {
	ns, ne, err := normalWindow(start, normalStart, normalEnd, tz)
	if err != nil {
		return Details{}, err
	}

	d := Details{
		NormalHoursStart:    ns,
		NormalHoursEnd:      ne,
		Start:               start,
		End:                 end,
		IsStartBeforeNormal: start.Before(ns),
		IsEndAfterNormal:    end.After(ne),
	}
	d.Scenario = classify(start, end, ns, ne)
	return d, nil
}

// classify assumes start < end and ns < ne. An interval straddling both boundaries contains the
// whole window and is classified as normal.
func classify(start, end, ns, ne time.Time) Scenario {
	if !end.After(ns) || !start.Before(ne) {
		return ScenarioPeak
	}
	crossesOpen := start.Before(ns) && end.After(ns)
	crossesClose := start.Before(ne) && end.After(ne)
	if crossesOpen != crossesClose {
		return ScenarioCrossBoundary
	}
	return ScenarioNormal
}
