package boundary

import "interpreting-payments/internal/domain/rate"

type Scenario string

const (
	ScenarioNormal        Scenario = "normal"
	ScenarioPeak          Scenario = "peak"
	ScenarioCrossBoundary Scenario = "cross-boundary"
)

func (s Scenario) String() string {
	return string(s)
}

func (s Scenario) IsValid() bool {
	switch s {
	case ScenarioNormal, ScenarioPeak, ScenarioCrossBoundary:
		return true
	default:
		return false
	}
}

// Mode is the part of the day a single instant falls into for one party.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModePeak   Mode = "peak"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) Qualifier() rate.Qualifier {
	if m == ModePeak {
		return rate.QualifierAfterHours
	}
	return rate.QualifierStandardHours
}
