package pricing

type CalculationType string

const (
	CalculationTypePreliminaryEstimate   CalculationType = "preliminary-estimate"
	CalculationTypeSingleBlock           CalculationType = "single-block"
	CalculationTypeAppointmentStartPrice CalculationType = "appointment-start-price"
	CalculationTypeAppointmentEndPrice   CalculationType = "appointment-end-price"
	CalculationTypeDetailedBreakdown     CalculationType = "detailed-breakdown"
)

func (t CalculationType) String() string {
	return string(t)
}

func (t CalculationType) IsValid() bool {
	switch t {
	case CalculationTypePreliminaryEstimate,
		CalculationTypeSingleBlock,
		CalculationTypeAppointmentStartPrice,
		CalculationTypeAppointmentEndPrice,
		CalculationTypeDetailedBreakdown:
		return true
	default:
		return false
	}
}

// includesExtraDays reports whether extra-day sub-appointments are folded into the result.
func (t CalculationType) includesExtraDays() bool {
	return t == CalculationTypePreliminaryEstimate || t == CalculationTypeDetailedBreakdown
}
