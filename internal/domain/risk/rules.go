package risk

// Diastolic staging cutoffs (mmHg).
const (
	diastolicHypotension = 60
	diastolicStage1      = 99
	diastolicStage2      = 109
)

// AssessDiastolic stages the diastolic pressure. Returns nil when the
// cleaned reading has no diastolic channel.
func AssessDiastolic(cleaned VitalReading) *DiastolicAssessment {
	v, ok := cleaned[VitalDiastolicBP]
	if !ok {
		return nil
	}
	a := &DiastolicAssessment{Value: v}
	switch {
	case v < diastolicHypotension:
		a.Status = "hypotension"
		a.Severity = SeverityMedium
	case v > diastolicStage2:
		a.Status = "severe_hypertension"
		a.Severity = SeverityHigh
	case v > diastolicStage1:
		a.Status = "moderate_hypertension"
		a.Severity = SeverityMedium
	default:
		a.Status = "normal"
		a.Severity = SeverityLow
	}
	return a
}

// comboRule is one multi-vital pattern. Both operands must be present
// in the cleaned reading or the rule stays silent.
type comboRule struct {
	typ         CombinationType
	severity    Severity
	description string
	a, b        Vital
	match       func(a, b float64) bool
}

var comboRules = []comboRule{
	{
		typ:         ComboRespiratoryDistress,
		severity:    SeverityCritical,
		description: "combo.respiratory_distress",
		a:           VitalSpO2,
		b:           VitalRespiratoryRate,
		match:       func(spo2, rr float64) bool { return spo2 < 92 && rr > 22 },
	},
	{
		typ:         ComboPotentialShock,
		severity:    SeverityCritical,
		description: "combo.potential_shock",
		a:           VitalSystolicBP,
		b:           VitalPulse,
		match:       func(sbp, pulse float64) bool { return sbp < 90 && pulse > 100 },
	},
	{
		typ:         ComboPotentialSepsis,
		severity:    SeverityHigh,
		description: "combo.potential_sepsis",
		a:           VitalTemperature,
		b:           VitalPulse,
		match:       func(temp, pulse float64) bool { return temp > 38.3 && pulse > 110 },
	},
}

// DetectCriticalCombinations evaluates every pattern rule independently
// over the cleaned reading and reports all matches.
func DetectCriticalCombinations(cleaned VitalReading) []CriticalCombination {
	var out []CriticalCombination
	for _, r := range comboRules {
		a, aOK := cleaned[r.a]
		b, bOK := cleaned[r.b]
		if !aOK || !bOK {
			continue
		}
		if r.match(a, b) {
			out = append(out, CriticalCombination{
				Type:        r.typ,
				Severity:    r.severity,
				Description: r.description,
			})
		}
	}
	return out
}
