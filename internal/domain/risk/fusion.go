package risk

import (
	"time"

	"github.com/mediguard/mediguard/internal/domain/cardiac"
)

// Source weights for the combined verdict. Weights are not renormalized
// when a source is absent, so a single source caps below its weighted
// maximum.
const (
	cardiacWeight = 0.4
	vitalsWeight  = 0.6
)

var cardiacTierScore = map[cardiac.RiskTier]float64{
	cardiac.TierLow:    1,
	cardiac.TierMedium: 2,
	cardiac.TierHigh:   3,
}

// vitalsTierScore compresses the early-warning total onto the same
// 1..3 scale the cardiac tiers use.
func vitalsTierScore(total int) float64 {
	switch {
	case total >= 7:
		return 3
	case total >= 5:
		return 2
	}
	return 1
}

// FuseRisk combines the cardiac classification and the vitals
// assessment into a weighted verdict. hasVitals reports whether any
// usable channel survived integrity checking; with neither source the
// verdict degrades to unknown.
func FuseRisk(ew EarlyWarningResult, hasVitals bool, combos []CriticalCombination, cls *cardiac.Classification) CombinedVerdict {
	score := 0.0
	sources := 0
	factors := []string{}

	if cls != nil {
		score += cardiacTierScore[cls.RiskTier] * cardiacWeight
		sources++
		if cls.RiskTier == cardiac.TierMedium || cls.RiskTier == cardiac.TierHigh {
			factors = append(factors, "cardiac."+cls.NameKey())
		}
	}
	if hasVitals {
		score += vitalsTierScore(ew.Total) * vitalsWeight
		sources++
	}
	for _, c := range combos {
		factors = append(factors, c.Description)
	}

	if sources == 0 {
		return CombinedVerdict{
			Level:               CombinedUnknown,
			AlertColor:          "gray",
			RiskScore:           0,
			ContributingFactors: factors,
		}
	}

	v := CombinedVerdict{RiskScore: score, ContributingFactors: factors}
	switch {
	case score >= 2.5:
		v.Level = CombinedHigh
		v.AlertColor = "red"
	case score >= 1.5:
		v.Level = CombinedMedium
		v.AlertColor = "yellow"
	default:
		v.Level = CombinedLow
		v.AlertColor = "green"
	}
	v.RequiresImmediateAttention = v.Level == CombinedHigh
	return v
}

// Engine runs the full evaluation pipeline. It is stateless and safe
// for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs integrity checking, early-warning scoring, pattern
// rules, alert resolution, recommendations and risk fusion over one
// reading. cls may be nil when no ECG classification accompanies the
// vitals; it must already be validated.
func (e *Engine) Evaluate(vitals VitalReading, cls *cardiac.Classification) *Evaluation {
	sensorErrs, cleaned := CheckSensorIntegrity(vitals)
	ew := ScoreEarlyWarning(cleaned)
	diastolic := AssessDiastolic(cleaned)
	combos := DetectCriticalCombinations(cleaned)
	alert := ResolveAlert(ew, combos)
	verdict := FuseRisk(ew, len(cleaned) > 0, combos, cls)

	var recs []Recommendation
	if cls != nil {
		if rec, ok := cardiacRecommendation(cls.Class); ok {
			recs = append(recs, rec)
		}
	}
	recs = append(recs, VitalsRecommendations(ew, combos)...)
	if verdict.RequiresImmediateAttention {
		recs = append([]Recommendation{{Key: RecEmergency}}, recs...)
	}

	return &Evaluation{
		SensorErrors:    sensorErrs,
		Cleaned:         cleaned,
		EarlyWarning:    ew,
		Diastolic:       diastolic,
		Combinations:    combos,
		Alert:           alert,
		Recommendations: recs,
		Cardiac:         cls,
		Verdict:         verdict,
		EvaluatedAt:     time.Now().UTC(),
	}
}
