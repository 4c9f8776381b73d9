package risk

import "math"

// scoreRange scores a closed value interval. Intervals are matched in
// order and the first hit wins; a value covered by no interval scores 0.
type scoreRange struct {
	min, max float64
	score    int
}

// newsParameter is one row of the early-warning table.
type newsParameter struct {
	vital  Vital
	label  string
	ranges []scoreRange
}

var negInf = math.Inf(-1)
var posInf = math.Inf(1)

// newsTable holds the NEWS scoring bands. The diastolic channel is
// deliberately absent: it is staged separately, not NEWS-scored.
var newsTable = []newsParameter{
	{
		vital: VitalRespiratoryRate,
		label: "param.respiratory_rate",
		ranges: []scoreRange{
			{negInf, 8, 3},
			{9, 11, 1},
			{12, 20, 0},
			{21, 24, 2},
			{25, posInf, 3},
		},
	},
	{
		vital: VitalSpO2,
		label: "param.spo2",
		ranges: []scoreRange{
			{negInf, 91, 3},
			{92, 93, 2},
			{94, 95, 1},
			{96, posInf, 0},
		},
	},
	{
		vital: VitalSystolicBP,
		label: "param.systolic_bp",
		ranges: []scoreRange{
			{negInf, 90, 3},
			{91, 100, 2},
			{101, 110, 1},
			{111, 219, 0},
			{220, posInf, 3},
		},
	},
	{
		vital: VitalPulse,
		label: "param.pulse",
		ranges: []scoreRange{
			{negInf, 40, 3},
			{41, 50, 1},
			{51, 90, 0},
			{91, 110, 1},
			{111, 130, 2},
			{131, posInf, 3},
		},
	},
	{
		vital: VitalTemperature,
		label: "param.temperature",
		ranges: []scoreRange{
			{negInf, 35.0, 3},
			{35.1, 36.0, 1},
			{36.1, 38.0, 0},
			{38.1, 39.0, 1},
			{39.1, posInf, 2},
		},
	},
}

func scoreValue(ranges []scoreRange, value float64) int {
	for _, r := range ranges {
		if value >= r.min && value <= r.max {
			return r.score
		}
	}
	return 0
}

// TierForTotal maps an aggregate score to an early-warning tier.
func TierForTotal(total int) (RiskTier, string) {
	switch {
	case total >= 7:
		return TierHigh, "red"
	case total >= 5:
		return TierMedium, "yellow"
	case total >= 0:
		return TierLow, "green"
	}
	return TierUnknown, "gray"
}

// ScoreEarlyWarning scores each measurable vital in the cleaned reading
// and aggregates the total. Absent channels contribute nothing.
func ScoreEarlyWarning(cleaned VitalReading) EarlyWarningResult {
	res := EarlyWarningResult{}
	for _, p := range newsTable {
		v, ok := cleaned[p.vital]
		if !ok {
			continue
		}
		score := scoreValue(p.ranges, v)
		res.Scores = append(res.Scores, ParameterScore{
			Vital: p.vital,
			Label: p.label,
			Value: v,
			Score: score,
		})
		res.Total += score
	}
	res.Tier, res.Color = TierForTotal(res.Total)
	return res
}
