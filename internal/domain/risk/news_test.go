package risk

import "testing"

func TestScoreEarlyWarning_ParameterBands(t *testing.T) {
	cases := []struct {
		vital Vital
		value float64
		score int
	}{
		{VitalRespiratoryRate, 8, 3},
		{VitalRespiratoryRate, 9, 1},
		{VitalRespiratoryRate, 11, 1},
		{VitalRespiratoryRate, 12, 0},
		{VitalRespiratoryRate, 20, 0},
		{VitalRespiratoryRate, 21, 2},
		{VitalRespiratoryRate, 24, 2},
		{VitalRespiratoryRate, 25, 3},
		{VitalSpO2, 91, 3},
		{VitalSpO2, 92, 2},
		{VitalSpO2, 93, 2},
		{VitalSpO2, 94, 1},
		{VitalSpO2, 95, 1},
		{VitalSpO2, 96, 0},
		{VitalSystolicBP, 90, 3},
		{VitalSystolicBP, 91, 2},
		{VitalSystolicBP, 100, 2},
		{VitalSystolicBP, 101, 1},
		{VitalSystolicBP, 110, 1},
		{VitalSystolicBP, 111, 0},
		{VitalSystolicBP, 219, 0},
		{VitalSystolicBP, 220, 3},
		{VitalPulse, 40, 3},
		{VitalPulse, 41, 1},
		{VitalPulse, 50, 1},
		{VitalPulse, 51, 0},
		{VitalPulse, 90, 0},
		{VitalPulse, 91, 1},
		{VitalPulse, 110, 1},
		{VitalPulse, 111, 2},
		{VitalPulse, 130, 2},
		{VitalPulse, 131, 3},
		{VitalTemperature, 35.0, 3},
		{VitalTemperature, 35.1, 1},
		{VitalTemperature, 36.0, 1},
		{VitalTemperature, 36.1, 0},
		{VitalTemperature, 38.0, 0},
		{VitalTemperature, 38.1, 1},
		{VitalTemperature, 39.0, 1},
		{VitalTemperature, 39.1, 2},
	}
	for _, c := range cases {
		res := ScoreEarlyWarning(VitalReading{c.vital: c.value})
		if len(res.Scores) != 1 {
			t.Fatalf("%s=%g: expected one scored parameter, got %d", c.vital, c.value, len(res.Scores))
		}
		if res.Scores[0].Score != c.score {
			t.Errorf("%s=%g: got score %d, want %d", c.vital, c.value, res.Scores[0].Score, c.score)
		}
	}
}

func TestScoreEarlyWarning_DiastolicNotScored(t *testing.T) {
	res := ScoreEarlyWarning(VitalReading{VitalDiastolicBP: 120})
	if len(res.Scores) != 0 {
		t.Errorf("diastolic should not be NEWS-scored, got %v", res.Scores)
	}
	if res.Total != 0 {
		t.Errorf("got total %d, want 0", res.Total)
	}
}

func TestScoreEarlyWarning_TotalIsSum(t *testing.T) {
	res := ScoreEarlyWarning(VitalReading{
		VitalRespiratoryRate: 22, // 2
		VitalSpO2:            93, // 2
		VitalSystolicBP:      95, // 2
		VitalPulse:           115, // 2
		VitalTemperature:     38.5, // 1
	})
	if res.Total != 9 {
		t.Errorf("got total %d, want 9", res.Total)
	}
	if res.Tier != TierHigh || res.Color != "red" {
		t.Errorf("got tier %s/%s, want high/red", res.Tier, res.Color)
	}
}

func TestScoreEarlyWarning_MissingVitalsExcluded(t *testing.T) {
	res := ScoreEarlyWarning(VitalReading{VitalPulse: 72})
	if len(res.Scores) != 1 {
		t.Fatalf("expected 1 scored parameter, got %d", len(res.Scores))
	}
	if res.Scores[0].Vital != VitalPulse {
		t.Errorf("got vital %s", res.Scores[0].Vital)
	}
}

func TestTierForTotal_Boundaries(t *testing.T) {
	cases := []struct {
		total int
		tier  RiskTier
		color string
	}{
		{0, TierLow, "green"},
		{4, TierLow, "green"},
		{5, TierMedium, "yellow"},
		{6, TierMedium, "yellow"},
		{7, TierHigh, "red"},
		{15, TierHigh, "red"},
	}
	for _, c := range cases {
		tier, color := TierForTotal(c.total)
		if tier != c.tier || color != c.color {
			t.Errorf("total %d: got %s/%s, want %s/%s", c.total, tier, color, c.tier, c.color)
		}
	}
}
