package risk

import "testing"

func TestResolveAlert_TierMapping(t *testing.T) {
	cases := []struct {
		tier   RiskTier
		level  AlertLevel
		color  string
		action Action
	}{
		{TierLow, AlertGreen, "green", ActionRoutineMonitoring},
		{TierMedium, AlertYellow, "yellow", ActionPromptAssessment},
		{TierHigh, AlertRed, "red", ActionUrgentResponse},
	}
	for _, c := range cases {
		a := ResolveAlert(EarlyWarningResult{Tier: c.tier}, nil)
		if a.Level != c.level || a.Color != c.color || a.Action != c.action {
			t.Errorf("tier %s: got %+v", c.tier, a)
		}
	}
}

func TestResolveAlert_CriticalComboDominates(t *testing.T) {
	combos := []CriticalCombination{{Type: ComboPotentialShock, Severity: SeverityCritical}}
	a := ResolveAlert(EarlyWarningResult{Tier: TierLow}, combos)
	if a.Level != AlertCritical || a.Color != "purple" || a.Action != ActionImmediateIntervention {
		t.Errorf("got %+v, want critical/purple/immediate_intervention", a)
	}
}

func TestResolveAlert_HighSeverityComboDoesNotEscalate(t *testing.T) {
	// potential_sepsis carries high severity, not critical, so the
	// early-warning tier still decides the alert.
	combos := []CriticalCombination{{Type: ComboPotentialSepsis, Severity: SeverityHigh}}
	a := ResolveAlert(EarlyWarningResult{Tier: TierMedium}, combos)
	if a.Level != AlertYellow {
		t.Errorf("got level %s, want yellow", a.Level)
	}
}
