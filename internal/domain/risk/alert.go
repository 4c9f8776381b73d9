package risk

// ResolveAlert collapses the early-warning tier and the detected
// combinations into the single per-reading alert. Any critical-severity
// combination dominates the tier.
func ResolveAlert(ew EarlyWarningResult, combos []CriticalCombination) FinalAlert {
	for _, c := range combos {
		if c.Severity == SeverityCritical {
			return FinalAlert{Level: AlertCritical, Color: "purple", Action: ActionImmediateIntervention}
		}
	}
	switch ew.Tier {
	case TierHigh:
		return FinalAlert{Level: AlertRed, Color: "red", Action: ActionUrgentResponse}
	case TierMedium:
		return FinalAlert{Level: AlertYellow, Color: "yellow", Action: ActionPromptAssessment}
	}
	return FinalAlert{Level: AlertGreen, Color: "green", Action: ActionRoutineMonitoring}
}
