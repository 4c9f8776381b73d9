package risk

// Recommendation message keys. Rendering and localization happen at the
// presentation layer.
const (
	RecUrgent        = "urgent"
	RecMonitor15     = "monitor_15"
	RecMediumReview  = "medium"
	RecMonitor30     = "monitor_30"
	RecNormal        = "normal"
	RecRoutine       = "routine"
	RecCriticalCombo = "critical_combo"
	RecEmergency     = "emergency"

	RecVentricular      = "ventricular"
	RecSupraventricular = "supraventricular"
	RecFusionBeats      = "fusion"
)

// VitalsRecommendations derives the ordered recommendation keys for a
// vitals assessment: a tier pair first, then one entry per
// critical-severity combination.
func VitalsRecommendations(ew EarlyWarningResult, combos []CriticalCombination) []Recommendation {
	var recs []Recommendation
	switch ew.Tier {
	case TierHigh:
		recs = append(recs,
			Recommendation{Key: RecUrgent},
			Recommendation{Key: RecMonitor15},
		)
	case TierMedium:
		recs = append(recs,
			Recommendation{Key: RecMediumReview},
			Recommendation{Key: RecMonitor30},
		)
	default:
		recs = append(recs,
			Recommendation{Key: RecNormal},
			Recommendation{Key: RecRoutine},
		)
	}
	for _, c := range combos {
		if c.Severity != SeverityCritical {
			continue
		}
		recs = append(recs, Recommendation{
			Key:    RecCriticalCombo,
			Params: map[string]string{"description": c.Description},
		})
	}
	return recs
}

// cardiacRecommendation maps an arrhythmia class to its advice key.
// Class 0 (normal) produces none.
func cardiacRecommendation(class int) (Recommendation, bool) {
	switch class {
	case 2, 4:
		return Recommendation{Key: RecVentricular}, true
	case 1:
		return Recommendation{Key: RecSupraventricular}, true
	case 3:
		return Recommendation{Key: RecFusionBeats}, true
	}
	return Recommendation{}, false
}
