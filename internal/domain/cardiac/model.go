package cardiac

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RiskTier is the coarse risk level attached to an arrhythmia class.
type RiskTier string

const (
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

// classInfo describes one beat class of the five-class arrhythmia taxonomy.
type classInfo struct {
	nameKey string
	tier    RiskTier
}

var classCatalog = map[int]classInfo{
	0: {nameKey: "normal", tier: TierLow},
	1: {nameKey: "supraventricular_arrhythmia", tier: TierMedium},
	2: {nameKey: "ventricular_arrhythmia", tier: TierHigh},
	3: {nameKey: "fusion_beats", tier: TierMedium},
	4: {nameKey: "unknown_signal", tier: TierHigh},
}

// TierForClass returns the risk tier for a beat class, and whether the
// class is part of the taxonomy.
func TierForClass(class int) (RiskTier, bool) {
	info, ok := classCatalog[class]
	if !ok {
		return "", false
	}
	return info.tier, true
}

// NameKeyForClass returns the message key naming a beat class. Unknown
// classes fall back to the unclassified key.
func NameKeyForClass(class int) string {
	info, ok := classCatalog[class]
	if !ok {
		return "unknown_signal"
	}
	return info.nameKey
}

// Classification is a single ECG classifier verdict as submitted for
// evaluation.
type Classification struct {
	Class      int      `json:"class"`
	Confidence *float64 `json:"confidence,omitempty"`
	RiskTier   RiskTier `json:"risk_tier,omitempty"`
}

// Validate checks class and confidence bounds. A zero RiskTier is
// filled in from the class catalog; a non-zero one must agree with it.
func (c *Classification) Validate() error {
	tier, ok := TierForClass(c.Class)
	if !ok {
		return fmt.Errorf("unknown arrhythmia class %d", c.Class)
	}
	if c.Confidence != nil && (*c.Confidence < 0 || *c.Confidence > 1) {
		return fmt.Errorf("confidence %g out of range [0,1]", *c.Confidence)
	}
	if c.RiskTier == "" {
		c.RiskTier = tier
	} else if c.RiskTier != tier {
		return fmt.Errorf("risk_tier %q does not match class %d", c.RiskTier, c.Class)
	}
	return nil
}

// NameKey returns the message key naming the classification's beat class.
func (c *Classification) NameKey() string {
	return NameKeyForClass(c.Class)
}

// Record maps to the cardiac_classification table.
type Record struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	Class      int       `db:"class" json:"class"`
	Confidence *float64  `db:"confidence" json:"confidence,omitempty"`
	RiskTier   string    `db:"risk_tier" json:"risk_tier"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
