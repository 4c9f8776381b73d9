package cardiac

import "testing"

func TestTierForClass(t *testing.T) {
	cases := []struct {
		class int
		tier  RiskTier
	}{
		{0, TierLow},
		{1, TierMedium},
		{2, TierHigh},
		{3, TierMedium},
		{4, TierHigh},
	}
	for _, c := range cases {
		tier, ok := TierForClass(c.class)
		if !ok {
			t.Fatalf("class %d not in catalog", c.class)
		}
		if tier != c.tier {
			t.Errorf("class %d: got tier %q, want %q", c.class, tier, c.tier)
		}
	}
	if _, ok := TierForClass(5); ok {
		t.Error("class 5 should not be in catalog")
	}
	if _, ok := TierForClass(-1); ok {
		t.Error("class -1 should not be in catalog")
	}
}

func TestClassificationValidate_FillsTier(t *testing.T) {
	c := &Classification{Class: 2}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.RiskTier != TierHigh {
		t.Errorf("got tier %q, want %q", c.RiskTier, TierHigh)
	}
}

func TestClassificationValidate_RejectsMismatchedTier(t *testing.T) {
	c := &Classification{Class: 0, RiskTier: TierHigh}
	if err := c.Validate(); err == nil {
		t.Error("expected error for mismatched tier")
	}
}

func TestClassificationValidate_ConfidenceBounds(t *testing.T) {
	for _, conf := range []float64{0, 0.5, 1} {
		v := conf
		c := &Classification{Class: 1, Confidence: &v}
		if err := c.Validate(); err != nil {
			t.Errorf("confidence %g: unexpected error: %v", conf, err)
		}
	}
	for _, conf := range []float64{-0.1, 1.1} {
		v := conf
		c := &Classification{Class: 1, Confidence: &v}
		if err := c.Validate(); err == nil {
			t.Errorf("confidence %g: expected error", conf)
		}
	}
}

func TestClassificationValidate_UnknownClass(t *testing.T) {
	c := &Classification{Class: 7}
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown class")
	}
}

func TestNameKeyForClass(t *testing.T) {
	if got := NameKeyForClass(2); got != "ventricular_arrhythmia" {
		t.Errorf("got %q", got)
	}
	if got := NameKeyForClass(99); got != "unknown_signal" {
		t.Errorf("fallback: got %q", got)
	}
}
