package models

import "testing"

func TestAsset_LowConfidence(t *testing.T) {
	cases := []struct {
		confidence float64
		want       bool
	}{
		{0, false}, // absent means not extraction-derived
		{0.5, true},
		{0.79, true},
		{0.8, false},
		{1.0, false},
	}
	for _, c := range cases {
		a := Asset{Confidence: c.confidence}
		if got := a.LowConfidence(); got != c.want {
			t.Errorf("LowConfidence(%v) = %v, want %v", c.confidence, got, c.want)
		}
	}
}

func TestAnalysisScores_ValidRejectsPartial(t *testing.T) {
	full := &AnalysisScores{Suitability: 8, Market: 6, Growth: 7, Valuation: 5, Risk: 9}
	if !full.Valid() {
		t.Error("full score set reported invalid")
	}

	partial := &AnalysisScores{Suitability: 8, Market: 6, Growth: 7, Valuation: 5}
	if partial.Valid() {
		t.Error("partial score set reported valid, want invalid")
	}

	outOfRange := &AnalysisScores{Suitability: 11, Market: 6, Growth: 7, Valuation: 5, Risk: 9}
	if outOfRange.Valid() {
		t.Error("out-of-range score reported valid")
	}
}

func TestAnalysisScores_AxesOrderAndLabels(t *testing.T) {
	s := &AnalysisScores{Suitability: 1, Market: 2, Growth: 3, Valuation: 4, Risk: 5}
	axes := s.Axes()
	if len(axes) != 5 {
		t.Fatalf("len(axes) = %d, want 5", len(axes))
	}
	wantKeys := []string{"suitability", "market", "growth", "valuation", "risk"}
	for i, key := range wantKeys {
		if axes[i].Key != key {
			t.Errorf("axes[%d].Key = %q, want %q", i, axes[i].Key, key)
		}
	}
	if axes[4].Label != "安全性" {
		t.Errorf("risk axis label = %q, want 安全性", axes[4].Label)
	}
}
