package model

import "testing"

func TestTenseAndMood(t *testing.T) {
	tests := []struct {
		tense        Tense
		presentTense bool
		wantTense    Tense
		wantMood     Mood
	}{
		{TensePast, false, TensePerfect, MoodIndicative},
		{TensePast, true, TensePerfect, MoodIndicative},
		{TenseIndicative, false, "indicative", "indicative"},
		{TenseSubjunctive, false, "subjunctive", "subjunctive"},
		{TenseJussive, false, "jussive", "jussive"},
		{"energetic", false, "energetic", "energetic"},
		{TenseIndicative, true, TensePresent, "indicative"},
		{TenseJussive, true, TensePresent, "jussive"},
	}

	for _, tt := range tests {
		gotTense, gotMood := TenseAndMood(tt.tense, tt.presentTense)
		if gotTense != tt.wantTense || gotMood != tt.wantMood {
			t.Errorf("TenseAndMood(%q, %v) = (%q, %q), want (%q, %q)",
				tt.tense, tt.presentTense, gotTense, gotMood, tt.wantTense, tt.wantMood)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.HTTP.RespectRobots {
		t.Error("Expected robots.txt to be respected by default")
	}
	if cfg.HTTP.MaxBodyBytes <= 0 {
		t.Errorf("Expected positive body limit, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.Output.PresentTense {
		t.Error("Expected present-tense output to be off by default")
	}
}
