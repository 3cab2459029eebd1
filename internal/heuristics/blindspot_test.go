package heuristics

import (
	"strings"
	"testing"
)

func containsSubstring(findings []string, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func TestAnalyzeBlindspots_NeuralOverload(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Ship the fix",
		Context: "I am so overwhelmed and panicked about this emergency asap",
	})

	if got.PsychologicalTrace != TraceOverload {
		t.Errorf("expected trace %q, got %q", TraceOverload, got.PsychologicalTrace)
	}
	if !containsSubstring(got.Blindspots, "Neural Overload") {
		t.Errorf("expected a neural overload finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_ConfirmationBiasAndLackOfAlternatives(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:        "Rewrite the backend",
		Context:      "This is absolutely the right call, obviously we must do it now",
		Alternatives: []string{"Do nothing"},
	})

	if !containsSubstring(got.Blindspots, "Confirmation Bias") {
		t.Errorf("expected a confirmation bias finding, got %v", got.Blindspots)
	}
	if !containsSubstring(got.Blindspots, "Lack of Alternatives") {
		t.Errorf("expected a lack-of-alternatives finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_BiasFindingListsFirstThreeTerms(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Choice",
		Context: strings.Repeat("filler words here ", 3) + "absolutely always never obviously perfect",
	})

	if !containsSubstring(got.Blindspots, `"absolutely, always, never"`) {
		t.Errorf("expected finding naming the first three matched terms, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_Groupthink(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Vendor switch",
		Context: "the whole team agreed after a consensus workshop held last week",
	})

	if !containsSubstring(got.Blindspots, "Groupthink") {
		t.Errorf("expected a groupthink finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_ShallowContext(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name    string
		context string
		want    bool
	}{
		{"short context flagged", "brief note", true},
		{"empty context flagged", "", true},
		{"long context passes", strings.Repeat("plenty of background detail here ", 3), false},
		// 30 runes but 60 bytes: still shallow.
		{"multi-byte short context flagged", strings.Repeat("é", 30), true},
		{"multi-byte long context passes", strings.Repeat("é", 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.AnalyzeBlindspots(BlindspotInput{Title: "Choice", Context: tt.context})
			if containsSubstring(got.Blindspots, "Shallow Context") != tt.want {
				t.Errorf("shallow-context finding presence = %v, want %v (findings %v)",
					!tt.want, tt.want, got.Blindspots)
			}
		})
	}
}

func TestAnalyzeBlindspots_LossAversion(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Keep the legacy plan",
		Context: "we should take the safe bet here and protect the existing base",
	})

	if !containsSubstring(got.Blindspots, "Loss Aversion") {
		t.Errorf("expected a loss aversion finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_SunkCost(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Continue the migration",
		Context: "we've already invested two quarters so stopping now feels wasteful",
	})

	if !containsSubstring(got.Blindspots, "Sunk Cost") {
		t.Errorf("expected a sunk cost finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_AvailabilityBias(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Adopt the framework",
		Context: "it is trending and everyone is talking about it since last month",
	})

	if !containsSubstring(got.Blindspots, "Availability Bias") {
		t.Errorf("expected an availability bias finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_NeuralFriction(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Pick a region",
		Context: "however despite the conflicting benchmarks I am unsure if this contradicts our latency goals",
	})

	if got.PsychologicalTrace != TraceFriction {
		t.Errorf("expected trace %q, got %q", TraceFriction, got.PsychologicalTrace)
	}
	if !containsSubstring(got.Blindspots, "Neural Friction") {
		t.Errorf("expected a neural friction finding, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_OverloadOutranksFriction(t *testing.T) {
	e := New(nil)

	// Both lexicons fire; the overload branch wins and friction is not
	// reported.
	got := e.AnalyzeBlindspots(BlindspotInput{
		Title: "Scramble",
		Context: "panicked and overwhelmed by this urgent emergency, however despite " +
			"conflicting data I am unsure if this contradicts the plan",
	})

	if got.PsychologicalTrace != TraceOverload {
		t.Errorf("expected trace %q, got %q", TraceOverload, got.PsychologicalTrace)
	}
	if containsSubstring(got.Blindspots, "Neural Friction") {
		t.Errorf("friction finding should not co-occur with overload, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_CleanInputIsStable(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:        "Choose a payroll provider",
		Context:      "We compared three vendors on price, compliance coverage and onboarding time over two weeks.",
		Decision:     "Go with the mid-tier vendor on an annual contract",
		Alternatives: []string{"vendor a", "vendor b", "vendor c"},
	})

	if got.PsychologicalTrace != TraceStable {
		t.Errorf("expected trace %q, got %q", TraceStable, got.PsychologicalTrace)
	}
	if len(got.Blindspots) != 0 {
		t.Errorf("expected no findings for a clean decision, got %v", got.Blindspots)
	}
}

func TestAnalyzeBlindspots_EmptyInput(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{})

	// No text means no lexicon hits, but the structural checks still fire.
	if !containsSubstring(got.Blindspots, "Lack of Alternatives") {
		t.Errorf("expected a lack-of-alternatives finding, got %v", got.Blindspots)
	}
	if !containsSubstring(got.Blindspots, "Shallow Context") {
		t.Errorf("expected a shallow-context finding, got %v", got.Blindspots)
	}
	if got.PsychologicalTrace != TraceStable {
		t.Errorf("expected trace %q, got %q", TraceStable, got.PsychologicalTrace)
	}
}

func TestAnalyzeBlindspots_ChecksFireIndependently(t *testing.T) {
	e := New(nil)

	got := e.AnalyzeBlindspots(BlindspotInput{
		Title:   "Double down",
		Context: "obviously we must keep going because we already invested so much, everyone agreed",
	})

	for _, want := range []string{"Confirmation Bias", "Sunk Cost", "Groupthink", "Lack of Alternatives"} {
		if !containsSubstring(got.Blindspots, want) {
			t.Errorf("expected a %s finding, got %v", want, got.Blindspots)
		}
	}
}
