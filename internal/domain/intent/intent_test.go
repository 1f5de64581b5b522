package intent

import "testing"

func TestIsValid(t *testing.T) {
	for _, in := range []Intent{SearchFlight, BookHotel, CancelFlight, CheckPolicy, Unknown} {
		if !in.IsValid() {
			t.Errorf("IsValid(%q) = false", in)
		}
	}
	if Intent("Teleport").IsValid() {
		t.Error("IsValid(Teleport) = true")
	}
}

func TestPriority_CoversAllScoredIntents(t *testing.T) {
	// Every scored intent must appear exactly once; Unknown is the
	// fallback and never competes.
	seen := make(map[Intent]int)
	for _, in := range Priority {
		seen[in]++
	}
	for _, in := range []Intent{SearchFlight, BookHotel, CancelFlight, CheckPolicy} {
		if seen[in] != 1 {
			t.Errorf("intent %q appears %d times in Priority, want 1", in, seen[in])
		}
	}
	if seen[Unknown] != 0 {
		t.Error("Unknown must not be in Priority")
	}
}

func TestNewCandidate(t *testing.T) {
	c, err := NewCandidate(SearchFlight, 0.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Intent() != SearchFlight {
		t.Errorf("Intent() = %q", c.Intent())
	}
	if c.Confidence() != 0.8 {
		t.Errorf("Confidence() = %f", c.Confidence())
	}
	if c.IsUnknown() {
		t.Error("IsUnknown() = true")
	}
}

func TestNewCandidate_Invalid(t *testing.T) {
	if _, err := NewCandidate("Teleport", 0.5); err == nil {
		t.Error("expected error for invalid intent")
	}
	if _, err := NewCandidate(SearchFlight, -0.1); err == nil {
		t.Error("expected error for negative confidence")
	}
	if _, err := NewCandidate(SearchFlight, 1.1); err == nil {
		t.Error("expected error for confidence > 1")
	}
}

func TestCandidate_IsUnknown(t *testing.T) {
	c, err := NewCandidate(Unknown, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsUnknown() {
		t.Error("IsUnknown() = false")
	}
}
