package filter

import (
	"strings"
	"testing"
)

func TestNewCondition(t *testing.T) {
	c, err := NewCondition("vendor", "Air China")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key() != "vendor" {
		t.Errorf("Key() = %q", c.Key())
	}
	if c.Match() != "Air China" {
		t.Errorf("Match() = %q", c.Match())
	}
}

func TestNewCondition_Invalid(t *testing.T) {
	if _, err := NewCondition("", "x"); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := NewCondition("vendor", ""); err == nil {
		t.Error("expected error for empty match value")
	}
}

func TestNew(t *testing.T) {
	c1, _ := NewCondition("category", "flight")
	c2, _ := NewCondition("region", "china")

	f, err := New(c1, c2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if len(f.Conditions()) != 2 {
		t.Errorf("len(Conditions()) = %d, want 2", len(f.Conditions()))
	}
}

func TestNew_Empty(t *testing.T) {
	f, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsEmpty() {
		t.Error("IsEmpty() = false")
	}
}

func TestNew_TooManyConditions(t *testing.T) {
	conds := make([]Condition, MaxConditions+1)
	for i := range conds {
		c, _ := NewCondition("category", "flight")
		conds[i] = c
	}
	_, err := New(conds...)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "too many") {
		t.Errorf("error = %q", err)
	}
}
