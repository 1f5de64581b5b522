package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/ebuddy-labs/travelcore/internal/domain"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/filter"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("refund policy", filter.Filter{}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "refund policy" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.TopK() != DefaultTopK {
		t.Errorf("TopK() = %d, want %d", r.TopK(), DefaultTopK)
	}
	if r.Threshold() != DefaultThreshold {
		t.Errorf("Threshold() = %f, want %f", r.Threshold(), DefaultThreshold)
	}
}

func TestNew_ExplicitValues(t *testing.T) {
	c, _ := filter.NewCondition("vendor", "Air China")
	f, _ := filter.New(c)

	r, err := New("baggage", f, 5, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TopK() != 5 {
		t.Errorf("TopK() = %d", r.TopK())
	}
	if r.Threshold() != 0.4 {
		t.Errorf("Threshold() = %f", r.Threshold())
	}
	if r.Filters().IsEmpty() {
		t.Error("Filters().IsEmpty() = true, want false")
	}
}

func TestNew_EmptyQuery(t *testing.T) {
	_, err := New("   ", filter.Filter{}, 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("x", MaxQueryLength+1), filter.Filter{}, 0, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_QueryAtMaxLength(t *testing.T) {
	_, err := New(strings.Repeat("x", MaxQueryLength), filter.Filter{}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_TopKClamping(t *testing.T) {
	tests := []struct {
		name     string
		topK     int
		wantTopK int
	}{
		{"negative", -1, DefaultTopK},
		{"zero", 0, DefaultTopK},
		{"normal", 10, 10},
		{"over max", 100, MaxTopK},
		{"exactly max", MaxTopK, MaxTopK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("q", filter.Filter{}, tt.topK, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.TopK() != tt.wantTopK {
				t.Errorf("TopK() = %d, want %d", r.TopK(), tt.wantTopK)
			}
		})
	}
}

func TestNew_ThresholdValidation(t *testing.T) {
	for _, v := range []float64{0.1, 0.5, 1} {
		if _, err := New("q", filter.Filter{}, 0, v); err != nil {
			t.Errorf("unexpected error for threshold=%f: %v", v, err)
		}
	}
	for _, v := range []float64{-0.1, 1.1, 2} {
		if _, err := New("q", filter.Filter{}, 0, v); err == nil {
			t.Errorf("expected error for threshold=%f", v)
		}
	}
}
