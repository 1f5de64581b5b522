package token

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words and punctuation",
			text: "Can I refund my ticket within 24 hours?",
			want: []string{"refund", "ticket", "within", "24", "hours"},
		},
		{
			name: "lowercases",
			text: "REFUND Policy",
			want: []string{"refund", "policy"},
		},
		{
			name: "splits on punctuation",
			text: "check-in: 3pm, check-out: noon",
			want: []string{"check", "3pm", "check", "out", "noon"},
		},
		{
			name: "keeps duplicates and order",
			text: "flight flight hotel flight",
			want: []string{"flight", "flight", "hotel", "flight"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "all stop words",
			text: "what is the",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet([]string{"flight", "hotel", "flight"})
	if len(s) != 2 {
		t.Errorf("set size = %d, want 2 (deduplicated)", len(s))
	}
	if !s.Has("flight") {
		t.Error("Has(flight) = false")
	}
	if s.Has("train") {
		t.Error("Has(train) = true")
	}
}
