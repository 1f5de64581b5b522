// Package intent defines the supported intent categories and the
// classifier's result type.
package intent

import "fmt"

// Intent is an enumerated user-goal category.
type Intent string

// Supported intents.
const (
	SearchFlight Intent = "SearchFlight"
	BookHotel    Intent = "BookHotel"
	CancelFlight Intent = "CancelFlight"
	CheckPolicy  Intent = "CheckPolicy"
	// Unknown is the fallback when no intent scores above the
	// minimum-confidence threshold.
	Unknown Intent = "Unknown"
)

// Priority is the fixed tie-break order for ambiguous utterances.
// When two intents score equally, the one listed earlier wins. This
// ordering is policy, not an implementation accident: changing it
// changes how ambiguous utterances classify.
var Priority = []Intent{SearchFlight, BookHotel, CancelFlight, CheckPolicy}

// IsValid checks if the intent is one of the supported values.
func (i Intent) IsValid() bool {
	switch i {
	case SearchFlight, BookHotel, CancelFlight, CheckPolicy, Unknown:
		return true
	default:
		return false
	}
}

// Candidate is the classifier's winning intent with its confidence.
type Candidate struct {
	name       Intent
	confidence float64
}

// NewCandidate validates and creates a Candidate.
func NewCandidate(name Intent, confidence float64) (Candidate, error) {
	if !name.IsValid() {
		return Candidate{}, fmt.Errorf("invalid intent %q", name)
	}
	if confidence < 0 || confidence > 1 {
		return Candidate{}, fmt.Errorf("confidence must be between 0 and 1, got %g", confidence)
	}
	return Candidate{name: name, confidence: confidence}, nil
}

// Intent returns the winning intent.
func (c Candidate) Intent() Intent { return c.name }

// Confidence returns the classifier certainty in [0,1].
func (c Candidate) Confidence() float64 { return c.confidence }

// IsUnknown reports whether the utterance was not recognized.
func (c Candidate) IsUnknown() bool { return c.name == Unknown }
