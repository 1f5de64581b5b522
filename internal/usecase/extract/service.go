// Package extract implements intent-specific parameter extraction.
// Each intent owns its own rule set; the only shared machinery is the
// tokenizer, the gazetteer, and the date parser.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain"
	"github.com/ebuddy-labs/travelcore/internal/domain/intent"
	"github.com/ebuddy-labs/travelcore/internal/domain/params"
)

// Service dispatches extraction to per-intent routines. Missing
// fields are simply absent from the result; extraction never fails on
// an unparseable field.
type Service struct {
	gaz      *gazetteer
	dispatch map[intent.Intent]func(string, time.Time) params.Parameters
}

// New creates an extractor with the default city gazetteer.
func New() *Service {
	s := &Service{gaz: newGazetteer(defaultCities)}
	s.dispatch = map[intent.Intent]func(string, time.Time) params.Parameters{
		intent.SearchFlight: s.extractFlight,
		intent.BookHotel:    s.extractHotel,
		intent.CancelFlight: s.extractCancellation,
		intent.CheckPolicy:  s.extractTopic,
		intent.Unknown:      s.extractNothing,
	}
	return s
}

// Extract runs the rule set for the given intent against the
// utterance. ref anchors relative date phrases ("tomorrow",
// "next monday").
func (s *Service) Extract(in intent.Intent, utterance string, ref time.Time) (params.Parameters, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, fmt.Errorf("%w: utterance is required", domain.ErrInvalidInput)
	}
	fn, ok := s.dispatch[in]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownIntent, in)
	}
	return fn(utterance, ref), nil
}

func (s *Service) extractNothing(string, time.Time) params.Parameters {
	return params.Parameters{}
}
