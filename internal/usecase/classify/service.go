// Package classify maps free-text utterances to supported intents.
package classify

import (
	"fmt"
	"strings"

	"github.com/ebuddy-labs/travelcore/internal/domain"
	"github.com/ebuddy-labs/travelcore/internal/domain/intent"
	"github.com/ebuddy-labs/travelcore/internal/domain/token"
)

// DefaultMinConfidence is the score below which an utterance
// classifies as Unknown.
const DefaultMinConfidence = 0.15

// Service scores utterances against per-intent rule sets.
type Service struct {
	minConfidence float64
}

// New creates a classifier. minConfidence <= 0 selects the default.
func New(minConfidence float64) *Service {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	return &Service{minConfidence: minConfidence}
}

// Classify scores the utterance against every supported intent and
// returns the best candidate. Scores are weighted keyword/pattern
// counts normalized by a per-intent saturation constant and clamped
// to [0,1]. Below the minimum confidence the result is Unknown with
// confidence 1 - bestScore. Ties resolve by the fixed intent.Priority
// order because iteration follows that slice and only strictly higher
// scores displace the current best.
func (s *Service) Classify(utterance string) (intent.Candidate, error) {
	if strings.TrimSpace(utterance) == "" {
		return intent.Candidate{}, fmt.Errorf("%w: utterance is required", domain.ErrInvalidInput)
	}

	lower := strings.ToLower(utterance)
	tokens := token.NewSet(token.Normalize(utterance))

	best := intent.Unknown
	bestScore := 0.0
	for _, name := range intent.Priority {
		score := ruleSets[name].score(lower, tokens)
		if score > bestScore {
			best = name
			bestScore = score
		}
	}

	if bestScore < s.minConfidence {
		return intent.NewCandidate(intent.Unknown, 1-bestScore)
	}
	return intent.NewCandidate(best, bestScore)
}
