// Package retrieval implements keyword relevance scoring over the
// policy document corpus.
package retrieval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ebuddy-labs/travelcore/internal/domain"
	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/filter"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/request"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/result"
	"github.com/ebuddy-labs/travelcore/internal/domain/token"
	"github.com/ebuddy-labs/travelcore/internal/metrics"
)

// Service scores documents against queries. It is stateless apart
// from the fixed boost table, so concurrent use needs no coordination.
type Service struct {
	boosts []boostTerm
}

// New creates a retrieval service with the default boost table.
func New() *Service {
	return &Service{boosts: defaultBoosts}
}

// Retrieve scores every candidate document against the query and
// returns hits at or above the threshold, sorted by score descending,
// at most topK. Ties keep original document order. An empty candidate
// set after filtering is an empty result, not an error.
func (s *Service) Retrieve(docs []document.Document, req *request.Request) ([]result.Result, error) {
	if err := validateFilters(req.Filters()); err != nil {
		metrics.RetrievalQueriesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	queryTokens := token.Normalize(req.Query())
	if len(queryTokens) == 0 {
		// Query was all stop words: no signal to score on.
		metrics.RetrievalQueriesTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		return nil, nil
	}
	querySet := token.NewSet(queryTokens)
	queryLower := strings.ToLower(req.Query())

	var hits []result.Result
	for _, doc := range docs {
		if !matchesFilters(doc, req.Filters()) {
			continue
		}
		score, matched := s.score(queryTokens, querySet, queryLower, doc)
		if score < req.Threshold() {
			continue
		}
		hits = append(hits, result.New(doc.ID(), score, matched))
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score() > hits[j].Score()
	})
	if len(hits) > req.TopK() {
		hits = hits[:req.TopK()]
	}

	outcome := metrics.OutcomeOK
	if len(hits) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RetrievalQueriesTotal.WithLabelValues(outcome).Inc()
	return hits, nil
}

// score computes |Q∩D|/|Q| plus additive boosts, clamped to [0,1].
// Matched terms are reported in query order, deduplicated.
func (s *Service) score(
	queryTokens []string, querySet token.Set, queryLower string, doc document.Document,
) (float64, []string) {
	docSet := token.NewSet(token.Normalize(doc.Text()))
	docLower := strings.ToLower(doc.Text())

	var matched []string
	seen := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if docSet.Has(t) {
			matched = append(matched, t)
		}
	}

	score := float64(len(matched)) / float64(len(seen))

	for _, b := range s.boosts {
		if b.presentIn(queryLower, querySet) && b.presentIn(docLower, docSet) {
			score += b.weight
		}
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score, matched
}

// validateFilters ensures every filter key belongs to the document
// metadata schema.
func validateFilters(f filter.Filter) error {
	for _, c := range f.Conditions() {
		if !document.KnownField(c.Key()) {
			return fmt.Errorf("%w: unknown filter field %q", domain.ErrMalformedFilter, c.Key())
		}
	}
	return nil
}

// matchesFilters reports whether the document metadata exactly
// matches every filter condition.
func matchesFilters(doc document.Document, f filter.Filter) bool {
	for _, c := range f.Conditions() {
		v, ok := doc.Metadata(c.Key())
		if !ok || v != c.Match() {
			return false
		}
	}
	return true
}
