// Package request defines the validated retrieval query.
package request

import (
	"fmt"
	"strings"

	"github.com/ebuddy-labs/travelcore/internal/domain"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/filter"
)

// Retrieval parameter limits.
const (
	// MaxQueryLength is the maximum allowed query length.
	MaxQueryLength = 1024
	DefaultTopK    = 3
	MaxTopK        = 20
	// DefaultThreshold is the minimum score a document must reach to
	// appear in results.
	DefaultThreshold = 0.2
)

// Request is a validated retrieval query.
type Request struct {
	query     string
	filters   filter.Filter
	topK      int
	threshold float64
}

// New validates and normalizes retrieval parameters.
// Defaults: topK=3, threshold=0.2. TopK is clamped to MaxTopK.
func New(query string, filters filter.Filter, topK int, threshold float64) (Request, error) {
	if strings.TrimSpace(query) == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidInput, MaxQueryLength)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}
	if threshold < 0 || threshold > 1 {
		return Request{}, fmt.Errorf("%w: threshold must be between 0 and 1", domain.ErrInvalidInput)
	}
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	return Request{query: query, filters: filters, topK: topK, threshold: threshold}, nil
}

// Query returns the query text.
func (r *Request) Query() string { return r.query }

// Filters returns the metadata pre-filter.
func (r *Request) Filters() filter.Filter { return r.filters }

// TopK returns the maximum number of results.
func (r *Request) TopK() int { return r.topK }

// Threshold returns the minimum score for inclusion.
func (r *Request) Threshold() float64 { return r.threshold }
