// Package result defines the scored retrieval hit.
package result

// Result is a single retrieval hit. It is created per query and never
// persisted or cached across calls.
type Result struct {
	documentID   string
	score        float64
	matchedTerms []string
}

// New creates a retrieval result.
func New(documentID string, score float64, matchedTerms []string) Result {
	return Result{documentID: documentID, score: score, matchedTerms: matchedTerms}
}

// DocumentID returns the matched document identifier.
func (r *Result) DocumentID() string { return r.documentID }

// Score returns the relevance score in [0,1].
func (r *Result) Score() float64 { return r.score }

// MatchedTerms returns the query terms found in the document.
func (r *Result) MatchedTerms() []string { return r.matchedTerms }
