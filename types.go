package travelcore

import (
	"fmt"
	"sort"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/params"
	"github.com/ebuddy-labs/travelcore/internal/domain/policy"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/filter"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/result"
)

// Document is a policy text with filterable metadata.
type Document struct {
	ID       string
	Text     string
	Category string
	Region   string
	Vendor   string
}

// QueryResult is a scored retrieval hit.
type QueryResult struct {
	DocumentID   string
	Score        float64
	MatchedTerms []string
}

// IntentCandidate is the winning intent for an utterance.
type IntentCandidate struct {
	Intent     string
	Confidence float64
}

// Value kinds for extracted parameters.
const (
	KindString = string(params.KindString)
	KindDate   = string(params.KindDate)
	KindNumber = string(params.KindNumber)
)

// ParamValue is a tagged extracted parameter value.
type ParamValue struct {
	Kind   string
	Text   string    // set for Kind == KindString
	Number float64   // set for Kind == KindNumber
	Date   time.Time // set for Kind == KindDate
}

// Warning is a triggered policy rule.
type Warning struct {
	Rule     string
	Message  string
	Severity string
}

// RetrieveOptions configures a retrieval query. Zero values select
// the client defaults.
type RetrieveOptions struct {
	// Filters restrict candidates by exact metadata match
	// (category, region, vendor).
	Filters   map[string]string
	TopK      int
	Threshold float64
}

// Outcome is the aggregated pipeline result for one utterance.
type Outcome struct {
	Utterance  string
	Intent     string
	Confidence float64
	Parameters map[string]ParamValue
	Warnings   []Warning
	// Answer and Sources are set for CheckPolicy utterances only.
	Answer  string
	Sources []QueryResult
}

// --- Converters between the public types and the internal domain ---

func toInternalDocuments(docs []Document) ([]document.Document, error) {
	out := make([]document.Document, len(docs))
	for i, d := range docs {
		doc, err := document.New(d.ID, d.Text, d.Category, d.Region, d.Vendor)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out[i] = doc
	}
	return out, nil
}

// toInternalFilter builds a filter from a key/value map. Keys are
// sorted so construction order (and error reporting) is deterministic.
func toInternalFilter(filters map[string]string) (filter.Filter, error) {
	if len(filters) == 0 {
		return filter.Filter{}, nil
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]filter.Condition, 0, len(keys))
	for _, k := range keys {
		c, err := filter.NewCondition(k, filters[k])
		if err != nil {
			return filter.Filter{}, fmt.Errorf("filter: %w", err)
		}
		conds = append(conds, c)
	}
	f, err := filter.New(conds...)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("filter: %w", err)
	}
	return f, nil
}

func fromResults(hits []result.Result) []QueryResult {
	out := make([]QueryResult, len(hits))
	for i := range hits {
		out[i] = QueryResult{
			DocumentID:   hits[i].DocumentID(),
			Score:        hits[i].Score(),
			MatchedTerms: hits[i].MatchedTerms(),
		}
	}
	return out
}

func fromParameters(p params.Parameters) map[string]ParamValue {
	out := make(map[string]ParamValue, len(p))
	for field, v := range p {
		out[field] = ParamValue{
			Kind:   string(v.Kind()),
			Text:   v.Str(),
			Number: v.Num(),
			Date:   v.Date(),
		}
	}
	return out
}

func toInternalParameters(fields map[string]ParamValue) (params.Parameters, error) {
	p := make(params.Parameters, len(fields))
	for field, v := range fields {
		switch v.Kind {
		case KindString, "":
			p[field] = params.NewString(v.Text)
		case KindDate:
			p[field] = params.NewDate(v.Date)
		case KindNumber:
			p[field] = params.NewNumber(v.Number)
		default:
			return nil, fmt.Errorf("parameter %s: unknown kind %q", field, v.Kind)
		}
	}
	return p, nil
}

func fromWarnings(warnings []policy.Warning) []Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(warnings))
	for i, w := range warnings {
		out[i] = Warning{Rule: w.Rule(), Message: w.Message(), Severity: string(w.Severity())}
	}
	return out
}
