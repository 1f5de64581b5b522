package classify

import (
	"regexp"
	"strings"

	"github.com/ebuddy-labs/travelcore/internal/domain/intent"
	"github.com/ebuddy-labs/travelcore/internal/domain/token"
)

// Scoring weights. Patterns outweigh keywords: a canonical phrasing is
// stronger evidence than a lone keyword.
const (
	keywordWeight = 2.0
	patternWeight = 3.0
)

// ruleSet defines how one intent is recognized.
type ruleSet struct {
	// keywords matched as whole tokens unless they contain a space,
	// in which case they match as a substring of the lowercased text.
	keywords []string
	patterns []*regexp.Regexp
	// saturation normalizes the raw weighted count into [0,1].
	saturation float64
}

// score returns the normalized, clamped match score for the utterance.
func (r ruleSet) score(lower string, tokens token.Set) float64 {
	raw := 0.0
	for _, kw := range r.keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lower, kw) {
				raw += keywordWeight
			}
		} else if tokens.Has(kw) {
			raw += keywordWeight
		}
	}
	for _, p := range r.patterns {
		if p.MatchString(lower) {
			raw += patternWeight
		}
	}

	score := raw / r.saturation
	if score > 1 {
		score = 1
	}
	return score
}

// ruleSets holds the recognition rules for every intent except
// Unknown, which is the fallback rather than a scored category.
var ruleSets = map[intent.Intent]ruleSet{
	intent.SearchFlight: {
		keywords: []string{"flight", "flights", "fly", "flying", "airplane", "airfare", "plane"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:flight|fly|flights)\s+(?:from\s+)?(\w+)\s+to\s+(\w+)`),
			regexp.MustCompile(`(?:need|want|book|find|search)\s+.*?(?:flight|fly)`),
			regexp.MustCompile(`(?:from\s+)?(\w+)\s+to\s+(\w+)\s+(?:flight|flights)`),
		},
		saturation: 8,
	},
	intent.BookHotel: {
		keywords: []string{"hotel", "hotels", "accommodation", "stay", "lodging", "room"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:book|reserve|find|need)\s+.*?hotel`),
			regexp.MustCompile(`hotel\s+(?:in|at|near)\s+(\w+)`),
			regexp.MustCompile(`(?:stay|accommodation|lodging)\s+(?:in|at)\s+(\w+)`),
		},
		saturation: 8,
	},
	intent.CancelFlight: {
		keywords: []string{"cancel", "cancellation", "refund", "void"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`cancel\s+(?:my\s+)?flight`),
			regexp.MustCompile(`(?:cancel|refund|void)\s+.*?(?:ticket|booking|reservation)`),
			regexp.MustCompile(`flight\s+cancellation`),
		},
		saturation: 8,
	},
	intent.CheckPolicy: {
		keywords: []string{"policy", "policies", "rule", "rules", "allowed", "guidelines", "regulations"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:what|check|tell).*?policy`),
			regexp.MustCompile(`(?:is|are)\s+.*?allowed`),
			regexp.MustCompile(`(?:travel|company)\s+(?:policy|rules|guidelines)`),
		},
		saturation: 8,
	},
}
