package retrieval

import (
	"strings"

	"github.com/ebuddy-labs/travelcore/internal/domain/token"
)

// boostTerm is a domain-significant term that raises the score when it
// appears in both the query and the document. Weights are additive and
// applied before clamping.
type boostTerm struct {
	term   string
	weight float64
}

// defaultBoosts covers the recurring travel-policy topics. Order is
// irrelevant to the result (addition commutes) but kept alphabetical
// by topic for readability.
var defaultBoosts = []boostTerm{
	{term: "air china", weight: 0.30},
	{term: "baggage", weight: 0.20},
	{term: "business class", weight: 0.25},
	{term: "cancel", weight: 0.20},
	{term: "economy", weight: 0.15},
	{term: "hotel", weight: 0.20},
	{term: "insurance", weight: 0.25},
	{term: "meal", weight: 0.20},
	{term: "passport", weight: 0.20},
	{term: "per diem", weight: 0.20},
	{term: "refund", weight: 0.25},
	{term: "visa", weight: 0.25},
}

// presentIn reports whether the term occurs in the text. Single-word
// terms use exact token membership; phrases fall back to substring
// search on the lowercased text.
func (b boostTerm) presentIn(textLower string, tokens token.Set) bool {
	if strings.ContainsRune(b.term, ' ') {
		return strings.Contains(textLower, b.term)
	}
	return tokens.Has(b.term)
}
