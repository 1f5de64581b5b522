package extract

import (
	"strings"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain/params"
)

// GeneralTopic is the fallback when no topic keyword matches.
const GeneralTopic = "general"

// topicRules map keywords to canonical policy topics. Order matters:
// the first rule with a keyword hit wins, so more specific topics come
// before broad ones (class-upgrade before flight).
var topicRules = []struct {
	canonical string
	keywords  []string
}{
	{canonical: "refund", keywords: []string{"refund", "money back"}},
	{canonical: "baggage", keywords: []string{"baggage", "luggage", "checked bag", "carry-on"}},
	{canonical: "class-upgrade", keywords: []string{"upgrade", "business class", "first class", "premium"}},
	{canonical: "cancellation", keywords: []string{"cancel"}},
	{canonical: "meal", keywords: []string{"meal", "food", "allowance", "per diem"}},
	{canonical: "visa", keywords: []string{"visa", "passport", "documentation"}},
	{canonical: "insurance", keywords: []string{"insurance", "coverage"}},
	{canonical: "hotel", keywords: []string{"hotel", "accommodation", "room"}},
	{canonical: "flight", keywords: []string{"flight", "airline", "fly"}},
}

// extractTopic maps a policy question to a canonical topic.
func (s *Service) extractTopic(text string, _ time.Time) params.Parameters {
	lower := strings.ToLower(text)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return params.Parameters{params.FieldTopic: params.NewString(rule.canonical)}
			}
		}
	}
	return params.Parameters{params.FieldTopic: params.NewString(GeneralTopic)}
}
