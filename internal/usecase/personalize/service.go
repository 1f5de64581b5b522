// Package personalize reshapes retrieval and responses around a
// stored user profile. Profiles are read-only inputs; nothing here
// mutates them.
package personalize

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/profile"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/filter"
)

// GuestUserID marks the anonymous fallback profile, which receives no
// personalization.
const GuestUserID = "guest_user"

// supportedLanguages are the languages response templates exist for.
// The first entry is the fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.Japanese,
}

var greetings = map[language.Tag]string{
	language.English:           "Hi %s",
	language.SimplifiedChinese: "你好，%s",
	language.Japanese:          "%sさん、こんにちは",
}

// flightCues mark a query as airline-related, enabling the preferred
// vendor bias.
var flightCues = []string{"flight", "fly", "airline", "airfare", "plane"}

// Service derives personalization signals from a profile.
type Service struct {
	matcher language.Matcher
}

// New creates a personalization service.
func New() *Service {
	return &Service{matcher: language.NewMatcher(supportedLanguages)}
}

// IsGuest reports whether the profile is the anonymous fallback.
func (s *Service) IsGuest(p profile.Profile) bool {
	return p.UserID() == GuestUserID
}

// FilterBias returns a vendor pre-filter when the profile names a
// preferred airline and the query is airline-related. Otherwise the
// filter is empty and retrieval is unbiased.
func (s *Service) FilterBias(p profile.Profile, query string) (filter.Filter, error) {
	airline := p.PreferredAirline()
	if s.IsGuest(p) || airline == "" || strings.EqualFold(airline, "any") {
		return filter.Filter{}, nil
	}

	lower := strings.ToLower(query)
	mentioned := false
	for _, cue := range flightCues {
		if strings.Contains(lower, cue) {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return filter.Filter{}, nil
	}

	cond, err := filter.NewCondition(document.FieldVendor, airline)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("vendor bias: %w", err)
	}
	f, err := filter.New(cond)
	if err != nil {
		return filter.Filter{}, fmt.Errorf("vendor bias: %w", err)
	}
	return f, nil
}

// PromptBlock appends a user-context block to a base system prompt.
// Guests get the base prompt unchanged.
func (s *Service) PromptBlock(base string, p profile.Profile) string {
	if s.IsGuest(p) {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\nUser Context:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name())
	fmt.Fprintf(&b, "- Preferred Airline: %s\n", p.PreferredAirline())
	fmt.Fprintf(&b, "- Budget: $%.0f\n", p.BudgetLimit())
	fmt.Fprintf(&b, "- Home: %s\n", p.HomeCity())
	fmt.Fprintf(&b, "- Seat Preference: %s\n", p.SeatPreference())
	fmt.Fprintf(&b,
		"\nAlways prefer %s flights and keep bookings under the $%.0f budget.\n",
		p.PreferredAirline(), p.BudgetLimit(),
	)
	return b.String()
}

// ResponseLanguage matches the profile language tag against the
// supported response languages. Unparseable or unsupported tags fall
// back to English.
func (s *Service) ResponseLanguage(p profile.Profile) language.Tag {
	tag, err := language.Parse(p.Language())
	if err != nil {
		return supportedLanguages[0]
	}
	matched, _, _ := s.matcher.Match(tag)
	// Matcher may return an extended variant; reduce to the supported base.
	matchedBase, _ := matched.Base()
	for _, sup := range supportedLanguages {
		supBase, _ := sup.Base()
		if supBase == matchedBase {
			return sup
		}
	}
	return supportedLanguages[0]
}

// FlightOption is a candidate flight offered to the user.
type FlightOption struct {
	Vendor string
	Price  float64
}

// RankOptions orders flight options for the profile: affordable
// options first, the preferred airline ahead of others, then by price
// ascending. Guests get a plain price sort.
func (s *Service) RankOptions(p profile.Profile, options []FlightOption) []FlightOption {
	ranked := make([]FlightOption, len(options))
	copy(ranked, options)

	guest := s.IsGuest(p)
	preferred := func(o FlightOption) bool {
		return !guest && strings.EqualFold(o.Vendor, p.PreferredAirline())
	}
	affordable := func(o FlightOption) bool {
		return guest || p.BudgetLimit() <= 0 || o.Price <= p.BudgetLimit()
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if affordable(ranked[i]) != affordable(ranked[j]) {
			return affordable(ranked[i])
		}
		if preferred(ranked[i]) != preferred(ranked[j]) {
			return preferred(ranked[i])
		}
		return ranked[i].Price < ranked[j].Price
	})
	return ranked
}

// Greeting renders a localized greeting for the profile.
func (s *Service) Greeting(p profile.Profile) string {
	if s.IsGuest(p) {
		return "Hello"
	}
	tmpl := greetings[s.ResponseLanguage(p)]
	return fmt.Sprintf(tmpl, p.Name())
}
