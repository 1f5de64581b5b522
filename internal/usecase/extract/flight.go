package extract

import (
	"strings"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain/params"
	"github.com/ebuddy-labs/travelcore/internal/domain/token"
)

var cabinClasses = []string{"economy", "business", "first"}

var timesOfDay = []string{"morning", "afternoon", "evening", "night"}

// extractFlight pulls origin/destination cities, travel dates, cabin
// class, and time-of-day preference from a flight-search utterance.
func (s *Service) extractFlight(text string, ref time.Time) params.Parameters {
	p := params.Parameters{}
	lower := strings.ToLower(text)
	tokens := token.NewSet(token.Normalize(text))

	origin, dest := resolveRoute(lower, s.gaz.find(lower))
	if origin != "" {
		p[params.FieldOrigin] = params.NewString(origin)
	}
	if dest != "" {
		p[params.FieldDestination] = params.NewString(dest)
	}

	// A "return"/"returning" clause owns its own date; the departure
	// date is parsed from the text before it so the two do not collide.
	departureText := lower
	if idx := strings.Index(lower, "return"); idx >= 0 {
		departureText = lower[:idx]
		if d, ok := parseDate(lower[idx:], ref); ok {
			p[params.FieldReturn] = params.NewDate(d)
		}
	}
	if d, ok := parseDate(departureText, ref); ok {
		p[params.FieldDeparture] = params.NewDate(d)
	}

	for _, class := range cabinClasses {
		if tokens.Has(class) {
			p[params.FieldCabinClass] = params.NewString(class)
			break
		}
	}

	for _, tod := range timesOfDay {
		if tokens.Has(tod) {
			p[params.FieldTimeOfDay] = params.NewString(tod)
			break
		}
	}

	return p
}
