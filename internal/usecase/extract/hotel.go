package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain/params"
)

var hotelClasses = []string{"5-star", "4-star", "3-star", "luxury", "budget"}

// budgetRe matches currency-tagged amounts only; bare numbers (star
// ratings, dates) are never mistaken for a budget.
var budgetRe = regexp.MustCompile(`[$€£¥]\s*(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*(?:usd|cny|eur|gbp|jpy|dollars?|bucks)`)

// extractHotel pulls city, stay dates, hotel class, and budget ceiling
// from a hotel-booking utterance.
func (s *Service) extractHotel(text string, ref time.Time) params.Parameters {
	p := params.Parameters{}
	lower := strings.ToLower(text)

	if city := s.hotelCity(lower); city != "" {
		p[params.FieldCity] = params.NewString(city)
	}

	switch {
	case strings.Contains(lower, "tonight"):
		p[params.FieldCheckIn] = params.NewDate(midnight(ref))
		p[params.FieldCheckOut] = params.NewDate(midnight(ref).AddDate(0, 0, 1))
	case strings.Contains(lower, "tomorrow"):
		p[params.FieldCheckIn] = params.NewDate(midnight(ref).AddDate(0, 0, 1))
		p[params.FieldCheckOut] = params.NewDate(midnight(ref).AddDate(0, 0, 2))
	default:
		checkInText := lower
		if idx := checkOutClauseIndex(lower); idx >= 0 {
			checkInText = lower[:idx]
			if d, ok := parseDate(lower[idx:], ref); ok {
				p[params.FieldCheckOut] = params.NewDate(d)
			}
		}
		if d, ok := parseDate(checkInText, ref); ok {
			p[params.FieldCheckIn] = params.NewDate(d)
		}
	}

	for _, class := range hotelClasses {
		if strings.Contains(lower, class) {
			p[params.FieldHotelClass] = params.NewString(class)
			break
		}
	}

	if m := budgetRe.FindStringSubmatch(lower); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			p[params.FieldBudget] = params.NewNumber(amount)
		}
	}

	return p
}

// hotelCity prefers a gazetteer mention introduced by in/at/near, then
// falls back to the first mention.
func (s *Service) hotelCity(lower string) string {
	mentions := s.gaz.find(lower)
	for _, m := range mentions {
		switch precedingWord(lower, m.index) {
		case "in", "at", "near":
			return m.city
		}
	}
	if len(mentions) > 0 {
		return mentions[0].city
	}
	return ""
}

// checkOutClauseIndex locates a check-out clause ("until", "through",
// "check out", "checkout"), or -1.
func checkOutClauseIndex(lower string) int {
	for _, marker := range []string{"check out", "checkout", "check-out", "until", "through"} {
		if idx := strings.Index(lower, marker); idx >= 0 {
			return idx
		}
	}
	return -1
}
