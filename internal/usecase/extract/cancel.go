package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain/params"
)

// Booking references are fixed-length uppercase alphanumerics; flight
// numbers are a two-letter airline code plus 2-4 digits.
var (
	bookingRefRe       = regexp.MustCompile(`(?i:booking|confirmation|reference)\s*(?i:id|number|code)?\s*[:#]?\s*([A-Z0-9]{6})\b`)
	taggedBookingRefRe = regexp.MustCompile(`#([A-Z0-9]{6})\b`)
	flightNumberRe     = regexp.MustCompile(`\b([A-Z]{2}\d{2,4})\b`)
)

// extractCancellation pulls the booking reference and flight number
// from a cancellation utterance.
func (s *Service) extractCancellation(text string, _ time.Time) params.Parameters {
	p := params.Parameters{}

	if m := bookingRefRe.FindStringSubmatch(text); m != nil {
		p[params.FieldBookingRef] = params.NewString(m[1])
	} else if m := taggedBookingRefRe.FindStringSubmatch(text); m != nil {
		p[params.FieldBookingRef] = params.NewString(m[1])
	}

	if m := flightNumberRe.FindStringSubmatch(text); m != nil {
		// A #ABC123-style reference also looks like a flight number
		// prefix; only accept a flight number distinct from the ref.
		if ref, ok := p[params.FieldBookingRef]; !ok || !strings.Contains(ref.Str(), m[1]) {
			p[params.FieldFlightNumber] = params.NewString(m[1])
		}
	}

	return p
}
