// Package validate checks extracted booking parameters against fixed
// business rules. Violations are reported as warnings, never enforced.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/domain/intent"
	"github.com/ebuddy-labs/travelcore/internal/domain/params"
	"github.com/ebuddy-labs/travelcore/internal/domain/policy"
)

// Rule defaults.
const (
	DefaultAdvanceDays    = 7
	DefaultLastMinuteDays = 2
)

// defaultEligibleRoutes lists the routes where premium cabins are
// allowed: long-haul international only. Domestic routes are absent,
// so business/first on them triggers a block.
var defaultEligibleRoutes = []string{
	"Shanghai-Boston",
	"Shanghai-London",
	"Shanghai-New York",
	"Beijing-Singapore",
	"Beijing-Tokyo",
	"Hong Kong-Paris",
}

// Config tunes the validation rules. Zero values select defaults.
type Config struct {
	AdvanceDays    int
	LastMinuteDays int
	// EligibleRoutes are "Origin-Destination" pairs where premium
	// cabins are allowed.
	EligibleRoutes []string
}

// Service applies the booking policy rules.
type Service struct {
	advanceDays    int
	lastMinuteDays int
	eligible       map[string]struct{}
}

// New creates a validator.
func New(cfg Config) *Service {
	if cfg.AdvanceDays <= 0 {
		cfg.AdvanceDays = DefaultAdvanceDays
	}
	if cfg.LastMinuteDays <= 0 {
		cfg.LastMinuteDays = DefaultLastMinuteDays
	}
	routes := cfg.EligibleRoutes
	if routes == nil {
		routes = defaultEligibleRoutes
	}
	eligible := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		eligible[strings.ToLower(r)] = struct{}{}
	}
	return &Service{
		advanceDays:    cfg.AdvanceDays,
		lastMinuteDays: cfg.LastMinuteDays,
		eligible:       eligible,
	}
}

// Validate applies the rules for booking-type intents and returns the
// triggered warnings. Other intents, and parameter sets missing the
// fields a rule needs, produce no warnings. ref is "today" for the
// advance-booking rule.
func (s *Service) Validate(in intent.Intent, p params.Parameters, ref time.Time) []policy.Warning {
	var warnings []policy.Warning
	switch in {
	case intent.SearchFlight:
		warnings = append(warnings, s.checkCabinClass(p)...)
		warnings = append(warnings, s.checkAdvance(p, params.FieldDeparture, ref)...)
	case intent.BookHotel:
		warnings = append(warnings, s.checkHotelClass(p)...)
		warnings = append(warnings, s.checkAdvance(p, params.FieldCheckIn, ref)...)
	}
	return warnings
}

// checkCabinClass blocks premium cabins off the eligible-route
// allow-list, and first class unconditionally pending executive
// approval.
func (s *Service) checkCabinClass(p params.Parameters) []policy.Warning {
	class, ok := p[params.FieldCabinClass]
	if !ok {
		return nil
	}
	cabin := strings.ToLower(class.Str())
	if cabin != "business" && cabin != "first" {
		return nil
	}

	var warnings []policy.Warning

	origin, dest := p[params.FieldOrigin], p[params.FieldDestination]
	if p.Has(params.FieldOrigin) && p.Has(params.FieldDestination) {
		route := strings.ToLower(origin.Str() + "-" + dest.Str())
		if _, ok := s.eligible[route]; !ok {
			warnings = append(warnings, mustWarning(
				policy.RuleClassEligibility,
				fmt.Sprintf("%s class is not permitted on route %s to %s", cabin, origin.Str(), dest.Str()),
				policy.Block,
			))
		}
	}

	if cabin == "first" {
		warnings = append(warnings, mustWarning(
			policy.RuleExecutiveApproval,
			"first class requires executive approval",
			policy.Block,
		))
	}

	return warnings
}

// checkHotelClass warns on hotel classes that need manager approval.
func (s *Service) checkHotelClass(p params.Parameters) []policy.Warning {
	class, ok := p[params.FieldHotelClass]
	if !ok {
		return nil
	}
	switch strings.ToLower(class.Str()) {
	case "5-star", "luxury":
		return []policy.Warning{mustWarning(
			policy.RuleHotelClass,
			fmt.Sprintf("%s hotels require manager approval", class.Str()),
			policy.Warn,
		)}
	}
	return nil
}

// checkAdvance warns when travel starts inside the advance-booking
// window. Inside the last-minute window the warning escalates to
// naming manager approval.
func (s *Service) checkAdvance(p params.Parameters, field string, ref time.Time) []policy.Warning {
	date, ok := p[field]
	if !ok || date.Kind() != params.KindDate {
		return nil
	}

	days := daysBetween(ref, date.Date())
	switch {
	case days < s.lastMinuteDays:
		return []policy.Warning{mustWarning(
			policy.RuleAdvanceBooking,
			fmt.Sprintf("booking %d day(s) in advance: last-minute bookings require manager approval", days),
			policy.Warn,
		)}
	case days < s.advanceDays:
		return []policy.Warning{mustWarning(
			policy.RuleAdvanceBooking,
			fmt.Sprintf("booking %d day(s) in advance: less than %d days may mean higher rates", days, s.advanceDays),
			policy.Warn,
		)}
	}
	return nil
}

// daysBetween counts whole calendar days from ref to date.
func daysBetween(ref, date time.Time) int {
	r := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(r) / (24 * time.Hour))
}

// mustWarning builds a warning from in-package constants; inputs are
// valid by construction.
func mustWarning(rule, message string, sev policy.Severity) policy.Warning {
	w, err := policy.NewWarning(rule, message, sev)
	if err != nil {
		panic(err)
	}
	return w
}
