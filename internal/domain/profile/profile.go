// Package profile defines the read-only user profile consumed by the
// personalization layer. The core never mutates profiles.
package profile

import "fmt"

// Profile is a stored user record used to bias retrieval filters and
// shape responses.
type Profile struct {
	userID               string
	name                 string
	homeCity             string
	preferredAirline     string
	budgetLimit          float64
	language             string
	seatPreference       string
	frequentDestinations []string
}

// Config carries the profile fields for construction.
type Config struct {
	UserID               string
	Name                 string
	HomeCity             string
	PreferredAirline     string
	BudgetLimit          float64
	Language             string
	SeatPreference       string
	FrequentDestinations []string
}

// New validates and creates a Profile.
// Defaults: language=en, seat preference=aisle.
func New(cfg Config) (Profile, error) {
	if cfg.UserID == "" {
		return Profile{}, fmt.Errorf("profile user_id is required")
	}
	if cfg.BudgetLimit < 0 {
		return Profile{}, fmt.Errorf("profile %s: budget limit must not be negative", cfg.UserID)
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.SeatPreference == "" {
		cfg.SeatPreference = "aisle"
	}
	return Profile{
		userID:               cfg.UserID,
		name:                 cfg.Name,
		homeCity:             cfg.HomeCity,
		preferredAirline:     cfg.PreferredAirline,
		budgetLimit:          cfg.BudgetLimit,
		language:             cfg.Language,
		seatPreference:       cfg.SeatPreference,
		frequentDestinations: cfg.FrequentDestinations,
	}, nil
}

// UserID returns the profile identifier.
func (p Profile) UserID() string { return p.userID }

// Name returns the display name.
func (p Profile) Name() string { return p.name }

// HomeCity returns the user's home city.
func (p Profile) HomeCity() string { return p.homeCity }

// PreferredAirline returns the preferred carrier, or "Any".
func (p Profile) PreferredAirline() string { return p.preferredAirline }

// BudgetLimit returns the booking budget ceiling.
func (p Profile) BudgetLimit() float64 { return p.budgetLimit }

// Language returns the BCP 47 language tag for responses.
func (p Profile) Language() string { return p.language }

// SeatPreference returns the preferred seat type.
func (p Profile) SeatPreference() string { return p.seatPreference }

// FrequentDestinations returns the ordered destination history.
func (p Profile) FrequentDestinations() []string { return p.frequentDestinations }
