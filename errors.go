package travelcore

import "github.com/ebuddy-labs/travelcore/internal/domain"

// Sentinel errors surfaced by the public API. Match with errors.Is.
var (
	// ErrInvalidInput signals an empty or unusable query/utterance.
	ErrInvalidInput = domain.ErrInvalidInput
	// ErrMalformedFilter signals a filter key outside the document
	// metadata schema (category, region, vendor).
	ErrMalformedFilter = domain.ErrMalformedFilter
	// ErrUnknownIntent signals an intent name outside the supported set.
	ErrUnknownIntent = domain.ErrUnknownIntent
)
