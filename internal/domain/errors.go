package domain

import "errors"

var (
	// ErrInvalidInput signals an empty or unusable query/utterance.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformedFilter signals a filter key outside the document metadata schema.
	ErrMalformedFilter = errors.New("malformed filter")
	// ErrUnknownIntent signals an intent outside the supported set.
	ErrUnknownIntent = errors.New("unknown intent")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
