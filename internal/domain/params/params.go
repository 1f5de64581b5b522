// Package params defines the tagged parameter values produced by
// intent-specific extraction.
package params

import (
	"strconv"
	"time"
)

// Field names used across the intent extractors.
const (
	FieldOrigin       = "origin"
	FieldDestination  = "destination"
	FieldDeparture    = "departure_date"
	FieldReturn       = "return_date"
	FieldCabinClass   = "cabin_class"
	FieldTimeOfDay    = "time_of_day"
	FieldCity         = "city"
	FieldCheckIn      = "check_in_date"
	FieldCheckOut     = "check_out_date"
	FieldHotelClass   = "hotel_class"
	FieldBudget       = "budget"
	FieldBookingRef   = "booking_ref"
	FieldFlightNumber = "flight_number"
	FieldTopic        = "topic"
)

// DateLayout is the canonical date representation for extracted dates.
const DateLayout = "2006-01-02"

// Kind discriminates the value types a parameter can hold.
type Kind string

// Value kinds.
const (
	KindString Kind = "string"
	KindDate   Kind = "date"
	KindNumber Kind = "number"
)

// Value is a tagged parameter value: string, date, or number.
type Value struct {
	kind Kind
	str  string
	num  float64
	date time.Time
}

// NewString creates a string value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewDate creates a date value.
func NewDate(t time.Time) Value { return Value{kind: KindDate, date: t} }

// NewNumber creates a numeric value.
func NewNumber(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind returns the value discriminator.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload (zero for non-string kinds).
func (v Value) Str() string { return v.str }

// Date returns the date payload (zero for non-date kinds).
func (v Value) Date() time.Time { return v.date }

// Num returns the numeric payload (zero for non-number kinds).
func (v Value) Num() float64 { return v.num }

// String renders the value for display: dates as YYYY-MM-DD, numbers
// without trailing zeros.
func (v Value) String() string {
	switch v.kind {
	case KindDate:
		return v.date.Format(DateLayout)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return v.str
	}
}

// Parameters maps field names to extracted values. Fields that were
// not extracted are absent from the map, never present with a zero
// placeholder.
type Parameters map[string]Value

// Has reports whether the field was extracted.
func (p Parameters) Has(field string) bool {
	_, ok := p[field]
	return ok
}
