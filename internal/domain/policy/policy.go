// Package policy defines the warnings produced by business-rule
// validation of extracted booking parameters.
package policy

import "fmt"

// Severity grades a policy warning.
type Severity string

// Warning severities, from advisory to hard violation. Violations are
// reported, not enforced: acting on a Block is the caller's decision.
const (
	Info  Severity = "info"
	Warn  Severity = "warn"
	Block Severity = "block"
)

// IsValid checks if the severity is one of the supported values.
func (s Severity) IsValid() bool {
	return s == Info || s == Warn || s == Block
}

// Rule names for emitted warnings.
const (
	RuleClassEligibility  = "class_eligibility"
	RuleExecutiveApproval = "executive_approval"
	RuleAdvanceBooking    = "advance_booking"
	RuleHotelClass        = "hotel_class"
)

// Warning is a single triggered policy rule.
type Warning struct {
	rule     string
	message  string
	severity Severity
}

// NewWarning validates and creates a Warning.
func NewWarning(rule, message string, severity Severity) (Warning, error) {
	if rule == "" {
		return Warning{}, fmt.Errorf("warning rule is required")
	}
	if !severity.IsValid() {
		return Warning{}, fmt.Errorf("invalid severity %q for rule %s", severity, rule)
	}
	return Warning{rule: rule, message: message, severity: severity}, nil
}

// Rule returns the triggered rule name.
func (w Warning) Rule() string { return w.rule }

// Message returns the human-readable explanation.
func (w Warning) Message() string { return w.message }

// Severity returns the warning grade.
func (w Warning) Severity() Severity { return w.severity }
