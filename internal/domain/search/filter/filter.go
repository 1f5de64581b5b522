// Package filter implements metadata pre-filters for retrieval.
package filter

import "fmt"

// MaxConditions is the maximum number of conditions per filter.
const MaxConditions = 8

// Filter restricts retrieval candidates to documents whose metadata
// exactly matches every condition.
type Filter struct {
	conditions []Condition
}

// New validates and creates a Filter.
func New(conditions ...Condition) (Filter, error) {
	if len(conditions) > MaxConditions {
		return Filter{}, fmt.Errorf("too many filter conditions (max %d)", MaxConditions)
	}
	return Filter{conditions: conditions}, nil
}

// Conditions returns the filter conditions.
func (f Filter) Conditions() []Condition { return f.conditions }

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool { return len(f.conditions) == 0 }

// Condition is a single exact-match clause on a metadata field.
type Condition struct {
	key   string
	match string
}

// NewCondition creates an exact metadata match condition.
func NewCondition(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// Key returns the metadata field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact value the field must equal.
func (c Condition) Match() string { return c.match }
