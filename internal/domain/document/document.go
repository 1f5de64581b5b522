// Package document defines the immutable travel-policy document.
package document

import "fmt"

// Metadata field names. These form the full filterable schema.
const (
	FieldCategory = "category"
	FieldRegion   = "region"
	FieldVendor   = "vendor"
)

// KnownField reports whether key is part of the metadata schema.
func KnownField(key string) bool {
	return key == FieldCategory || key == FieldRegion || key == FieldVendor
}

// Document is a policy text with filterable metadata.
// Documents are loaded once at startup and never mutated.
type Document struct {
	id       string
	text     string
	category string
	region   string
	vendor   string
}

// New validates and creates a Document.
func New(id, text, category, region, vendor string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document id is required")
	}
	if text == "" {
		return Document{}, fmt.Errorf("document %s: text is required", id)
	}
	return Document{id: id, text: text, category: category, region: region, vendor: vendor}, nil
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// Text returns the policy text.
func (d Document) Text() string { return d.text }

// Category returns the policy category.
func (d Document) Category() string { return d.category }

// Region returns the applicable region.
func (d Document) Region() string { return d.region }

// Vendor returns the vendor the policy applies to, if any.
func (d Document) Vendor() string { return d.vendor }

// Metadata returns the value of a schema field by name.
// The second return is false for keys outside the schema.
func (d Document) Metadata(key string) (string, bool) {
	switch key {
	case FieldCategory:
		return d.category, true
	case FieldRegion:
		return d.region, true
	case FieldVendor:
		return d.vendor, true
	default:
		return "", false
	}
}
