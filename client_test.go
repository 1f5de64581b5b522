package travelcore

import (
	"errors"
	"testing"
	"time"

	"github.com/ebuddy-labs/travelcore/internal/catalog"
)

// testNow is 2026-03-04, a Wednesday.
func testNow() time.Time {
	return time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
}

func sampleDocs() []Document {
	return []Document{
		{
			ID:       "policy_refund",
			Text:     "Refund policy: flight tickets can be refunded within 24 hours of booking for a full refund.",
			Category: "flight",
			Region:   "global",
		},
		{
			ID:       "policy_class",
			Text:     "Business class travel policy: business class is approved for international flights over 6 hours.",
			Category: "flight",
			Region:   "global",
		},
		{
			ID:       "policy_baggage",
			Text:     "Baggage allowance: economy passengers may check two bags up to 23kg each.",
			Category: "flight",
			Region:   "china",
			Vendor:   "Air China",
		},
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(sampleDocs(), &Options{Now: testNow})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_InvalidDocument(t *testing.T) {
	_, err := New([]Document{{Text: "no id"}}, nil)
	if err == nil {
		t.Fatal("expected error for document without id")
	}
}

func TestNew_NilOptions(t *testing.T) {
	if _, err := New(sampleDocs(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRetrieve_RefundPolicyFirst(t *testing.T) {
	c := newTestClient(t)
	hits, err := c.Retrieve("refund policy", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected hits")
	}
	if hits[0].DocumentID != "policy_refund" {
		t.Errorf("top hit = %s, want policy_refund", hits[0].DocumentID)
	}
	if hits[0].Score < 0.2 || hits[0].Score > 1 {
		t.Errorf("score = %f, want within [0.2, 1]", hits[0].Score)
	}
}

func TestRetrieve_VendorFilter(t *testing.T) {
	c := newTestClient(t)
	hits, err := c.Retrieve("baggage allowance", &RetrieveOptions{
		Filters: map[string]string{"vendor": "Air China"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].DocumentID != "policy_baggage" {
		t.Errorf("hits = %v, want only policy_baggage", hits)
	}
}

func TestRetrieve_UnknownFilterKey(t *testing.T) {
	c := newTestClient(t)
	_, err := c.Retrieve("baggage", &RetrieveOptions{
		Filters: map[string]string{"price": "low"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrMalformedFilter) {
		t.Errorf("error = %v, want ErrMalformedFilter", err)
	}
}

func TestRetrieve_EmptyQuery(t *testing.T) {
	c := newTestClient(t)
	_, err := c.Retrieve("", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestRetrieve_TopKOverride(t *testing.T) {
	c := newTestClient(t)
	hits, err := c.Retrieve("flight policy", &RetrieveOptions{TopK: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) > 1 {
		t.Errorf("len(hits) = %d, want at most 1", len(hits))
	}
}

func TestClassify(t *testing.T) {
	c := newTestClient(t)
	cand, err := c.Classify("Book a flight from Shanghai to Boston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Intent != "SearchFlight" {
		t.Errorf("intent = %q, want SearchFlight", cand.Intent)
	}
	if cand.Confidence <= 0 || cand.Confidence > 1 {
		t.Errorf("confidence = %f, out of (0,1]", cand.Confidence)
	}
}

func TestExtract_FlightFields(t *testing.T) {
	c := newTestClient(t)
	fields, err := c.Extract("SearchFlight", "flight from Shanghai to Boston next Monday in business class")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := fields["origin"].Text; got != "Shanghai" {
		t.Errorf("origin = %q, want Shanghai", got)
	}
	if got := fields["destination"].Text; got != "Boston" {
		t.Errorf("destination = %q, want Boston", got)
	}
	if got := fields["cabin_class"].Text; got != "business" {
		t.Errorf("cabin_class = %q, want business", got)
	}

	dep := fields["departure_date"]
	if dep.Kind != KindDate {
		t.Fatalf("departure_date kind = %q, want date", dep.Kind)
	}
	want := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	if !dep.Date.Equal(want) {
		t.Errorf("departure_date = %v, want %v", dep.Date, want)
	}
}

func TestExtract_UnknownIntent(t *testing.T) {
	c := newTestClient(t)
	_, err := c.Extract("Teleport", "beam me up")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("error = %v, want ErrUnknownIntent", err)
	}
}

func TestValidate_FirstClass(t *testing.T) {
	c := newTestClient(t)
	warnings, err := c.Validate("SearchFlight", map[string]ParamValue{
		"origin":      {Kind: KindString, Text: "Shanghai"},
		"destination": {Kind: KindString, Text: "London"},
		"cabin_class": {Kind: KindString, Text: "first"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
	if warnings[0].Rule != "executive_approval" || warnings[0].Severity != "block" {
		t.Errorf("warning = %+v, want executive_approval block", warnings[0])
	}
}

func TestValidate_BadKind(t *testing.T) {
	c := newTestClient(t)
	_, err := c.Validate("SearchFlight", map[string]ParamValue{
		"origin": {Kind: "blob"},
	})
	if err == nil {
		t.Fatal("expected error for unknown value kind")
	}
}

func TestProcess_CancelBooking(t *testing.T) {
	c := newTestClient(t)
	out, err := c.Process("Cancel my flight booking #ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != "CancelFlight" {
		t.Fatalf("intent = %q, want CancelFlight", out.Intent)
	}
	if got := out.Parameters["booking_ref"].Text; got != "ABC123" {
		t.Errorf("booking_ref = %q, want ABC123", got)
	}
	if out.Answer != "" {
		t.Errorf("answer = %q, want empty for non-policy intent", out.Answer)
	}
}

func TestProcess_LastMinutePremiumBooking(t *testing.T) {
	c := newTestClient(t)
	out, err := c.Process("Book a business class flight from Shanghai to Beijing tomorrow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != "SearchFlight" {
		t.Fatalf("intent = %q, want SearchFlight", out.Intent)
	}
	if len(out.Warnings) != 2 {
		t.Fatalf("len(warnings) = %d, want 2: %v", len(out.Warnings), out.Warnings)
	}
}

func TestProcess_PolicyQuestionHasSources(t *testing.T) {
	c := newTestClient(t)
	out, err := c.Process("What is the refund policy within 24 hours?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != "CheckPolicy" {
		t.Fatalf("intent = %q, want CheckPolicy", out.Intent)
	}
	if out.Answer == "" {
		t.Error("expected an answer")
	}
	if len(out.Sources) == 0 {
		t.Error("expected sources")
	}
}

func TestRetrieve_SampleCorpus(t *testing.T) {
	cat, err := catalog.Load("data/catalog.yaml")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	docs := make([]Document, 0, len(cat.Documents()))
	for _, d := range cat.Documents() {
		docs = append(docs, Document{
			ID:       d.ID(),
			Text:     d.Text(),
			Category: d.Category(),
			Region:   d.Region(),
			Vendor:   d.Vendor(),
		})
	}
	c, err := New(docs, &Options{Now: testNow})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hits, err := c.Retrieve("refund policy", &RetrieveOptions{TopK: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected hits")
	}
	if hits[0].DocumentID != "policy_03" {
		t.Errorf("top hit = %s, want policy_03 (refund policy)", hits[0].DocumentID)
	}
	if hits[0].Score < 0.2 {
		t.Errorf("score = %f, want >= 0.2", hits[0].Score)
	}
}

func TestProcess_Deterministic(t *testing.T) {
	c := newTestClient(t)
	first, err := c.Process("flight from Shanghai to Boston next Monday in business class")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		out, err := c.Process("flight from Shanghai to Boston next Monday in business class")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if out.Intent != first.Intent || out.Confidence != first.Confidence {
			t.Fatalf("run %d: intent drifted: %v vs %v", i, out, first)
		}
		if len(out.Parameters) != len(first.Parameters) || len(out.Warnings) != len(first.Warnings) {
			t.Fatalf("run %d: output drifted: %v vs %v", i, out, first)
		}
	}
}
