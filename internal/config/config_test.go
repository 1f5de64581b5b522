package config

import "testing"

func TestValidate_InvalidThreshold(t *testing.T) {
	cfg := Config{
		Retrieval: RetrievalConfig{TopK: 3, Threshold: 1.5},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for threshold > 1")
	}
}

func TestValidate_InvalidMinConfidence(t *testing.T) {
	cfg := Config{
		Retrieval:  RetrievalConfig{TopK: 3, Threshold: 0.2},
		Classifier: ClassifierConfig{MinConfidence: -0.1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative min_confidence")
	}
}

func TestValidate_LastMinuteExceedsAdvance(t *testing.T) {
	cfg := Config{
		Retrieval: RetrievalConfig{TopK: 3, Threshold: 0.2},
		Policy:    PolicyConfig{AdvanceDays: 3, LastMinuteDays: 5},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when last_minute_days exceeds advance_days")
	}
}

func TestValidate_MalformedRoute(t *testing.T) {
	cfg := Config{
		Retrieval: RetrievalConfig{TopK: 3, Threshold: 0.2},
		Policy: PolicyConfig{
			AdvanceDays:    7,
			LastMinuteDays: 2,
			EligibleRoutes: []string{"ShanghaiBoston"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for route without separator")
	}

	expected := `policy.eligible_routes entry "ShanghaiBoston" must be "Origin-Destination"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Retrieval.TopK != 3 {
		t.Errorf("expected TopK=3, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Retrieval.Threshold != 0.2 {
		t.Errorf("expected Threshold=0.2, got %g", cfg.Retrieval.Threshold)
	}
	if cfg.Classifier.MinConfidence != 0.15 {
		t.Errorf("expected MinConfidence=0.15, got %g", cfg.Classifier.MinConfidence)
	}
	if cfg.Policy.AdvanceDays != 7 {
		t.Errorf("expected AdvanceDays=7, got %d", cfg.Policy.AdvanceDays)
	}
	if cfg.Policy.LastMinuteDays != 2 {
		t.Errorf("expected LastMinuteDays=2, got %d", cfg.Policy.LastMinuteDays)
	}
	if cfg.Catalog.Path != "data/catalog.yaml" {
		t.Errorf("expected Path='data/catalog.yaml', got %q", cfg.Catalog.Path)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Retrieval:  RetrievalConfig{TopK: 5, Threshold: 0.3},
		Classifier: ClassifierConfig{MinConfidence: 0.25},
		Policy:     PolicyConfig{AdvanceDays: 14, LastMinuteDays: 3},
		Catalog:    CatalogConfig{Path: "custom/catalog.yaml"},
	}
	cfg.ApplyDefaults()

	if cfg.Retrieval.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Retrieval.Threshold != 0.3 {
		t.Errorf("expected Threshold=0.3, got %g", cfg.Retrieval.Threshold)
	}
	if cfg.Classifier.MinConfidence != 0.25 {
		t.Errorf("expected MinConfidence=0.25, got %g", cfg.Classifier.MinConfidence)
	}
	if cfg.Catalog.Path != "custom/catalog.yaml" {
		t.Errorf("expected Path='custom/catalog.yaml', got %q", cfg.Catalog.Path)
	}
}
