// Command travelcore runs the console demo: policy Q&A over the
// sample corpus, the intent pipeline, and profile personalization.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	travelcore "github.com/ebuddy-labs/travelcore"
	"github.com/ebuddy-labs/travelcore/internal/catalog"
	"github.com/ebuddy-labs/travelcore/internal/config"
	logpkg "github.com/ebuddy-labs/travelcore/internal/logger"
	"github.com/ebuddy-labs/travelcore/internal/metrics"
	"github.com/ebuddy-labs/travelcore/internal/usecase/personalize"
	"github.com/ebuddy-labs/travelcore/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session_id", sessionID))

	logger.Info("Starting travelcore demo",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("catalog", cfg.Catalog.Path),
	)

	metrics.RegisterCoreMetrics()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("documents", len(cat.Documents())),
		zap.Int("profiles", len(cat.Profiles())),
	)

	client, err := buildClient(cfg, cat, logger)
	if err != nil {
		logger.Fatal("Failed to build client", zap.Error(err))
	}

	section := "all"
	if len(os.Args) > 1 {
		section = os.Args[1]
	}

	switch section {
	case "rag":
		demoRetrieval(client)
	case "agent":
		demoPipeline(client)
	case "personalization":
		demoPersonalization(cat, logger)
	case "all":
		demoRetrieval(client)
		demoPipeline(client)
		demoPersonalization(cat, logger)
	default:
		logger.Fatal("Unknown demo section", zap.String("section", section))
	}
}

func buildClient(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) (*travelcore.Client, error) {
	docs := make([]travelcore.Document, 0, len(cat.Documents()))
	for _, d := range cat.Documents() {
		docs = append(docs, travelcore.Document{
			ID:       d.ID(),
			Text:     d.Text(),
			Category: d.Category(),
			Region:   d.Region(),
			Vendor:   d.Vendor(),
		})
	}
	return travelcore.New(docs, &travelcore.Options{
		Logger:        logger,
		TopK:          cfg.Retrieval.TopK,
		Threshold:     cfg.Retrieval.Threshold,
		MinConfidence: cfg.Classifier.MinConfidence,
		Policy: travelcore.PolicyOptions{
			AdvanceDays:    cfg.Policy.AdvanceDays,
			LastMinuteDays: cfg.Policy.LastMinuteDays,
			EligibleRoutes: cfg.Policy.EligibleRoutes,
		},
	})
}

func demoRetrieval(client *travelcore.Client) {
	banner("POLICY Q&A")

	queries := []struct {
		question string
		filters  map[string]string
	}{
		{question: "Can I refund my ticket within 24 hours?"},
		{question: "What's the policy on business class flights?"},
		{question: "What are the Air China benefits?", filters: map[string]string{"vendor": "Air China"}},
		{question: "What's the meal allowance for international travel?"},
		{question: "How long does it take to travel from Boston to Shanghai?"},
	}

	for _, q := range queries {
		fmt.Printf("\nQuery: %s\n", q.question)
		if q.filters != nil {
			fmt.Printf("Filters: %v\n", q.filters)
		}

		out, err := client.Process(q.question)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if out.Answer == "" {
			// Not a policy question; fall back to raw retrieval.
			hits, err := client.Retrieve(q.question, &travelcore.RetrieveOptions{Filters: q.filters})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if len(hits) == 0 {
				fmt.Println("Answer: No matching travel policy found.")
				continue
			}
			fmt.Printf("Top match: %s (score %.2f)\n", hits[0].DocumentID, hits[0].Score)
			continue
		}

		fmt.Printf("Answer: %s\n", out.Answer)
		fmt.Printf("Sources: %d documents\n", len(out.Sources))
		for _, src := range out.Sources {
			fmt.Printf("  - %s (score %.2f, matched %s)\n",
				src.DocumentID, src.Score, strings.Join(src.MatchedTerms, ", "))
		}
	}
}

func demoPipeline(client *travelcore.Client) {
	banner("INTENT PIPELINE")

	inputs := []string{
		"Book a flight from Shanghai to Boston next Monday",
		"I need to fly from Beijing to Singapore tomorrow morning in business class",
		"Find me a hotel in New York for tonight",
		"I want to book a 5-star hotel in Paris with a budget of $400",
		"Cancel my flight booking #ABC123",
		"What's the company policy on meal allowances?",
		"do nothing and chill",
	}

	for _, input := range inputs {
		fmt.Printf("\nInput: %q\n", input)

		out, err := client.Process(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Intent: %s (confidence %.0f%%)\n", out.Intent, out.Confidence*100)
		for field, value := range out.Parameters {
			fmt.Printf("  %s: %s\n", field, renderValue(value))
		}
		for _, w := range out.Warnings {
			fmt.Printf("  [%s] %s: %s\n", w.Severity, w.Rule, w.Message)
		}
		if len(out.Warnings) == 0 {
			fmt.Println("  Policy check: passed")
		}
	}
}

func demoPersonalization(cat *catalog.Catalog, logger *zap.Logger) {
	banner("PERSONALIZATION")

	engine := personalize.New()
	query := "Find me flights from Shanghai to Boston"
	basePrompt := "You are a travel assistant."

	for _, userID := range []string{personalize.GuestUserID, "henry_guo"} {
		prof, err := cat.Profile(userID)
		if err != nil {
			logger.Warn("Profile not found", zap.String("user_id", userID), zap.Error(err))
			continue
		}

		fmt.Printf("\nUser: %s\n", prof.Name())
		fmt.Printf("Greeting: %s\n", engine.Greeting(prof))

		bias, err := engine.FilterBias(prof, query)
		if err != nil {
			logger.Warn("Filter bias failed", zap.Error(err))
		} else if bias.IsEmpty() {
			fmt.Println("Retrieval bias: none")
		} else {
			for _, c := range bias.Conditions() {
				fmt.Printf("Retrieval bias: %s=%s\n", c.Key(), c.Match())
			}
		}

		fmt.Printf("System prompt:\n%s\n", engine.PromptBlock(basePrompt, prof))

		fmt.Println("Flight options:")
		for _, opt := range engine.RankOptions(prof, sampleFlightOptions()) {
			fmt.Printf("  %-10s $%.0f\n", opt.Vendor, opt.Price)
		}
	}
}

func sampleFlightOptions() []personalize.FlightOption {
	return []personalize.FlightOption{
		{Vendor: "United", Price: 950},
		{Vendor: "Air China", Price: 1180},
		{Vendor: "Delta", Price: 2350},
	}
}

func renderValue(v travelcore.ParamValue) string {
	switch v.Kind {
	case travelcore.KindDate:
		return v.Date.Format("2006-01-02")
	case travelcore.KindNumber:
		return fmt.Sprintf("%g", v.Number)
	default:
		return v.Text
	}
}

func banner(title string) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n%s\n%s\n", line, title, line)
}
