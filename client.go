// Package travelcore is a travel-assistant core: keyword retrieval
// over a fixed policy corpus, intent classification with parameter
// extraction, and booking-rule validation. All operations are pure
// functions of their inputs plus catalogs fixed at construction, so a
// Client is safe for concurrent use.
package travelcore

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/intent"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/request"
	"github.com/ebuddy-labs/travelcore/internal/usecase/assist"
	"github.com/ebuddy-labs/travelcore/internal/usecase/classify"
	"github.com/ebuddy-labs/travelcore/internal/usecase/extract"
	"github.com/ebuddy-labs/travelcore/internal/usecase/retrieval"
	"github.com/ebuddy-labs/travelcore/internal/usecase/validate"
)

// PolicyOptions tunes the booking-rule validator. Zero values select
// defaults.
type PolicyOptions struct {
	AdvanceDays    int
	LastMinuteDays int
	// EligibleRoutes are "Origin-Destination" pairs where premium
	// cabins are allowed.
	EligibleRoutes []string
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	Logger *zap.Logger
	// TopK and Threshold are the retrieval defaults, overridable per
	// query via RetrieveOptions.
	TopK      int
	Threshold float64
	// MinConfidence is the classifier's Unknown cutoff.
	MinConfidence float64
	Policy        PolicyOptions
	// Now anchors relative dates and the advance-booking rule.
	// Defaults to time.Now.
	Now func() time.Time
}

// Client bundles the core services over a fixed document corpus.
type Client struct {
	docs       []document.Document
	retriever  *retrieval.Service
	classifier *classify.Service
	extractor  *extract.Service
	validator  *validate.Service
	pipeline   *assist.Service
	topK       int
	threshold  float64
	now        func() time.Time
}

// New creates a Client over the given document corpus.
func New(docs []Document, opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}

	internal, err := toInternalDocuments(docs)
	if err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	retriever := retrieval.New()
	classifier := classify.New(opts.MinConfidence)
	extractor := extract.New()
	validator := validate.New(validate.Config{
		AdvanceDays:    opts.Policy.AdvanceDays,
		LastMinuteDays: opts.Policy.LastMinuteDays,
		EligibleRoutes: opts.Policy.EligibleRoutes,
	})

	return &Client{
		docs:       internal,
		retriever:  retriever,
		classifier: classifier,
		extractor:  extractor,
		validator:  validator,
		pipeline:   assist.New(classifier, extractor, validator, retriever, opts.Logger),
		topK:       opts.TopK,
		threshold:  opts.Threshold,
		now:        now,
	}, nil
}

// Retrieve scores the corpus against the query and returns ranked
// hits at or above the threshold, at most topK.
func (c *Client) Retrieve(query string, opts *RetrieveOptions) ([]QueryResult, error) {
	if opts == nil {
		opts = &RetrieveOptions{}
	}

	f, err := toInternalFilter(opts.Filters)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = c.topK
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = c.threshold
	}

	req, err := request.New(query, f, topK, threshold)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	hits, err := c.retriever.Retrieve(c.docs, &req)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}
	return fromResults(hits), nil
}

// Classify maps the utterance to the best-scoring supported intent.
func (c *Client) Classify(utterance string) (IntentCandidate, error) {
	cand, err := c.classifier.Classify(utterance)
	if err != nil {
		return IntentCandidate{}, fmt.Errorf("classify: %w", err)
	}
	return IntentCandidate{Intent: string(cand.Intent()), Confidence: cand.Confidence()}, nil
}

// Extract runs the intent-specific parameter rules against the
// utterance. Fields that could not be extracted are absent.
func (c *Client) Extract(intentName, utterance string) (map[string]ParamValue, error) {
	p, err := c.extractor.Extract(intent.Intent(intentName), utterance, c.now())
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return fromParameters(p), nil
}

// Validate checks extracted parameters against the booking rules and
// returns any triggered warnings.
func (c *Client) Validate(intentName string, fields map[string]ParamValue) ([]Warning, error) {
	p, err := toInternalParameters(fields)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	warnings := c.validator.Validate(intent.Intent(intentName), p, c.now())
	return fromWarnings(warnings), nil
}

// Process runs the full pipeline: classify, extract, validate, and
// answer policy questions from the corpus.
func (c *Client) Process(utterance string) (Outcome, error) {
	out, err := c.pipeline.Process(c.docs, utterance, c.now())
	if err != nil {
		return Outcome{}, fmt.Errorf("process: %w", err)
	}
	return Outcome{
		Utterance:  out.Utterance,
		Intent:     string(out.Intent.Intent()),
		Confidence: out.Intent.Confidence(),
		Parameters: fromParameters(out.Parameters),
		Warnings:   fromWarnings(out.Warnings),
		Answer:     out.Answer,
		Sources:    fromResults(out.Sources),
	}, nil
}
