// Package assist orchestrates the full utterance pipeline: classify,
// extract, validate, and, for policy questions, retrieval-backed
// answering.
package assist

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ebuddy-labs/travelcore/internal/domain/document"
	"github.com/ebuddy-labs/travelcore/internal/domain/intent"
	"github.com/ebuddy-labs/travelcore/internal/domain/params"
	"github.com/ebuddy-labs/travelcore/internal/domain/policy"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/filter"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/request"
	"github.com/ebuddy-labs/travelcore/internal/domain/search/result"
	"github.com/ebuddy-labs/travelcore/internal/metrics"
	"github.com/ebuddy-labs/travelcore/internal/usecase/classify"
	"github.com/ebuddy-labs/travelcore/internal/usecase/extract"
	"github.com/ebuddy-labs/travelcore/internal/usecase/retrieval"
	"github.com/ebuddy-labs/travelcore/internal/usecase/validate"
)

// Outcome is the aggregated result of processing one utterance.
type Outcome struct {
	Utterance  string
	Intent     intent.Candidate
	Parameters params.Parameters
	Warnings   []policy.Warning
	// Answer and Sources are set for CheckPolicy utterances only.
	Answer  string
	Sources []result.Result
}

// Service runs the classify → extract → validate pipeline.
type Service struct {
	classifier *classify.Service
	extractor  *extract.Service
	validator  *validate.Service
	retriever  *retrieval.Service
	logger     *zap.Logger
}

// New creates the pipeline service. A nil logger disables logging.
func New(
	classifier *classify.Service,
	extractor *extract.Service,
	validator *validate.Service,
	retriever *retrieval.Service,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		classifier: classifier,
		extractor:  extractor,
		validator:  validator,
		retriever:  retriever,
		logger:     logger,
	}
}

// Process classifies the utterance, extracts intent parameters,
// validates them against the booking rules, and answers policy
// questions from the document corpus. ref anchors relative dates and
// the advance-booking rule.
func (s *Service) Process(docs []document.Document, utterance string, ref time.Time) (Outcome, error) {
	cand, err := s.classifier.Classify(utterance)
	if err != nil {
		return Outcome{}, fmt.Errorf("classify: %w", err)
	}
	metrics.IntentClassificationsTotal.WithLabelValues(string(cand.Intent())).Inc()

	extracted, err := s.extractor.Extract(cand.Intent(), utterance, ref)
	if err != nil {
		return Outcome{}, fmt.Errorf("extract: %w", err)
	}
	metrics.ExtractedFieldsTotal.WithLabelValues(string(cand.Intent())).Add(float64(len(extracted)))

	warnings := s.validator.Validate(cand.Intent(), extracted, ref)
	for _, w := range warnings {
		metrics.PolicyWarningsTotal.WithLabelValues(w.Rule(), string(w.Severity())).Inc()
	}

	out := Outcome{
		Utterance:  utterance,
		Intent:     cand,
		Parameters: extracted,
		Warnings:   warnings,
	}

	if cand.Intent() == intent.CheckPolicy {
		req, err := request.New(utterance, filter.Filter{}, 0, 0)
		if err != nil {
			return Outcome{}, fmt.Errorf("build retrieval request: %w", err)
		}
		hits, err := s.retriever.Retrieve(docs, &req)
		if err != nil {
			return Outcome{}, fmt.Errorf("retrieve: %w", err)
		}
		out.Sources = hits
		out.Answer = Answer(utterance, docs, hits)
	}

	s.logger.Debug("processed utterance",
		zap.String("intent", string(cand.Intent())),
		zap.Float64("confidence", cand.Confidence()),
		zap.Int("fields", len(extracted)),
		zap.Int("warnings", len(warnings)),
	)

	return out, nil
}
