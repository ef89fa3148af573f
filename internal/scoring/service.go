package scoring

import (
	"fmt"
	"log/slog"

	"github.com/Parikshit006/AiCreditScoring/internal/model"
	"github.com/Parikshit006/AiCreditScoring/internal/types"
)

// Predictor yields the positive-class default probability for a feature
// vector in training column order.
type Predictor interface {
	Predict(vector []float64) (float64, error)
}

// AttributionEngine yields per-feature contributions for a feature vector.
type AttributionEngine interface {
	Explain(vector []float64) (model.Attribution, error)
}

// AttributionOutcome is the typed result of the attribution step. Failure is
// recorded, never propagated; the response degrades to the fixed fallback.
type AttributionOutcome struct {
	Set model.Attribution
	Err error
}

// OK reports whether attribution succeeded.
func (o AttributionOutcome) OK() bool { return o.Err == nil }

// FallbackRecorder observes attribution failures that degraded a response to
// the fallback explanation.
type FallbackRecorder interface {
	RecordAttributionFailure()
}

// Service runs the decision-and-explanation pipeline. It is constructed once
// at startup and shared across requests; the classifier behind it is
// read-only after load, so Score is safe for concurrent use.
type Service struct {
	predictor Predictor
	explainer AttributionEngine
	recorder  FallbackRecorder
}

// NewService wires the pipeline to a predictor and an attribution engine
// bound to the same classifier.
func NewService(predictor Predictor, explainer AttributionEngine) *Service {
	return &Service{predictor: predictor, explainer: explainer}
}

// WithFallbackRecorder attaches a recorder notified on each attribution
// fallback.
func (s *Service) WithFallbackRecorder(r FallbackRecorder) *Service {
	s.recorder = r
	return s
}

// Score executes the full pipeline for one applicant: map features, predict,
// derive policy bands and risk index, attribute, compose the explanation.
// Attribution failure is the only partial degradation; everything else
// returns an error and no payload.
func (s *Service) Score(app types.CreditApplication) (types.PredictionResponse, error) {
	vector, err := MapFeatures(app)
	if err != nil {
		return types.PredictionResponse{}, err
	}

	prob, err := s.predictor.Predict(vector)
	if err != nil {
		return types.PredictionResponse{}, err
	}

	riskIndex := RiskIndex(*app.DebtRatio, *app.NumberOfTimes90DaysLate)

	outcome := s.attribute(vector)

	var factors []types.RiskFactor
	var explanation string
	if outcome.OK() {
		factors, explanation = ComposeExplanation(prob, outcome.Set)
	} else {
		slog.Warn("Attribution failed, using fallback explanation", "error", outcome.Err)
		if s.recorder != nil {
			s.recorder.RecordAttributionFailure()
		}
		factors, explanation = FallbackExplanation(prob)
	}

	return types.PredictionResponse{
		DefaultProbability: prob,
		RiskCategory:       RiskCategory(prob),
		Decision:           Decision(prob),
		RiskIndex:          riskIndex,
		Top3RiskFactors:    factors,
		ExplanationText:    explanation,
	}, nil
}

// attribute runs the explainer and wraps the result, recovering from panics
// so a misbehaving attribution method cannot take down the request.
func (s *Service) attribute(vector []float64) (outcome AttributionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = AttributionOutcome{Err: panicError{value: r}}
		}
	}()

	set, err := s.explainer.Explain(vector)
	if err != nil {
		return AttributionOutcome{Err: err}
	}
	return AttributionOutcome{Set: set}
}

type panicError struct{ value interface{} }

func (e panicError) Error() string { return fmt.Sprintf("attribution panicked: %v", e.value) }
