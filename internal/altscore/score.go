// Package altscore implements the heuristic credit scorer for applicants
// without traditional bureau records. It is a fixed weighted sum over
// alternative-data signals; no trained model is involved, so it stays
// available even when the classifier artifact is missing.
package altscore

import (
	"math"

	"github.com/Parikshit006/AiCreditScoring/internal/types"
)

// Signal weights of the alternative-data score, out of 100. Savings
// contribute directly, one point per 5000 in balance, capped at 10.
const (
	transactionWeight = 0.30
	utilityWeight     = 0.25
	businessWeight    = 0.25
	rentWeight        = 0.10

	savingsUnit = 5000.0
	savingsCap  = 10.0
	maxScore    = 100.0
)

// Decisions and risk levels of the alternative scoring path.
const (
	DecisionApproved     = "APPROVED"
	DecisionManualReview = "MANUAL_REVIEW"
	DecisionRejected     = "REJECTED"

	RiskLevelLow    = "LOW"
	RiskLevelMedium = "MEDIUM"
	RiskLevelHigh   = "HIGH"
)

// WeightedScore computes the raw alternative-data score in [0, 100].
func WeightedScore(app types.AlternativeApplication) float64 {
	savings := math.Min(savingsCap, app.SavingsBalance/savingsUnit)

	score := transactionWeight*app.TransactionScore +
		utilityWeight*app.UtilityPaymentScore +
		businessWeight*app.BusinessActivityScore +
		savings +
		rentWeight*app.RentPaymentScore

	return math.Min(maxScore, score)
}

// RiskProbability converts a weighted score into a risk probability clamped
// to [0, 1].
func RiskProbability(score float64) float64 {
	prob := 1 - score/maxScore
	if prob < 0 {
		return 0
	}
	if prob > 1 {
		return 1
	}
	return prob
}

// DecisionBands maps a risk probability to decision and risk level.
func DecisionBands(prob float64) (decision, riskLevel string) {
	switch {
	case prob < 0.3:
		return DecisionApproved, RiskLevelLow
	case prob < 0.6:
		return DecisionManualReview, RiskLevelMedium
	default:
		return DecisionRejected, RiskLevelHigh
	}
}

// Evaluate scores one alternative-data application end to end.
func Evaluate(app types.AlternativeApplication) types.AlternativeDecision {
	score := WeightedScore(app)
	prob := RiskProbability(score)
	decision, riskLevel := DecisionBands(prob)

	positive, negative, recommendations := deriveFactors(app, riskLevel)

	return types.AlternativeDecision{
		ApplicationID:   app.ApplicationID,
		Decision:        decision,
		RiskProbability: math.Round(prob*100) / 100,
		RiskLevel:       riskLevel,
		PositiveFactors: positive,
		NegativeFactors: negative,
		Recommendations: recommendations,
	}
}
