package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskCategoryAndDecisionBands(t *testing.T) {
	tests := []struct {
		name             string
		prob             float64
		expectedCategory string
		expectedDecision string
	}{
		{name: "low probability approves", prob: 0.10, expectedCategory: RiskLow, expectedDecision: DecisionApprove},
		{name: "medium category can still approve", prob: 0.25, expectedCategory: RiskMedium, expectedDecision: DecisionApprove},
		{name: "mid range goes to review", prob: 0.45, expectedCategory: RiskMedium, expectedDecision: DecisionReview},
		{name: "medium category above half stays review", prob: 0.55, expectedCategory: RiskHigh, expectedDecision: DecisionReview},
		{name: "high probability rejects", prob: 0.80, expectedCategory: RiskHigh, expectedDecision: DecisionReject},
		{name: "category boundary 0.20 is medium", prob: 0.20, expectedCategory: RiskMedium, expectedDecision: DecisionApprove},
		{name: "decision boundary 0.30 is review", prob: 0.30, expectedCategory: RiskMedium, expectedDecision: DecisionReview},
		{name: "category boundary 0.50 is high", prob: 0.50, expectedCategory: RiskHigh, expectedDecision: DecisionReview},
		{name: "decision boundary 0.60 is reject", prob: 0.60, expectedCategory: RiskHigh, expectedDecision: DecisionReject},
		{name: "zero probability", prob: 0, expectedCategory: RiskLow, expectedDecision: DecisionApprove},
		{name: "certain default", prob: 1, expectedCategory: RiskHigh, expectedDecision: DecisionReject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCategory, RiskCategory(tt.prob))
			assert.Equal(t, tt.expectedDecision, Decision(tt.prob))
		})
	}
}

func TestRiskIndex(t *testing.T) {
	tests := []struct {
		name      string
		debtRatio float64
		late90    int
		expected  float64
	}{
		{name: "simple product", debtRatio: 0.5, late90: 2, expected: 1.0},
		{name: "zero late payments", debtRatio: 0.9, late90: 0, expected: 0},
		{name: "negative debt ratio passes through", debtRatio: -0.3, late90: 3, expected: -0.9},
		{name: "extreme values accepted", debtRatio: 1000, late90: 50, expected: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RiskIndex(tt.debtRatio, tt.late90), 1e-12)
		})
	}
}
