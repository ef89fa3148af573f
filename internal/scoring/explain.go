package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Parikshit006/AiCreditScoring/internal/model"
	"github.com/Parikshit006/AiCreditScoring/internal/types"
)

const topFactorCount = 3

// fallbackFactors is the fixed attribution content substituted when the
// explainer fails; the decision itself is unaffected.
var fallbackFactors = []types.RiskFactor{
	{Feature: "DebtRatio", Impact: 1, Description: "High Debt Ratio"},
	{Feature: "LatePayments", Impact: 1, Description: "History of late payments"},
	{Feature: "CreditUtilization", Impact: 1, Description: "High credit utilization"},
}

// ComposeExplanation selects the top factors by absolute attribution
// magnitude and renders the summary sentence. The sort is stable, so features
// tied on magnitude keep their training-order position.
func ComposeExplanation(prob float64, attribution model.Attribution) ([]types.RiskFactor, string) {
	ranked := make([]types.RiskFactor, 0, len(model.TrainingFeatures))
	for _, name := range model.TrainingFeatures {
		impact, ok := attribution[name]
		if !ok {
			continue
		}
		direction := "decreases risk"
		if impact > 0 {
			direction = "increases risk"
		}
		ranked = append(ranked, types.RiskFactor{
			Feature:     name,
			Impact:      impact,
			Description: fmt.Sprintf("%s %s", name, direction),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Impact) > math.Abs(ranked[j].Impact)
	})

	if len(ranked) > topFactorCount {
		ranked = ranked[:topFactorCount]
	}

	names := make([]string, len(ranked))
	for i, factor := range ranked {
		names[i] = factor.Feature
	}

	explanation := fmt.Sprintf("Your default probability is %.1f%%. The main factors are: %s",
		prob*100, strings.Join(names, ", "))

	return ranked, explanation
}

// FallbackExplanation returns the fixed generic factors and sentence used
// when attribution is unavailable.
func FallbackExplanation(prob float64) ([]types.RiskFactor, string) {
	factors := make([]types.RiskFactor, len(fallbackFactors))
	copy(factors, fallbackFactors)

	explanation := fmt.Sprintf("Your default probability is %.1f%%. Risk factors include debt ratio and credit history.",
		prob*100)

	return factors, explanation
}
