package altscore

import "github.com/Parikshit006/AiCreditScoring/internal/types"

// Per-field thresholds for factor tags and recommendations. Advisory text is
// fixed; the thresholds are policy constants, not tunables.
const (
	incomeStrong      = 5000.0
	incomeWeak        = 2000.0
	transactionStrong = 70.0
	transactionWeak   = 40.0
	utilityStrong     = 70.0
	utilityWeak       = 40.0
	savingsStrong     = 10000.0
	savingsWeak       = 1000.0
	rentStrong        = 70.0
	rentWeak          = 40.0
)

const (
	fillerPositiveFactor = "Stable overall financial profile"
	fillerRecommendation = "Maintain current financial habits to build credit history"
)

// deriveFactors tags the application's strong and weak signals and collects
// advisory recommendations. A LOW risk result always carries at least one
// positive factor, and the recommendation list is never empty.
func deriveFactors(app types.AlternativeApplication, riskLevel string) (positive, negative, recommendations []string) {
	positive = []string{}
	negative = []string{}
	recommendations = []string{}

	if app.MonthlyIncome >= incomeStrong {
		positive = append(positive, "Healthy monthly income")
	} else if app.MonthlyIncome < incomeWeak {
		negative = append(negative, "Low monthly income")
		recommendations = append(recommendations, "Increase documented income sources before reapplying")
	}

	if app.TransactionScore >= transactionStrong {
		positive = append(positive, "Consistent transaction activity")
	} else if app.TransactionScore < transactionWeak {
		negative = append(negative, "Irregular transaction history")
		recommendations = append(recommendations, "Route more of your regular payments through tracked accounts")
	}

	if app.UtilityPaymentScore >= utilityStrong {
		positive = append(positive, "Reliable utility payment record")
	} else if app.UtilityPaymentScore < utilityWeak {
		negative = append(negative, "Missed or late utility payments")
		recommendations = append(recommendations, "Set up automatic utility payments to avoid missed bills")
	}

	if app.SavingsBalance >= savingsStrong {
		positive = append(positive, "Substantial savings buffer")
	} else if app.SavingsBalance < savingsWeak {
		negative = append(negative, "Minimal savings buffer")
		recommendations = append(recommendations, "Build an emergency savings balance of at least one month of expenses")
	}

	if app.RentPaymentScore >= rentStrong {
		positive = append(positive, "Consistent rent payment history")
	} else if app.RentPaymentScore > 0 && app.RentPaymentScore < rentWeak {
		negative = append(negative, "Inconsistent rent payments")
		recommendations = append(recommendations, "Pay rent on time for the next six months to strengthen your record")
	}

	if riskLevel == RiskLevelLow && len(positive) == 0 {
		positive = append(positive, fillerPositiveFactor)
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, fillerRecommendation)
	}

	return positive, negative, recommendations
}
