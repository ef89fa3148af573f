package scoring

// Risk categories and decisions for the traditional scoring path.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"

	DecisionApprove = "Approve"
	DecisionReview  = "Review"
	DecisionReject  = "Reject"
)

// RiskCategory maps a default probability to a risk band. The thresholds are
// deliberately independent of the decision thresholds below; the two step
// functions do not align and must stay separate.
func RiskCategory(prob float64) string {
	switch {
	case prob < 0.2:
		return RiskLow
	case prob < 0.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Decision maps a default probability to an approval outcome.
func Decision(prob float64) string {
	switch {
	case prob < 0.3:
		return DecisionApprove
	case prob < 0.6:
		return DecisionReview
	default:
		return DecisionReject
	}
}

// RiskIndex is a secondary product score computed from the raw applicant
// fields, independent of the classifier and of attribution.
func RiskIndex(debtRatio float64, times90DaysLate int) float64 {
	return debtRatio * float64(times90DaysLate)
}
