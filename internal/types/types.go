package types

// CreditApplication carries the ten applicant fields the classifier was
// trained on. Fields are pointers so an absent JSON key is distinguishable
// from a legitimate zero; values themselves are not range-validated (negative
// or extreme inputs pass through, matching the upstream contract).
//
// Two payload names carry sanitized identifiers (hyphens stripped); the
// feature mapper restores the canonical hyphenated names before the vector
// reaches the classifier.
type CreditApplication struct {
	RevolvingUtilizationOfUnsecuredLines *float64 `json:"RevolvingUtilizationOfUnsecuredLines"`
	Age                                  *int     `json:"age"`
	NumberOfTime3059DaysPastDueNotWorse  *int     `json:"NumberOfTime3059DaysPastDueNotWorse"`
	DebtRatio                            *float64 `json:"DebtRatio"`
	MonthlyIncome                        *float64 `json:"MonthlyIncome"`
	NumberOfOpenCreditLinesAndLoans      *int     `json:"NumberOfOpenCreditLinesAndLoans"`
	NumberOfTimes90DaysLate              *int     `json:"NumberOfTimes90DaysLate"`
	NumberRealEstateLoansOrLines         *int     `json:"NumberRealEstateLoansOrLines"`
	NumberOfTime6089DaysPastDueNotWorse  *int     `json:"NumberOfTime6089DaysPastDueNotWorse"`
	NumberOfDependents                   *int     `json:"NumberOfDependents"`
}

// RiskFactor is one attributed driver of a prediction
type RiskFactor struct {
	Feature     string  `json:"feature"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// PredictionResponse is the full payload of the predict/what-if endpoints
type PredictionResponse struct {
	DefaultProbability float64      `json:"default_probability"`
	RiskCategory       string       `json:"risk_category"`
	Decision           string       `json:"decision"`
	RiskIndex          float64      `json:"risk_index"`
	Top3RiskFactors    []RiskFactor `json:"top_3_risk_factors"`
	ExplanationText    string       `json:"explanation_text"`
}

// AlternativeApplication is the input for the alternative-data scorer.
// Savings balance and rent score are optional signals; the rest default to
// zero when omitted, which simply earns no score.
type AlternativeApplication struct {
	ApplicationID         string  `json:"application_id" binding:"required"`
	ApplicantType         string  `json:"applicant_type" binding:"required"`
	MonthlyIncome         float64 `json:"monthly_income"`
	TransactionScore      float64 `json:"transaction_score"`
	UtilityPaymentScore   float64 `json:"utility_payment_score"`
	BusinessActivityScore float64 `json:"business_activity_score"`
	SavingsBalance        float64 `json:"savings_balance"`
	RentPaymentScore      float64 `json:"rent_payment_score"`
}

// AlternativeDecision is the output of the alternative-data scorer
type AlternativeDecision struct {
	ApplicationID   string   `json:"application_id"`
	Decision        string   `json:"decision"`
	RiskProbability float64  `json:"risk_probability"`
	RiskLevel       string   `json:"risk_level"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
	Recommendations []string `json:"recommendations"`
}
