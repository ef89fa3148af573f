// Package reporting serves the fixed, non-computed informational payloads.
// The numbers come from the offline evaluation of the trained model; nothing
// here is derived at request time.
package reporting

// FairnessMetrics is the static fairness report.
type FairnessMetrics struct {
	DisparateImpactRatio float64            `json:"disparate_impact_ratio"`
	DefaultRateByIncome  map[string]float64 `json:"default_rate_by_income"`
	SubgroupAccuracy     map[string]float64 `json:"subgroup_accuracy"`
	Message              string             `json:"message"`
}

// ModelMetrics is the static offline evaluation summary.
type ModelMetrics struct {
	AUC       float64 `json:"auc"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
}

// Fairness returns the fixed fairness report.
func Fairness() FairnessMetrics {
	return FairnessMetrics{
		DisparateImpactRatio: 0.95,
		DefaultRateByIncome: map[string]float64{
			"Low":    0.15,
			"Medium": 0.08,
			"High":   0.02,
		},
		SubgroupAccuracy: map[string]float64{
			"Young (<25)":   0.82,
			"Adult (25-60)": 0.86,
			"Senior (>60)":  0.88,
		},
		Message: "No protected attributes (gender, religion, ethnicity) used.",
	}
}

// Metrics returns the fixed model evaluation summary.
func Metrics() ModelMetrics {
	return ModelMetrics{
		AUC:       0.86,
		Precision: 0.71,
		Recall:    0.64,
	}
}
