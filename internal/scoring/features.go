package scoring

import (
	"strings"

	apperrors "github.com/Parikshit006/AiCreditScoring/internal/errors"
	"github.com/Parikshit006/AiCreditScoring/internal/model"
	"github.com/Parikshit006/AiCreditScoring/internal/types"
)

// featureRenames restores the canonical hyphenated column names for the two
// fields whose payload identifiers are sanitized. All other names pass
// through untouched.
var featureRenames = map[string]string{
	"NumberOfTime3059DaysPastDueNotWorse": "NumberOfTime30-59DaysPastDueNotWorse",
	"NumberOfTime6089DaysPastDueNotWorse": "NumberOfTime60-89DaysPastDueNotWorse",
}

// CanonicalName maps a payload field name to its training column name.
func CanonicalName(field string) string {
	if canonical, ok := featureRenames[field]; ok {
		return canonical
	}
	return field
}

// MapFeatures translates an applicant record into the feature vector the
// classifier was trained on: names restored to canonical form, columns in
// training order. Renaming happens before reordering; the emitted slice
// follows model.TrainingFeatures exactly. A missing field is a client error,
// not a crash.
func MapFeatures(app types.CreditApplication) ([]float64, error) {
	values := map[string]float64{}
	missing := []string{}

	putFloat := func(field string, v *float64) {
		if v == nil {
			missing = append(missing, field)
			return
		}
		values[CanonicalName(field)] = *v
	}
	putInt := func(field string, v *int) {
		if v == nil {
			missing = append(missing, field)
			return
		}
		values[CanonicalName(field)] = float64(*v)
	}

	putFloat("RevolvingUtilizationOfUnsecuredLines", app.RevolvingUtilizationOfUnsecuredLines)
	putInt("age", app.Age)
	putInt("NumberOfTime3059DaysPastDueNotWorse", app.NumberOfTime3059DaysPastDueNotWorse)
	putFloat("DebtRatio", app.DebtRatio)
	putFloat("MonthlyIncome", app.MonthlyIncome)
	putInt("NumberOfOpenCreditLinesAndLoans", app.NumberOfOpenCreditLinesAndLoans)
	putInt("NumberOfTimes90DaysLate", app.NumberOfTimes90DaysLate)
	putInt("NumberRealEstateLoansOrLines", app.NumberRealEstateLoansOrLines)
	putInt("NumberOfTime6089DaysPastDueNotWorse", app.NumberOfTime6089DaysPastDueNotWorse)
	putInt("NumberOfDependents", app.NumberOfDependents)

	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"missing required applicant fields: " + strings.Join(missing, ", "))
	}

	vector := make([]float64, len(model.TrainingFeatures))
	for i, name := range model.TrainingFeatures {
		vector[i] = values[name]
	}
	return vector, nil
}
