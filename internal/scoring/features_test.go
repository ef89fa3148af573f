package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Parikshit006/AiCreditScoring/internal/errors"
	"github.com/Parikshit006/AiCreditScoring/internal/model"
	"github.com/Parikshit006/AiCreditScoring/internal/types"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func fullApplication() types.CreditApplication {
	return types.CreditApplication{
		RevolvingUtilizationOfUnsecuredLines: floatPtr(0.5),
		Age:                                  intPtr(42),
		NumberOfTime3059DaysPastDueNotWorse:  intPtr(1),
		DebtRatio:                            floatPtr(0.3),
		MonthlyIncome:                        floatPtr(5400),
		NumberOfOpenCreditLinesAndLoans:      intPtr(7),
		NumberOfTimes90DaysLate:              intPtr(2),
		NumberRealEstateLoansOrLines:         intPtr(1),
		NumberOfTime6089DaysPastDueNotWorse:  intPtr(0),
		NumberOfDependents:                   intPtr(3),
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
	}{
		{
			name:     "restores 30-59 day field",
			field:    "NumberOfTime3059DaysPastDueNotWorse",
			expected: "NumberOfTime30-59DaysPastDueNotWorse",
		},
		{
			name:     "restores 60-89 day field",
			field:    "NumberOfTime6089DaysPastDueNotWorse",
			expected: "NumberOfTime60-89DaysPastDueNotWorse",
		},
		{
			name:     "leaves untouched fields alone",
			field:    "DebtRatio",
			expected: "DebtRatio",
		},
		{
			name:     "leaves age alone",
			field:    "age",
			expected: "age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalName(tt.field))
		})
	}
}

func TestMapFeatures_TrainingOrder(t *testing.T) {
	vector, err := MapFeatures(fullApplication())
	require.NoError(t, err)
	require.Len(t, vector, len(model.TrainingFeatures))

	// Slots must follow the canonical training order exactly
	expected := []float64{0.5, 42, 1, 0.3, 5400, 7, 2, 1, 0, 3}
	assert.Equal(t, expected, vector)
}

func TestMapFeatures_AcceptsExtremeValues(t *testing.T) {
	// No range validation: negative and extreme values pass through
	app := fullApplication()
	app.Age = intPtr(-5)
	app.MonthlyIncome = floatPtr(-1000)
	app.DebtRatio = floatPtr(1e9)

	vector, err := MapFeatures(app)
	require.NoError(t, err)
	assert.Equal(t, -5.0, vector[1])
	assert.Equal(t, 1e9, vector[3])
	assert.Equal(t, -1000.0, vector[4])
}

func TestMapFeatures_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.CreditApplication)
	}{
		{
			name:   "missing utilization",
			mutate: func(a *types.CreditApplication) { a.RevolvingUtilizationOfUnsecuredLines = nil },
		},
		{
			name:   "missing age",
			mutate: func(a *types.CreditApplication) { a.Age = nil },
		},
		{
			name:   "missing sanitized 30-59 field",
			mutate: func(a *types.CreditApplication) { a.NumberOfTime3059DaysPastDueNotWorse = nil },
		},
		{
			name:   "missing dependents",
			mutate: func(a *types.CreditApplication) { a.NumberOfDependents = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fullApplication()
			tt.mutate(&app)

			_, err := MapFeatures(app)
			require.Error(t, err)

			appErr := apperrors.ToAppError(err)
			assert.Equal(t, apperrors.CategoryValidation, appErr.Category)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}
