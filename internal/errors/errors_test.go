package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("missing required applicant fields: age")

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "missing required applicant fields: age")
}

func TestNewModelUnavailableError(t *testing.T) {
	cause := errors.New("open ./data/model.json: no such file or directory")
	err := NewModelUnavailableError("Model not loaded", cause)

	assert.Equal(t, CategoryModelUnavailable, err.Category)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Contains(t, err.Error(), "MODEL_UNAVAILABLE")
	assert.ErrorIs(t, err, cause)
}

func TestNewInternalError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError("something broke", cause)

	assert.Equal(t, CategoryInternal, err.Category)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedCategory ErrorCategory
		expectedStatus   int
	}{
		{
			name:             "passes through AppError",
			err:              NewValidationError("bad input"),
			expectedCategory: CategoryValidation,
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:             "unwraps wrapped AppError",
			err:              fmt.Errorf("pipeline: %w", NewModelUnavailableError("Model not loaded", nil)),
			expectedCategory: CategoryModelUnavailable,
			expectedStatus:   http.StatusServiceUnavailable,
		},
		{
			name:             "generic error becomes internal with raw message",
			err:              errors.New("unexpected condition"),
			expectedCategory: CategoryInternal,
			expectedStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.expectedCategory, appErr.Category)
			assert.Equal(t, tt.expectedStatus, appErr.HTTPStatus)
		})
	}

	assert.Nil(t, ToAppError(nil))
}

func TestWrapError(t *testing.T) {
	base := errors.New("root cause")
	wrapped := WrapError(base, "loading artifact %s", "model.json")

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "loading artifact model.json")
	assert.ErrorIs(t, wrapped, base)

	assert.NoError(t, WrapError(nil, "no-op"))
}
