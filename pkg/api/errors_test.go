package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triggerflow/triggerflow/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.NewValidationError("name", "is required"), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: bad trigger_type", services.ErrInvalidInput), http.StatusBadRequest},
		{"not found", fmt.Errorf("automation: %w", services.ErrNotFound), http.StatusNotFound},
		{"not active", services.ErrNotActive, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := mapServiceError(tc.err)
			assert.Equal(t, tc.wantStatus, httpErr.Code)
		})
	}
}

func TestMapServiceErrorHidesInternals(t *testing.T) {
	httpErr := mapServiceError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", httpErr.Message)

	notFound := mapServiceError(fmt.Errorf("automation 42: %w", services.ErrNotFound))
	assert.Equal(t, "resource not found", notFound.Message)
}
