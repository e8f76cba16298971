package api

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/scheduler"
	"github.com/butlerhq/butlerd/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   codeNotFound,
		},
		{
			name:       "wrapped action not found",
			err:        fmt.Errorf("deciding: %w", approval.ErrActionNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   codeNotFound,
		},
		{
			name:       "task not found",
			err:        scheduler.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   codeNotFound,
		},
		{
			name:       "invalid transition is a conflict",
			err:        approval.ErrInvalidTransition,
			wantStatus: http.StatusConflict,
			wantCode:   codeConflict,
		},
		{
			name:       "expired action is a conflict",
			err:        approval.ErrActionExpired,
			wantStatus: http.StatusConflict,
			wantCode:   codeConflict,
		},
		{
			name:       "static task mutation is a conflict",
			err:        scheduler.ErrTaskStatic,
			wantStatus: http.StatusConflict,
			wantCode:   codeConflict,
		},
		{
			name:       "validation error",
			err:        services.NewValidationError("page_size", "must be positive"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   codeValidation,
		},
		{
			name:       "rule invariant violation",
			err:        approval.ErrRuleInvariant,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   codeValidation,
		},
		{
			name:       "network error reads as unreachable butler",
			err:        &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
			wantCode:   codeButlerUnreachable,
		},
		{
			name:       "anything else is internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   codeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mapServiceError("alfred", tt.err)
			assert.Equal(t, tt.wantStatus, apiErr.status)
			assert.Equal(t, tt.wantCode, apiErr.body.Code)
			assert.Equal(t, "alfred", apiErr.body.Butler)
		})
	}
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, codeValidation, codeForStatus(http.StatusBadRequest))
	assert.Equal(t, codeValidation, codeForStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, codeNotFound, codeForStatus(http.StatusNotFound))
	assert.Equal(t, codeConflict, codeForStatus(http.StatusConflict))
	assert.Equal(t, codeInternal, codeForStatus(http.StatusTeapot))
}
