package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Codes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		wantKind Kind
		wantCode int
	}{
		{"validation", NewErrCredentialsRequired(), KindValidation, http.StatusBadRequest},
		{"password too long", NewErrPasswordTooLong(), KindValidation, http.StatusBadRequest},
		{"conflict", NewErrEmailIsTaken(), KindConflict, http.StatusBadRequest},
		{"missing token", NewErrMissingAuthorizationToken(), KindAuth, http.StatusUnauthorized},
		{"invalid token", NewErrInvalidAuthorizationToken(), KindAuth, http.StatusForbidden},
		{"not found", NewErrTodoNotFound(), KindNotFound, http.StatusNotFound},
		{"internal", NewErrInternalServerError(stderrors.New("db down")), KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantCode, tt.err.HTTPCode)
		})
	}
}

func TestAPIError_UnwrapAndAs(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := fmt.Errorf("register: %w", NewErrInternalServerError(cause))

	apiErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Internal server error", apiErr.Message)
	assert.ErrorIs(t, wrapped, cause)

	_, ok = As(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestAPIError_ErrorWithoutCause(t *testing.T) {
	assert.Equal(t, "Invalid email or password", NewErrInvalidCredentials().Error())
}
