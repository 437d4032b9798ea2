package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseErrorTranslatesDriverMessages(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		statusCode int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "projects_pkey"`), http.StatusConflict},
		{"foreign key", errors.New("insert or update violates foreign key constraint"), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError},
		{"no cause", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tc.cause)
			assert.Equal(t, tc.statusCode, err.StatusCode)
			if tc.cause != nil {
				assert.Contains(t, err.GetFullError(), tc.cause.Error())
			}
		})
	}
}

func TestApiErrUnwrapsSentinels(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")

	require.True(t, errors.Is(err, ErrInvalidField))
	assert.Equal(t, "email", err.Field)
	assert.Contains(t, err.Error(), "must be a valid email address")
}
