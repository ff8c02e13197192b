package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeDatabaseError, "store", "query failed", http.StatusInternalServerError)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "query failed")

	wrapped := fmt.Errorf("outer: %w", appErr)
	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeDatabaseError, got.Code)
}

func TestConstructorsMapHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("x").HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("x").HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("x").HTTPCode)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("d", "x").HTTPCode)
	assert.Equal(t, http.StatusConflict, NewConflictError("d", "x").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, InternalError(errors.New("x")).HTTPCode)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret cause"), CodeConflict, "cards", "Card id already in use", http.StatusConflict)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret cause")
	assert.NotContains(t, string(raw), "409")
	assert.Contains(t, string(raw), string(CodeConflict))
}
