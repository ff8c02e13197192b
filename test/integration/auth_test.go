package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"cardlink_backend/internal/services/dto"
	"cardlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("auth")
	_, registered := helpers.RegisterUser(t, ts, "Alice", email, "password123")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var loggedIn dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loggedIn))
	assert.Equal(t, registered.ID, loggedIn.User.ID, "login resolves the same account that registration created")
	assert.Equal(t, email, loggedIn.User.Email)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("mixedcase")
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Bob",
		"email":    "MixedCase_" + email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var authRes dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &authRes))
	assert.Equal(t, "mixedcase_"+email, authRes.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("dup")
	helpers.RegisterUser(t, ts, "First", email, "password123")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Second",
		"email":    email,
		"password": "other-password",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email": helpers.UniqueEmail("nopass"),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLogin_FailuresLookIdentical(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("leak")
	helpers.RegisterUser(t, ts, "Carol", email, "password123")

	wrongPassRes, wrongPassBody := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	})
	unknownRes, unknownBody := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    helpers.UniqueEmail("ghost"),
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.JSONEq(t, wrongPassBody, unknownBody, "both failure modes return the same payload")
}

func TestLogin_TokenGrantsAccess(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Dave", helpers.UniqueEmail("token"), "password123")

	res, _ := ts.SendRequest(t, http.MethodGet, "/cards", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/cards", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/cards", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
