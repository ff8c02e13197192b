package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"cardlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emailSeq atomic.Int64

// UniqueEmail returns an email address no other test has used.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d_%d@test.com", prefix, time.Now().UnixNano(), emailSeq.Add(1))
}

// UniqueCardID returns a card id no other test has used.
func UniqueCardID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixNano(), emailSeq.Add(1))
}

// RegisterUser registers through the API and returns the token and user.
func RegisterUser(t *testing.T, ts *TestServer, name, email, password string) (string, dto.UserResponse) {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "registration should succeed, got: "+bodyStr)

	var authRes dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &authRes))
	require.NotEmpty(t, authRes.Token)
	return authRes.Token, authRes.User
}

// LoginOrRegister logs the account in, registering it first if needed.
// Used for the fixed admin account shared across tests.
func LoginOrRegister(t *testing.T, ts *TestServer, name, email, password string) (string, dto.UserResponse) {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if res.StatusCode == http.StatusOK {
		var authRes dto.AuthResponse
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &authRes))
		return authRes.Token, authRes.User
	}
	return RegisterUser(t, ts, name, email, password)
}

// SaveCard upserts a card through the API and asserts success.
func SaveCard(t *testing.T, ts *TestServer, token, cardID string, data map[string]interface{}) {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/cards/save", token, map[string]interface{}{
		"id":    cardID,
		"title": "Test Card",
		"theme": "classic",
		"data":  data,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "card save should succeed, got: "+bodyStr)
}

// RecordEvent posts an anonymous analytics event and returns the response.
func RecordEvent(t *testing.T, ts *TestServer, cardID, eventType, action, src, visitorID string) (*http.Response, string) {
	t.Helper()

	return ts.SendRequest(t, http.MethodPost, "/analytics/event", "", map[string]interface{}{
		"card_id":    cardID,
		"event_type": eventType,
		"action":     action,
		"src":        src,
		"visitor_id": visitorID,
	})
}
