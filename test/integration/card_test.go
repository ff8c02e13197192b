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

func listCards(t *testing.T, ts *helpers.TestServer, token string) []dto.CardResponse {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/cards", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var cards []dto.CardResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &cards))
	return cards
}

func findCard(cards []dto.CardResponse, id string) *dto.CardResponse {
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i]
		}
	}
	return nil
}

func TestSaveCard_UpsertKeepsOneRow(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("upsert"), "password123")
	cardID := helpers.UniqueCardID("upsert")

	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"headline": "first"})

	cards := listCards(t, ts, token)
	first := findCard(cards, cardID)
	require.NotNil(t, first)

	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"headline": "second"})

	cards = listCards(t, ts, token)
	var matching []dto.CardResponse
	for _, card := range cards {
		if card.ID == cardID {
			matching = append(matching, card)
		}
	}
	require.Len(t, matching, 1, "saving the same id twice must not create a second row")

	second := matching[0]
	assert.Contains(t, string(second.Data), "second")
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt), "created_at is fixed at first save")
	assert.False(t, second.UpdatedAt.Before(second.CreatedAt))
}

func TestSaveCard_IDTakenByAnotherUser(t *testing.T) {
	ts := GetTestServer(t)

	firstToken, _ := helpers.RegisterUser(t, ts, "First", helpers.UniqueEmail("collide1"), "password123")
	secondToken, _ := helpers.RegisterUser(t, ts, "Second", helpers.UniqueEmail("collide2"), "password123")
	cardID := helpers.UniqueCardID("collide")

	helpers.SaveCard(t, ts, firstToken, cardID, map[string]interface{}{"owner": "first"})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/cards/save", secondToken, map[string]interface{}{
		"id":   cardID,
		"data": map[string]interface{}{"owner": "second"},
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "already in use")

	// The first owner's card is untouched.
	first := findCard(listCards(t, ts, firstToken), cardID)
	require.NotNil(t, first)
	assert.Contains(t, string(first.Data), "first")
	assert.Nil(t, findCard(listCards(t, ts, secondToken), cardID))
}

func TestSaveCard_RejectsEmptyIDAndData(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("badsave"), "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/cards/save", token, map[string]interface{}{
		"id":   "   ",
		"data": map[string]interface{}{"x": 1},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/cards/save", token, map[string]interface{}{
		"id":   helpers.UniqueCardID("nodata"),
		"data": nil,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestDeleteCard_Idempotent(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("del"), "password123")
	cardID := helpers.UniqueCardID("del")
	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"x": 1})

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/cards/"+cardID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, bodyStr)

	// Repeating the delete, or deleting an id that never existed, still
	// reports success.
	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/cards/"+cardID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, bodyStr)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/cards/"+helpers.UniqueCardID("never"), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDeleteCard_ScopedToOwner(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("scope1"), "password123")
	otherToken, _ := helpers.RegisterUser(t, ts, "Other", helpers.UniqueEmail("scope2"), "password123")
	cardID := helpers.UniqueCardID("scope")
	helpers.SaveCard(t, ts, ownerToken, cardID, map[string]interface{}{"x": 1})

	res, _ := ts.SendRequest(t, http.MethodDelete, "/cards/"+cardID, otherToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "delete is idempotent, not an oracle for other users' cards")

	require.NotNil(t, findCard(listCards(t, ts, ownerToken), cardID), "another user's delete must not remove the card")
}

func TestPublicCard_MatchesOwnerView(t *testing.T) {
	ts := GetTestServer(t)

	token, owner := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("public"), "password123")
	cardID := helpers.UniqueCardID("public")
	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"headline": "shared"})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/card/"+cardID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var public dto.PublicCardResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &public))

	mine := findCard(listCards(t, ts, token), cardID)
	require.NotNil(t, mine)

	assert.Equal(t, cardID, public.ID)
	assert.JSONEq(t, string(mine.Data), string(public.Data))
	assert.Equal(t, mine.Theme, public.Theme)
	assert.Equal(t, owner.ID, public.OwnerUserID)
}

func TestPublicCard_NotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/card/"+helpers.UniqueCardID("missing"), "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Not found")
}
