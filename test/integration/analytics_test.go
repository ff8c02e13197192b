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

func getSummary(t *testing.T, ts *helpers.TestServer, token, cardID string) dto.SummaryResponse {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/analytics/summary/"+cardID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var summary dto.SummaryResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &summary))
	return summary
}

func TestAnalytics_RecordAndSummarize(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("stats"), "password123")
	cardID := helpers.UniqueCardID("stats")
	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"headline": "stats"})

	// Three views from two distinct visitors plus one anonymous view,
	// two clicks on the same action, one save.
	for _, ev := range []struct{ eventType, action, src, visitor string }{
		{"view", "", "qr", "v1"},
		{"view", "", "qr", "v1"},
		{"view", "", "", "v2"},
		{"view", "", "", ""},
		{"click", "copy", "", "v1"},
		{"click", "copy", "", "v2"},
		{"save", "", "", "v1"},
	} {
		res, bodyStr := helpers.RecordEvent(t, ts, cardID, ev.eventType, ev.action, ev.src, ev.visitor)
		require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	}

	summary := getSummary(t, ts, token, cardID)

	assert.Equal(t, cardID, summary.CardID)
	assert.Equal(t, int64(4), summary.Views)
	assert.Equal(t, int64(2), summary.Clicks)
	assert.Equal(t, int64(1), summary.Saves)
	assert.Equal(t, int64(2), summary.UniqueVisitors, "empty visitor_id does not count")

	assert.Equal(t, int64(2), summary.ClickBreakdown["copy"])
	assert.Equal(t, int64(2), summary.SrcBreakdown["qr"])
	assert.Equal(t, int64(2), summary.SrcBreakdown["direct"], "views without a src fall into the direct bucket")

	require.Len(t, summary.Recent, 7)
	assert.Equal(t, "save", summary.Recent[0].EventType, "recent events come newest first")
	for _, ev := range summary.Recent {
		assert.False(t, ev.TS.IsZero())
	}
}

func TestAnalytics_EventTypeNormalizedAndValidated(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("evtype"), "password123")
	cardID := helpers.UniqueCardID("evtype")
	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"x": 1})

	res, _ := helpers.RecordEvent(t, ts, cardID, "VIEW", "", "", "v1")
	assert.Equal(t, http.StatusOK, res.StatusCode, "event_type is case-insensitive")

	res, _ = helpers.RecordEvent(t, ts, cardID, "like", "", "", "v1")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = helpers.RecordEvent(t, ts, cardID, "", "", "", "v1")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	summary := getSummary(t, ts, token, cardID)
	assert.Equal(t, int64(1), summary.Views, "rejected events leave no trace")
	assert.Len(t, summary.Recent, 1)
}

func TestAnalytics_EventForUnknownCard(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := helpers.RecordEvent(t, ts, helpers.UniqueCardID("ghost"), "view", "", "", "v1")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Card not found")
}

func TestAnalytics_SummaryAccessControl(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("sumown"), "password123")
	otherToken, _ := helpers.RegisterUser(t, ts, "Other", helpers.UniqueEmail("sumother"), "password123")
	cardID := helpers.UniqueCardID("sum")
	helpers.SaveCard(t, ts, ownerToken, cardID, map[string]interface{}{"x": 1})

	res, _ := ts.SendRequest(t, http.MethodGet, "/analytics/summary/"+cardID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/analytics/summary/"+cardID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Not allowed")

	res, _ = ts.SendRequest(t, http.MethodGet, "/analytics/summary/"+helpers.UniqueCardID("nosuch"), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, "missing card wins over ownership")
}

func TestAnalytics_EmptySummary(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.RegisterUser(t, ts, "Owner", helpers.UniqueEmail("empty"), "password123")
	cardID := helpers.UniqueCardID("empty")
	helpers.SaveCard(t, ts, token, cardID, map[string]interface{}{"x": 1})

	summary := getSummary(t, ts, token, cardID)
	assert.Zero(t, summary.Views)
	assert.Zero(t, summary.Clicks)
	assert.Zero(t, summary.Saves)
	assert.Zero(t, summary.UniqueVisitors)
	assert.Empty(t, summary.Recent)
}
