package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTimeHandlerRequiresValidAPIKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/weather/current-time.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestCurrentTimeHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/weather/current-time.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", model.Text)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	millis, ok := entry["time"].(float64)
	require.True(t, ok)
	assert.InDelta(t, float64(time.Now().UnixMilli()), millis, 10_000)

	readable, ok := entry["readableTime"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, readable)
	assert.NoError(t, err)
}
