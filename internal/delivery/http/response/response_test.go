package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "squareone/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSuccess_CarriesRequestID(t *testing.T) {
	c, rec := testContext(t)
	deliverycontext.SetRequestID(c, "req-42")

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"key": "value"}, ""))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "req-42", body.RequestID)
}

func TestError_MintsRequestIDWhenMiddlewareNeverRan(t *testing.T) {
	c, rec := testContext(t)

	require.NoError(t, Error(c, http.StatusBadGateway, "UPSTREAM_REJECTED", "", ""))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "UPSTREAM_REJECTED", body.Error.Code)
	assert.NotEmpty(t, body.RequestID)
}
