package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, fn(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestSuccessEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"id": "31"}, "Created")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, map[string]any{"id": "31"}, body["data"])
}

func TestErrorEnvelopeOmitsData(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, http.StatusNotFound, "Business not found")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Business not found", body["message"])
	assert.NotContains(t, body, "data")
}

func TestPaginatedEnvelope(t *testing.T) {
	info := entity.NewPageInfo(1, 10, 35, 10)

	_, body := record(t, func(c echo.Context) error {
		return Paginated(c, http.StatusOK, []string{}, info, "")
	})

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)

	assert.EqualValues(t, 1, pagination["currentPage"])
	assert.EqualValues(t, 4, pagination["totalPages"])
	assert.EqualValues(t, 35, pagination["totalItems"])
	assert.EqualValues(t, 10, pagination["limit"])
	assert.EqualValues(t, 2, pagination["nextPage"])
	assert.Equal(t, true, pagination["hasMore"])
}

func TestPaginatedEnvelope_NextPageNullWhenExhausted(t *testing.T) {
	info := entity.NewPageInfo(4, 10, 35, 5)

	_, body := record(t, func(c echo.Context) error {
		return Paginated(c, http.StatusOK, []string{}, info, "")
	})

	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)

	assert.Nil(t, pagination["nextPage"])
	assert.Equal(t, false, pagination["hasMore"])
}
