package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agro/pkg/apperr"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(apperr.Validation("bad")))
	assert.Equal(t, http.StatusConflict, Status(apperr.Conflict("dup")))
	assert.Equal(t, http.StatusNotFound, Status(apperr.NotFound("crop")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestFailWritesMessage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Fail(c, apperr.NotFound("season")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"season not found"}`, rec.Body.String())
}

func TestParseID(t *testing.T) {
	e := echo.New()
	for _, tc := range []struct {
		raw string
		id  uint
		ok  bool
	}{
		{"12", 12, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(tc.raw)
		id, ok := ParseID(c, "id")
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.id, id, tc.raw)
	}
}
