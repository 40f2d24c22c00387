package apperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biztime-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(apperr.Normalizer())
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out["error"].(map[string]any)
}

func TestNormalizerApplicationError(t *testing.T) {
	r := newEngine()
	r.GET("/boom", func(c *gin.Context) {
		c.Error(apperr.BadRequest("bad input"))
	})

	w := get(r, "/boom")
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := envelope(t, w)
	assert.Equal(t, "bad input", env["message"])
	assert.Equal(t, float64(http.StatusBadRequest), env["status"])
}

func TestNormalizerUnexpectedFault(t *testing.T) {
	r := newEngine()
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("store exploded"))
	})

	w := get(r, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	env := envelope(t, w)
	assert.Equal(t, "store exploded", env["message"])
	assert.Equal(t, float64(http.StatusInternalServerError), env["status"])
}

func TestNormalizerLeavesSuccessAlone(t *testing.T) {
	r := newEngine()
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := get(r, "/ok")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "error")
}

func TestNotFoundHandler(t *testing.T) {
	r := newEngine()
	r.NoRoute(apperr.NotFoundHandler())

	w := get(r, "/no/such/route")
	require.Equal(t, http.StatusNotFound, w.Code)

	env := envelope(t, w)
	assert.Equal(t, "Not Found", env["message"])
	assert.Equal(t, float64(http.StatusNotFound), env["status"])
}
