package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type puzzle struct {
	day  int
	name string
}

func (p puzzle) Day() int     { return p.day }
func (p puzzle) Name() string { return p.name }

func TestIndexRendersPuzzles(t *testing.T) {
	rec := httptest.NewRecorder()
	Index([]puzzle{{1, "sonar_deep"}, {4, "giant_squid"}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<option value="4" selected>Day 4 (giant_squid)</option>`)
	assert.Contains(t, rec.Body.String(), `Day 1 (sonar_deep)`)
}

func TestStatic(t *testing.T) {
	rec := httptest.NewRecorder()
	Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/solve")
}
