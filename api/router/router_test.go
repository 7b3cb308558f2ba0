package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"world-cities/config"
	"world-cities/db"
	"world-cities/repositories"
)

func newRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.OpenSQL(context.Background(), db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	cfg := config.AppConfig{
		Server: config.ServerConfig{
			StaticDir: staticDir,
			CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}, AllowedMethods: []string{"GET"}, AllowedHeaders: []string{"*"}},
		},
		Paging: config.PagingConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
	return New(cfg, repositories.NewSQLStore(conn, db.SQLite))
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(newRouter(t, ""), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestAPIRoutes(t *testing.T) {
	r := newRouter(t, "")

	w := get(r, "/api/v1/cities")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = get(r, "/api/v1/countries?sortColumn=totCities")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwagger(t *testing.T) {
	w := get(newRouter(t, ""), "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/countries/is-dupe-field")
}

func TestSPAFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<app-root></app-root>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"), []byte("console.log(1)"), 0o600))
	r := newRouter(t, dir)

	w := get(r, "/main.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = get(r, "/cities/edit/3")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<app-root></app-root>", w.Body.String())

	w = get(r, "/api/v1/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
