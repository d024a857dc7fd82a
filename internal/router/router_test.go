package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-jobboard/config"
	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/internal/container"
	"github.com/oksasatya/go-jobboard/internal/infrastructure/jsonfile"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
)

func newEngine(t *testing.T, basePath string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := jsonfile.NewSnapshotRepository(filepath.Join(t.TempDir(), "database.json"))
	store, err := application.Open(context.Background(), repo, helpers.NewJWTManager("s"), logger)
	require.NoError(t, err)

	container.SetConfig(&config.Config{DebugMetricsEnabled: true})
	container.SetLogger(logger)
	container.SetRedis(nil)
	container.SetStore(store)

	r := gin.New()
	reg := NewRegistry(r, basePath)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func TestRoutesMountedAtRoot(t *testing.T) {
	r := newEngine(t, "/")

	want := map[string]bool{
		"POST /auth/login":    false,
		"POST /auth/register": false,
		"GET /job/feed":       false,
		"POST /job":           false,
		"PUT /job":            false,
		"DELETE /job":         false,
		"POST /job/comment":   false,
		"PUT /job/like":       false,
		"GET /user":           false,
		"PUT /user":           false,
		"PUT /user/watch":     false,
		"GET /user/search":    false,
		"GET /debug/vars":     false,
	}
	for _, ri := range r.Routes() {
		key := ri.Method + " " + ri.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, route)
	}
}

func TestRoutesUnderBasePath(t *testing.T) {
	r := newEngine(t, "/api/")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"x@y.z","password":"p"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDebugVarsExposesStoreStats(t *testing.T) {
	r := newEngine(t, "/")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store": {"users":0,"posts":0}`)
}
