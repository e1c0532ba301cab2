package gin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	ginlib "github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bannerstore/internal/infrastructure/metrics"
	"bannerstore/pkg/logger"
)

func init() {
	ginlib.SetMode(ginlib.TestMode)
}

func TestEngine_RequestIDAndAccessLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := metrics.NewRegistry()
	engine := NewEngine(logger.NewFromZap(zap.New(core)), reg)

	var seen string
	engine.GET("/ping/:id", func(c *ginlib.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping/7", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("http request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "/ping/7", entries[0].ContextMap()["path"])
	}
	assert.Equal(t, 1, testutil.CollectAndCount(reg.HTTPDuration))
}

func TestEngine_MintsRequestID(t *testing.T) {
	engine := NewEngine(logger.NewNop(), nil)
	engine.GET("/", func(c *ginlib.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}
