package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	coreport "github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/user-leveling/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seen = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Reuses the caller's ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("Generates one when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seen)
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error("Panic recovered in API request", mock.Anything).Once()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["status"] == http.StatusOK && fields["route"] == "/ok"
	})).Once()
	logger.EXPECT().Warn("Request processed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["status"] == http.StatusBadGateway
	})).Once()

	router := gin.New()
	router.Use(Logger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/2", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/users/:id", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", http.MethodGet, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}
