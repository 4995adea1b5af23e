package utils

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type seenRequest struct {
	requestID string
	hasLogger bool
}

func newLoggedRouter(buf *bytes.Buffer, seen *seenRequest) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil)))

	router := gin.New()
	router.Use(LoggerMiddleware(logger), ContextLogger(logger))
	router.GET("/ping", func(c *gin.Context) {
		seen.requestID, _ = c.Request.Context().Value(RequestIDKey).(string)
		_, seen.hasLogger = c.Get("logger")
		c.Status(http.StatusTeapot)
	})
	return router
}

func TestContextLogger_PropagatesIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	var seen seenRequest
	router := newLoggedRouter(&buf, &seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-42", seen.requestID)
	assert.True(t, seen.hasLogger)
	assert.Contains(t, buf.String(), `"status_code":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestContextLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	var seen seenRequest
	router := newLoggedRouter(&buf, &seen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), seen.requestID)
}
