package middleware

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/core/logger"
)

var emitLog = logger.Log

var errorBodyPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Successful responses carry customer contact details, so only error
// bodies are ever captured.
const maxErrorBodySize = 4 * 1024

type errorBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *errorBodyWriter) capture(n int) bool {
	return w.ResponseWriter.Status() >= 400 && w.body.Len()+n <= maxErrorBodySize
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if w.capture(len(b)) {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorBodyWriter) WriteString(s string) (int, error) {
	if w.capture(len(s)) {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

func levelFor(statusCode int) logger.LogLevel {
	switch {
	case statusCode >= 500:
		return logger.LogLevelError
	case statusCode >= 400:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelInfo
	}
}

func requestAttributes(c *gin.Context, duration time.Duration, errorBody *bytes.Buffer) map[string]any {
	status := c.Writer.Status()
	attrs := map[string]any{
		"http.method":        c.Request.Method,
		"http.path":          c.Request.URL.Path,
		"http.route":         c.FullPath(),
		"http.status_code":   status,
		"http.duration_ms":   duration.Milliseconds(),
		"http.client_ip":     c.ClientIP(),
		"http.response_size": max(c.Writer.Size(), 0),
	}

	if c.Request.ContentLength > 0 {
		attrs["http.request_size"] = c.Request.ContentLength
	}
	if sessionID, ok := SessionID(c); ok {
		attrs["session_id"] = sessionID
	}
	if status >= 400 && errorBody.Len() > 0 &&
		strings.Contains(c.Writer.Header().Get("Content-Type"), "application/json") {
		attrs["http.error_body"] = errorBody.String()
	}
	return attrs
}

// LogRequest writes one log line per request once the handler chain is done.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		buf := errorBodyPool.Get().(*bytes.Buffer)
		defer errorBodyPool.Put(buf)
		buf.Reset()
		c.Writer = &errorBodyWriter{ResponseWriter: c.Writer, body: buf}

		c.Next()

		emitLog(c.Request.Context(), logger.LogEntry{
			Level:      levelFor(c.Writer.Status()),
			Message:    "HTTP Request",
			Attributes: requestAttributes(c, time.Since(start), buf),
			Timestamp:  time.Now(),
		})
	}
}
