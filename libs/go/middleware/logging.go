package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"X-Api-Key":     true,
}

// Gateway settings carry credentials such as secret_key and api_password.
var sensitiveFieldMarkers = []string{"secret", "password", "pass_phrase", "token", "_key"}

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs full request and response bodies outside
// production. Credential-looking fields are redacted.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.Log.With(zap.String("correlation_id", GetCorrelationID(c)))

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		headers := make(map[string]string, len(c.Request.Header))
		for key, values := range c.Request.Header {
			if sensitiveHeaders[key] {
				headers[key] = redacted
			} else {
				headers[key] = values[0]
			}
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headers),
			zap.Any("body", decodeForLog(requestBody, c.ContentType())),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		responseBody := blw.body.Bytes()
		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("body", decodeForLog(responseBody, c.Writer.Header().Get("Content-Type"))),
			zap.Int("body_size", len(responseBody)),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.Log.Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}

func decodeForLog(body []byte, contentType string) interface{} {
	if len(body) == 0 || !strings.HasPrefix(contentType, "application/json") {
		return nil
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}
	return redactSensitive(decoded)
}

// redactSensitive masks string values stored under credential-looking keys
func redactSensitive(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if _, isString := inner.(string); isString && isSensitiveField(k) {
				val[k] = redacted
				continue
			}
			val[k] = redactSensitive(inner)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = redactSensitive(inner)
		}
		return val
	default:
		return v
	}
}

func isSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range sensitiveFieldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
