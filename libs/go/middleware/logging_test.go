package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactSensitive(t *testing.T) {
	body := []byte(`{"values":{"woocommerce_stripe_settings":{"enabled":"yes","secret_key":"sk_live_1","publishable_key":"pk_live_1"},"woocommerce_ppec_paypal_settings":{"api_password":"hunter2","api_username":"merchant"}}}`)

	decoded := decodeForLog(body, "application/json; charset=utf-8")
	values := decoded.(map[string]interface{})["values"].(map[string]interface{})

	stripe := values["woocommerce_stripe_settings"].(map[string]interface{})
	assert.Equal(t, "yes", stripe["enabled"])
	assert.Equal(t, redacted, stripe["secret_key"])
	assert.Equal(t, redacted, stripe["publishable_key"])

	paypal := values["woocommerce_ppec_paypal_settings"].(map[string]interface{})
	assert.Equal(t, redacted, paypal["api_password"])
	assert.Equal(t, "merchant", paypal["api_username"])
}

func TestDecodeForLog(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        interface{}
	}{
		{name: "empty body", body: "", contentType: "application/json", want: nil},
		{name: "non json content", body: "hello", contentType: "text/plain", want: nil},
		{name: "invalid json kept as text", body: "{oops", contentType: "application/json", want: "{oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeForLog([]byte(tt.body), tt.contentType))
		})
	}
}

func TestEnhancedLoggingMiddlewarePreservesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), EnhancedLoggingMiddleware(true), RequestLoggingMiddleware())
	router.PUT("/api/v1/options", func(c *gin.Context) {
		var body map[string]interface{}
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, body)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/options", strings.NewReader(`{"woocommerce_cod_settings":{"enabled":"yes"}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"woocommerce_cod_settings":{"enabled":"yes"}}`, w.Body.String())
}
