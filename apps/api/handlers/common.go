package handlers

import (
	"net/http"

	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/cyphera/store-admin/libs/go/middleware"
	"github.com/cyphera/store-admin/libs/go/services"
	"github.com/cyphera/store-admin/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse   = responses.ErrorResponse
	SuccessResponse = responses.SuccessResponse
)

// sendError logs the error and sends a JSON error response carrying the
// request's correlation ID
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps domain errors to HTTP status codes
func handleServiceError(c *gin.Context, err error, fallbackMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, services.ErrUnknownPaymentMethod):
		sendError(c, http.StatusNotFound, "Payment method not found", err)
	case errors.Is(err, services.ErrPaymentMethodHidden):
		sendError(c, http.StatusConflict, "Payment method is not available for this store", err)
	case errors.Is(err, services.ErrNoSetupFlow):
		sendError(c, http.StatusConflict, "Payment method has no setup flow", err)
	default:
		sendError(c, http.StatusInternalServerError, fallbackMsg, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}
