package handlers

import (
	"net/http"

	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

type PaymentsTaskHandler struct {
	task interfaces.PaymentsTask
}

// NewPaymentsTaskHandler creates a handler with interface dependencies
func NewPaymentsTaskHandler(task interfaces.PaymentsTask) *PaymentsTaskHandler {
	return &PaymentsTaskHandler{task: task}
}

func (h *PaymentsTaskHandler) sendView(c *gin.Context, statusCode int) {
	sendSuccess(c, statusCode, responses.NewPaymentsTaskResponse(h.task.View()))
}

// GetPaymentsTask returns the payments task screen
// @Summary Get the payments task
// @Description Lists the payment methods available to the store with their enabled, configured and recommended state
// @Tags payments-task
// @Produce json
// @Success 200 {object} responses.PaymentsTaskResponse
// @Router /tasks/payments [get]
func (h *PaymentsTaskHandler) GetPaymentsTask(c *gin.Context) {
	h.sendView(c, http.StatusOK)
}

// RefreshPaymentsTask re-reads store options and plugins
// @Summary Refresh the payments task
// @Description Re-reads options and active plugins. Raises a notice for each settings write that failed since the last refresh
// @Tags payments-task
// @Produce json
// @Success 200 {object} responses.PaymentsTaskResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/payments/refresh [post]
func (h *PaymentsTaskHandler) RefreshPaymentsTask(c *gin.Context) {
	if err := h.task.Refresh(c.Request.Context()); err != nil {
		handleServiceError(c, err, "Failed to refresh payments task")
		return
	}
	h.sendView(c, http.StatusOK)
}

// ToggleMethod flips a payment method's enabled flag
// @Summary Toggle a payment method
// @Tags payments-task
// @Produce json
// @Param key path string true "Payment method key"
// @Success 200 {object} responses.PaymentsTaskResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tasks/payments/methods/{key}/toggle [post]
func (h *PaymentsTaskHandler) ToggleMethod(c *gin.Context) {
	if err := h.task.ToggleMethod(c.Request.Context(), c.Param("key")); err != nil {
		handleServiceError(c, err, "Failed to toggle payment method")
		return
	}
	h.sendView(c, http.StatusOK)
}

// ConfigureMethod opens a payment method's setup flow
// @Summary Configure a payment method
// @Description Opens the method's setup inline, or moves the dashboard to its full page setup
// @Tags payments-task
// @Produce json
// @Param key path string true "Payment method key"
// @Success 200 {object} responses.ConfigureMethodResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tasks/payments/methods/{key}/configure [post]
func (h *PaymentsTaskHandler) ConfigureMethod(c *gin.Context) {
	mode, err := h.task.BeginConfigure(c.Request.Context(), c.Param("key"))
	if err != nil {
		handleServiceError(c, err, "Failed to configure payment method")
		return
	}
	sendSuccess(c, http.StatusOK, responses.ConfigureMethodResponse{
		Mode: string(mode),
		Task: responses.NewPaymentsTaskResponse(h.task.View()),
	})
}

// MarkMethodConfigured enables a method after its setup succeeded
// @Summary Mark a payment method configured
// @Tags payments-task
// @Produce json
// @Param key path string true "Payment method key"
// @Success 200 {object} responses.PaymentsTaskResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/payments/methods/{key}/configured [post]
func (h *PaymentsTaskHandler) MarkMethodConfigured(c *gin.Context) {
	if err := h.task.MarkConfigured(c.Param("key")); err != nil {
		handleServiceError(c, err, "Failed to mark payment method configured")
		return
	}
	h.sendView(c, http.StatusOK)
}

// FinishMethodConfiguration closes a method's setup without enabling it
// @Summary Close a payment method's setup
// @Tags payments-task
// @Produce json
// @Param key path string true "Payment method key"
// @Success 200 {object} responses.PaymentsTaskResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/payments/methods/{key}/configuration-finished [post]
func (h *PaymentsTaskHandler) FinishMethodConfiguration(c *gin.Context) {
	if err := h.task.MarkConfigurationFinished(c.Param("key")); err != nil {
		handleServiceError(c, err, "Failed to finish payment method configuration")
		return
	}
	h.sendView(c, http.StatusOK)
}

// InstallMethodPlugins starts installing the plugins a method needs
// @Summary Install a payment method's plugins
// @Description Installation runs in the background; refresh the task to see the result
// @Tags payments-task
// @Produce json
// @Param key path string true "Payment method key"
// @Success 202 {object} responses.PaymentsTaskResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/payments/methods/{key}/install [post]
func (h *PaymentsTaskHandler) InstallMethodPlugins(c *gin.Context) {
	if err := h.task.InstallPlugins(c.Request.Context(), c.Param("key")); err != nil {
		handleServiceError(c, err, "Failed to install payment method plugins")
		return
	}
	h.sendView(c, http.StatusAccepted)
}

// CompleteTask marks the payments task done
// @Summary Complete the payments task
// @Tags payments-task
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/payments/complete [post]
func (h *PaymentsTaskHandler) CompleteTask(c *gin.Context) {
	if err := h.task.CompleteTask(c.Request.Context()); err != nil {
		handleServiceError(c, err, "Failed to complete payments task")
		return
	}
	sendSuccessMessage(c, http.StatusOK, "Payments task completed")
}

// SkipTask records that the store will not take payments
// @Summary Skip the payments task
// @Tags payments-task
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/payments/skip [post]
func (h *PaymentsTaskHandler) SkipTask(c *gin.Context) {
	if err := h.task.SkipTask(c.Request.Context()); err != nil {
		handleServiceError(c, err, "Failed to skip payments task")
		return
	}
	sendSuccessMessage(c, http.StatusOK, "Payments task skipped")
}
