package handlers

import (
	"net/http"

	"github.com/cyphera/store-admin/libs/go/types/api/requests"
	"github.com/cyphera/store-admin/libs/go/types/api/responses"
	"github.com/cyphera/store-admin/libs/go/types/business"

	"github.com/gin-gonic/gin"
)

// NoticeDrainer hands out queued notices once
type NoticeDrainer interface {
	Drain() []business.Notice
}

// NavigationController exposes and moves the dashboard location
type NavigationController interface {
	State() business.NavigationState
	Navigate(path string, query map[string]string)
}

type NoticesHandler struct {
	notices NoticeDrainer
	router  NavigationController
}

// NewNoticesHandler creates a handler over the notice queue and router
func NewNoticesHandler(notices NoticeDrainer, router NavigationController) *NoticesHandler {
	return &NoticesHandler{notices: notices, router: router}
}

// DrainNotices returns and clears the queued notices
// @Summary Drain notices
// @Tags notices
// @Produce json
// @Success 200 {object} responses.NoticesResponse
// @Router /notices [get]
func (h *NoticesHandler) DrainNotices(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.NoticesResponse{
		Object: "list",
		Data:   h.notices.Drain(),
	})
}

// GetNavigation returns the location the dashboard should show
// @Summary Get the dashboard location
// @Tags navigation
// @Produce json
// @Success 200 {object} business.NavigationState
// @Router /navigation [get]
func (h *NoticesHandler) GetNavigation(c *gin.Context) {
	sendSuccess(c, http.StatusOK, h.router.State())
}

// Navigate records the location the merchant moved to
// @Summary Set the dashboard location
// @Tags navigation
// @Accept json
// @Produce json
// @Param body body requests.NavigateRequest true "Location"
// @Success 200 {object} business.NavigationState
// @Failure 400 {object} ErrorResponse
// @Router /navigation [post]
func (h *NoticesHandler) Navigate(c *gin.Context) {
	var req requests.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.router.Navigate(req.Path, req.Query)
	sendSuccess(c, http.StatusOK, h.router.State())
}
