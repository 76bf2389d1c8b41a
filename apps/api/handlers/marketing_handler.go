package handlers

import (
	"net/http"

	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

type MarketingHandler struct {
	welcomeCard interfaces.WelcomeCardService
}

// NewMarketingHandler creates a handler with interface dependencies
func NewMarketingHandler(welcomeCard interfaces.WelcomeCardService) *MarketingHandler {
	return &MarketingHandler{welcomeCard: welcomeCard}
}

// GetWelcomeCard reports whether the marketing welcome card is hidden
// @Summary Get the marketing welcome card state
// @Tags marketing
// @Produce json
// @Success 200 {object} responses.WelcomeCardResponse
// @Failure 500 {object} ErrorResponse
// @Router /marketing/welcome-card [get]
func (h *MarketingHandler) GetWelcomeCard(c *gin.Context) {
	hidden, err := h.welcomeCard.IsHidden(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to read welcome card state", err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.WelcomeCardResponse{Hidden: hidden})
}

// HideWelcomeCard dismisses the marketing welcome card
// @Summary Hide the marketing welcome card
// @Tags marketing
// @Produce json
// @Success 200 {object} responses.WelcomeCardResponse
// @Failure 500 {object} ErrorResponse
// @Router /marketing/welcome-card/hide [post]
func (h *MarketingHandler) HideWelcomeCard(c *gin.Context) {
	if err := h.welcomeCard.Hide(c.Request.Context()); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to hide welcome card", err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.WelcomeCardResponse{Hidden: true})
}
