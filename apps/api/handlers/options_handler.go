package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/types/api/requests"
	"github.com/cyphera/store-admin/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type OptionsHandler struct {
	store interfaces.OptionsStore
}

// NewOptionsHandler creates a handler with interface dependencies
func NewOptionsHandler(store interfaces.OptionsStore) *OptionsHandler {
	return &OptionsHandler{store: store}
}

// GetOptions returns the named store options
// @Summary Get store options
// @Tags options
// @Produce json
// @Param names query string true "Comma separated option names"
// @Success 200 {object} responses.OptionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /options [get]
func (h *OptionsHandler) GetOptions(c *gin.Context) {
	names := parseNames(c.Query("names"))
	if len(names) == 0 {
		sendError(c, http.StatusBadRequest, "At least one option name is required", errors.New("names query parameter is empty"))
		return
	}

	values, err := h.store.GetOptions(c.Request.Context(), names)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to read options", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.OptionsResponse{Object: "options", Values: values})
}

// UpdateOptions queues a write of store options
// @Summary Update store options
// @Description The write is applied in the background; its outcome shows up on the next payments task refresh
// @Tags options
// @Accept json
// @Produce json
// @Param body body requests.UpdateOptionsRequest true "Option values"
// @Success 202 {object} responses.OptionsWriteResponse
// @Failure 400 {object} ErrorResponse
// @Router /options [put]
func (h *OptionsHandler) UpdateOptions(c *gin.Context) {
	var req requests.UpdateOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Values) == 0 {
		sendError(c, http.StatusBadRequest, "At least one option value is required", errors.New("values is empty"))
		return
	}

	if err := h.store.UpdateOptions(c.Request.Context(), req.Values); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to update options", err)
		return
	}

	names := make([]string, 0, len(req.Values))
	for name := range req.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	sendSuccess(c, http.StatusAccepted, responses.OptionsWriteResponse{
		Object:     "options_write",
		Names:      names,
		Requesting: h.store.RequestState(names).Requesting,
	})
}

func parseNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
