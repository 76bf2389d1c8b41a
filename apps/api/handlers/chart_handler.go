package handlers

import (
	"net/http"

	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/types/api/requests"
	"github.com/cyphera/store-admin/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type ChartHandler struct {
	chartService interfaces.ChartService
}

// NewChartHandler creates a handler with interface dependencies
func NewChartHandler(chartService interfaces.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// PrepareChart derives series order, distinct dates and emptiness for a dataset
// @Summary Prepare chart data
// @Description Orders series by total, lists distinct dates and checks whether the dataset is empty
// @Tags charts
// @Accept json
// @Produce json
// @Param body body requests.PrepareChartRequest true "Chart dataset"
// @Success 200 {object} responses.PrepareChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /charts/prepare [post]
func (h *ChartHandler) PrepareChart(c *gin.Context) {
	var req requests.PrepareChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	chart, err := h.chartService.Prepare(c.Request.Context(), interfaces.ChartPrepareParams{
		Data:        req.Data,
		DateFormat:  req.DateFormat,
		BaseValue:   req.BaseValue,
		ValueFormat: req.ValueFormat,
		LabelFormat: req.LabelFormat,
	})
	if err != nil {
		message := "Invalid chart data"
		if errors.Is(err, helpers.ErrMissingSeriesValue) {
			message = "Every record must carry a value for every series"
		}
		sendError(c, http.StatusUnprocessableEntity, message, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NewPrepareChartResponse(chart))
}
