package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	portssvc "github.com/SscSPs/household_budget_app/internal/core/ports/services"
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// summaryHandler handles HTTP requests for the cycle dashboard.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// newSummaryHandler creates a new summaryHandler.
func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{
		summaryService: ss,
	}
}

// registerSummaryRoutes registers the cycle summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	rg.GET("/summary", h.getCycleSummary)
}

// getCycleSummary godoc
// @Summary Get the dashboard summary for a cycle
// @Description Computes totals, account balances, per-category sums, the expense ranking, budget vs actual and the daily series for the cycle starting in the given year and month. With no parameters the cycle containing today is used.
// @Tags summary
// @Produce  json
// @Param   year query int false "Year of the cycle start"
// @Param   month query int false "Month of the cycle start (1-12)"
// @Success 200 {object} dto.CycleSummaryResponse
// @Failure 400 {object} map[string]string "Invalid cycle parameters"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /summary [get]
func (h *summaryHandler) getCycleSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := cycleQueryParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be supplied together as numbers, month between 1 and 12"})
		return
	}

	summary, err := h.summaryService.GetCycleSummary(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute cycle summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCycleSummaryResponse(summary))
}
