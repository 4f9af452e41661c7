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

// budgetHandler handles HTTP requests related to per-cycle budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.getBudget)
		budgets.PUT("", h.updateBudget)
	}
}

// getBudget godoc
// @Summary Get the budget for a cycle
// @Description Retrieves the budget of the cycle starting in the given year and month; with no parameters the current cycle is used. A cycle without a stored budget yields an empty one.
// @Tags budgets
// @Produce  json
// @Param   year query int false "Year of the cycle start"
// @Param   month query int false "Month of the cycle start (1-12)"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid cycle parameters"
// @Failure 500 {object} map[string]string "Failed to retrieve budget"
// @Router /budgets [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := cycleQueryParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be supplied together as numbers, month between 1 and 12"})
		return
	}

	view, err := h.budgetService.GetBudget(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to get budget from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(view))
}

// updateBudget godoc
// @Summary Edit the budget for a cycle
// @Description Applies a sparse set of per-category amount edits. Blank amounts are skipped, positive amounts set the line and zero removes it; categories absent from the submission stay untouched.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   year query int false "Year of the cycle start"
// @Param   month query int false "Month of the cycle start (1-12)"
// @Param   budget body dto.UpdateBudgetRequest true "Budget edits"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update budget"
// @Router /budgets [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := cycleQueryParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month must be supplied together as numbers, month between 1 and 12"})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.budgetService.ApplyBudgetEdits(c.Request.Context(), year, month, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(view))
}
