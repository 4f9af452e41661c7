package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_budget_app/internal/apperrors"
	"github.com/SscSPs/household_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/household_budget_app/internal/core/ports/services"
	"github.com/SscSPs/household_budget_app/internal/dto"
	"github.com/SscSPs/household_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{
		goalService: gs,
	}
}

// registerGoalRoutes registers routes related to goals and their contributions.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goalID", h.getGoalByID)
		goals.DELETE("/:goalID", h.deleteGoal)
		goals.POST("/:goalID/contributions", h.addContribution)
		goals.DELETE("/:goalID/contributions/:contributionID", h.deleteContribution)
	}
}

// createGoal godoc
// @Summary Create a new savings goal
// @Description Adds a savings goal with a positive target amount and an optional deadline
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdGoal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	// A fresh goal has no contributions yet.
	progress := domain.GoalProgress{
		Goal:             *createdGoal,
		TotalContributed: decimal.Zero,
		Contributions:    []domain.GoalContribution{},
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(&progress))
}

// listGoals godoc
// @Summary List all savings goals
// @Description Retrieves every goal with contributions and progress, earliest deadline first, undated goals last
// @Tags goals
// @Produce  json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list goals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

// getGoalByID godoc
// @Summary Get a goal by ID
// @Description Retrieves a goal with its contributions and derived progress
// @Tags goals
// @Produce  json
// @Param   goalID path string true "Goal ID (UUID)"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve goal"
// @Router /goals/{goalID} [get]
func (h *goalHandler) getGoalByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	progress, err := h.goalService.GetGoalByID(c.Request.Context(), goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to get goal from service", slog.String("error", err.Error()), slog.String("goal_id", goalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(progress))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Removes a goal together with all its contributions
// @Tags goals
// @Produce  json
// @Param   goalID path string true "Goal ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Router /goals/{goalID} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	err := h.goalService.DeleteGoal(c.Request.Context(), goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to delete goal in service", slog.String("error", err.Error()), slog.String("goal_id", goalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// addContribution godoc
// @Summary Record a contribution towards a goal
// @Description Adds a deposit with a positive amount; date defaults to today
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path string true "Goal ID (UUID)"
// @Param   contribution body dto.AddContributionRequest true "Contribution details"
// @Success 201 {object} dto.ContributionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to record contribution"
// @Router /goals/{goalID}/contributions [post]
func (h *goalHandler) addContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	var req dto.AddContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddContribution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	contribution, err := h.goalService.AddContribution(c.Request.Context(), goalID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record contribution in service", slog.String("error", err.Error()), slog.String("goal_id", goalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record contribution"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToContributionResponse(contribution))
}

// deleteContribution godoc
// @Summary Delete a contribution
// @Description Removes a single contribution from a goal
// @Tags goals
// @Produce  json
// @Param   goalID path string true "Goal ID (UUID)"
// @Param   contributionID path string true "Contribution ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Goal or contribution not found"
// @Failure 500 {object} map[string]string "Failed to delete contribution"
// @Router /goals/{goalID}/contributions/{contributionID} [delete]
func (h *goalHandler) deleteContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")
	contributionID := c.Param("contributionID")

	err := h.goalService.DeleteContribution(c.Request.Context(), goalID, contributionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contribution not found"})
		} else {
			logger.Error("Failed to delete contribution in service", slog.String("error", err.Error()), slog.String("contribution_id", contributionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contribution"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
