package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler holds the goal service dependency.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// --- DTOs ---

type GoalRequest struct {
	UserID   string    `json:"userId"`
	GoalType string    `json:"goalType" binding:"required"`
	Target   float64   `json:"target" binding:"min=0"`
	Current  float64   `json:"current" binding:"min=0"`
	Deadline time.Time `json:"deadline" binding:"required"`
	Notes    string    `json:"notes"`
}

// GoalResponse carries the goal plus progress and status derived at
// read time.
type GoalResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	GoalType  string    `json:"goalType"`
	Target    float64   `json:"target"`
	Current   float64   `json:"current"`
	Deadline  time.Time `json:"deadline"`
	Notes     string    `json:"notes,omitempty"`
	Progress  float64   `json:"progress"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapGoalToResponse converts a domain.Goal to its DTO, computing the
// completion percentage and deadline status against the current clock.
func MapGoalToResponse(goal *domain.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		ID:        goal.ID.Hex(),
		UserID:    goal.UserID.Hex(),
		GoalType:  goal.GoalType,
		Target:    goal.Target,
		Current:   goal.Current,
		Deadline:  goal.Deadline,
		Notes:     goal.Notes,
		Progress:  goal.Progress(),
		Status:    goal.Status(now),
		CreatedAt: goal.CreatedAt,
		UpdatedAt: goal.UpdatedAt,
	}
}

// --- Handler Methods ---

// Create handles POST /goals.
func (h *GoalHandler) Create(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	goal := &domain.Goal{
		UserID:   userID,
		GoalType: req.GoalType,
		Target:   req.Target,
		Current:  req.Current,
		Deadline: req.Deadline,
		Notes:    req.Notes,
	}

	created, err := h.goalService.Create(c.Request.Context(), goal)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid data")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Goal created", "goal": MapGoalToResponse(created, time.Now())})
}

// List handles GET /goals?userId=.
func (h *GoalHandler) List(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	goals, err := h.goalService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	now := time.Now()
	responses := make([]GoalResponse, len(goals))
	for i := range goals {
		responses[i] = MapGoalToResponse(&goals[i], now)
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles POST /goals/:id.
func (h *GoalHandler) Update(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid goal id")
		return
	}

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	goal := &domain.Goal{
		ID:       id,
		GoalType: req.GoalType,
		Target:   req.Target,
		Current:  req.Current,
		Deadline: req.Deadline,
		Notes:    req.Notes,
	}

	updated, err := h.goalService.Update(c.Request.Context(), goal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			abortWithError(c, http.StatusNotFound, "Not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Invalid data")
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapGoalToResponse(updated, time.Now()))
}

// Delete handles DELETE /goals/:id.
func (h *GoalHandler) Delete(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid goal id")
		return
	}

	if err := h.goalService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
