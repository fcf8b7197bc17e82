package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type WorkoutRequest struct {
	UserID       string                 `json:"userId"`
	ExerciseName string                 `json:"exerciseName" binding:"required"`
	Sets         int                    `json:"sets" binding:"required,min=1"`
	Reps         int                    `json:"reps" binding:"required,min=1"`
	Weight       float64                `json:"weight" binding:"omitempty,min=0"`
	Category     domain.WorkoutCategory `json:"category" binding:"omitempty,oneof=Strength Cardio Yoga HIIT Mobility Other"`
	Tags         string                 `json:"tags"`
	Notes        string                 `json:"notes"`
	Date         time.Time              `json:"date" binding:"required"`
}

type WorkoutResponse struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"userId"`
	ExerciseName string                 `json:"exerciseName"`
	Sets         int                    `json:"sets"`
	Reps         int                    `json:"reps"`
	Weight       float64                `json:"weight,omitempty"`
	Category     domain.WorkoutCategory `json:"category"`
	Tags         string                 `json:"tags,omitempty"`
	Notes        string                 `json:"notes,omitempty"`
	Date         time.Time              `json:"date"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// MapWorkoutToResponse converts a domain.WorkoutEntry to its DTO.
func MapWorkoutToResponse(entry *domain.WorkoutEntry) WorkoutResponse {
	return WorkoutResponse{
		ID:           entry.ID.Hex(),
		UserID:       entry.UserID.Hex(),
		ExerciseName: entry.ExerciseName,
		Sets:         entry.Sets,
		Reps:         entry.Reps,
		Weight:       entry.Weight,
		Category:     entry.Category,
		Tags:         entry.Tags,
		Notes:        entry.Notes,
		Date:         entry.Date,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}

// --- Handler Methods ---

// Create handles POST /workouts.
func (h *WorkoutHandler) Create(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	entry := &domain.WorkoutEntry{
		UserID:       userID,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Category:     req.Category,
		Tags:         req.Tags,
		Notes:        req.Notes,
		Date:         req.Date,
	}

	created, err := h.workoutService.Create(c.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout added successfully", "workout": MapWorkoutToResponse(created)})
}

// List handles GET /workouts?userId=.
func (h *WorkoutHandler) List(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	entries, err := h.workoutService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	responses := make([]WorkoutResponse, len(entries))
	for i := range entries {
		responses[i] = MapWorkoutToResponse(&entries[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles POST /workouts/:id.
func (h *WorkoutHandler) Update(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry := &domain.WorkoutEntry{
		ID:           id,
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Category:     req.Category,
		Tags:         req.Tags,
		Notes:        req.Notes,
		Date:         req.Date,
	}

	updated, err := h.workoutService.Update(c.Request.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout updated successfully", "workout": MapWorkoutToResponse(updated)})
}

// Delete handles DELETE /workouts/:id.
func (h *WorkoutHandler) Delete(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
