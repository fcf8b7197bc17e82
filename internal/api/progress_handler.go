package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// --- DTOs ---

type ProgressRequest struct {
	UserID       string              `json:"userId"`
	Date         time.Time           `json:"date" binding:"required"`
	Weight       float64             `json:"weight" binding:"omitempty,min=0"`
	Measurements domain.Measurements `json:"measurements"`
	Performance  domain.Performance  `json:"performance"`
}

type ProgressResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	Date         time.Time           `json:"date"`
	Weight       float64             `json:"weight,omitempty"`
	Measurements domain.Measurements `json:"measurements"`
	Performance  domain.Performance  `json:"performance"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// MapProgressToResponse converts a domain.ProgressEntry to its DTO.
func MapProgressToResponse(entry *domain.ProgressEntry) ProgressResponse {
	return ProgressResponse{
		ID:           entry.ID.Hex(),
		UserID:       entry.UserID.Hex(),
		Date:         entry.Date,
		Weight:       entry.Weight,
		Measurements: entry.Measurements,
		Performance:  entry.Performance,
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}

// --- Handler Methods ---

// Create handles POST /progress.
func (h *ProgressHandler) Create(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	entry := &domain.ProgressEntry{
		UserID:       userID,
		Date:         req.Date,
		Weight:       req.Weight,
		Measurements: req.Measurements,
		Performance:  req.Performance,
	}

	created, err := h.progressService.Create(c.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid data")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Progress saved", "progress": MapProgressToResponse(created)})
}

// List handles GET /progress?userId=. Entries come back oldest first so
// clients can chart them directly.
func (h *ProgressHandler) List(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	entries, err := h.progressService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	responses := make([]ProgressResponse, len(entries))
	for i := range entries {
		responses[i] = MapProgressToResponse(&entries[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles POST /progress/:id.
func (h *ProgressHandler) Update(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid progress id")
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	entry := &domain.ProgressEntry{
		ID:           id,
		Date:         req.Date,
		Weight:       req.Weight,
		Measurements: req.Measurements,
		Performance:  req.Performance,
	}

	updated, err := h.progressService.Update(c.Request.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgressNotFound):
			abortWithError(c, http.StatusNotFound, "Not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Invalid data")
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapProgressToResponse(updated))
}

// Delete handles DELETE /progress/:id.
func (h *ProgressHandler) Delete(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid progress id")
		return
	}

	if err := h.progressService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgressNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
