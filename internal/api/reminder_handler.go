package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler holds the reminder service dependency.
type ReminderHandler struct {
	reminderService service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// --- DTOs ---

type ReminderRequest struct {
	UserID   string                  `json:"userId"`
	Title    string                  `json:"title" binding:"required"`
	Date     time.Time               `json:"date" binding:"required"`
	Type     domain.ReminderType     `json:"type" binding:"omitempty,oneof=workout meal goal appointment medication other"`
	Category domain.ReminderCategory `json:"category" binding:"omitempty,oneof=reminder alert"`
	Priority domain.ReminderPriority `json:"priority" binding:"omitempty,oneof=low medium high none"`
	Notes    string                  `json:"notes"`
}

type ReminderToggleRequest struct {
	IsActive bool `json:"isActive"`
}

type ReminderResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	Title     string                  `json:"title"`
	Date      time.Time               `json:"date"`
	Type      domain.ReminderType     `json:"type"`
	Category  domain.ReminderCategory `json:"category"`
	Priority  domain.ReminderPriority `json:"priority"`
	IsActive  bool                    `json:"isActive"`
	Notified  bool                    `json:"notified"`
	Notes     string                  `json:"notes,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// MapReminderToResponse converts a domain.Reminder to its DTO.
func MapReminderToResponse(reminder *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        reminder.ID.Hex(),
		UserID:    reminder.UserID.Hex(),
		Title:     reminder.Title,
		Date:      reminder.Date,
		Type:      reminder.Type,
		Category:  reminder.Category,
		Priority:  reminder.Priority,
		IsActive:  reminder.IsActive,
		Notified:  reminder.Notified,
		Notes:     reminder.Notes,
		CreatedAt: reminder.CreatedAt,
		UpdatedAt: reminder.UpdatedAt,
	}
}

// --- Handler Methods ---

// Create handles POST /reminders.
func (h *ReminderHandler) Create(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	reminder := &domain.Reminder{
		UserID:   userID,
		Title:    req.Title,
		Date:     req.Date,
		Type:     req.Type,
		Category: req.Category,
		Priority: req.Priority,
		Notes:    req.Notes,
	}

	created, err := h.reminderService.Create(c.Request.Context(), reminder)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid data")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reminder created", "reminder": MapReminderToResponse(created)})
}

// List handles GET /reminders?userId=.
func (h *ReminderHandler) List(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	reminders, err := h.reminderService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	responses := make([]ReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = MapReminderToResponse(&reminders[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles POST /reminders/:id.
func (h *ReminderHandler) Update(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid reminder id")
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	reminder := &domain.Reminder{
		ID:       id,
		Title:    req.Title,
		Date:     req.Date,
		Type:     req.Type,
		Category: req.Category,
		Priority: req.Priority,
		Notes:    req.Notes,
	}

	updated, err := h.reminderService.Update(c.Request.Context(), reminder)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReminderNotFound):
			abortWithError(c, http.StatusNotFound, "Not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Invalid data")
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapReminderToResponse(updated))
}

// Toggle handles PATCH /reminders/:id. Only the isActive flag changes.
func (h *ReminderHandler) Toggle(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid reminder id")
		return
	}

	var req ReminderToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	updated, err := h.reminderService.SetActive(c.Request.Context(), id, req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapReminderToResponse(updated))
}

// Delete handles DELETE /reminders/:id.
func (h *ReminderHandler) Delete(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid reminder id")
		return
	}

	if err := h.reminderService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
