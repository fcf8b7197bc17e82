package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler holds the notification service dependency.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// --- DTOs ---

type NotificationRequest struct {
	UserID  string                  `json:"userId"`
	Type    domain.NotificationType `json:"type" binding:"required"`
	Message string                  `json:"message" binding:"required"`
}

type NotificationResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	IsRead    bool                    `json:"isRead"`
	Date      time.Time               `json:"date"`
	CreatedAt time.Time               `json:"createdAt"`
}

// MapNotificationToResponse converts a domain.Notification to its DTO.
// The title is derived from the type, never stored.
func MapNotificationToResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.Hex(),
		UserID:    n.UserID.Hex(),
		Type:      n.Type,
		Title:     n.Type.DefaultTitle(),
		Message:   n.Message,
		IsRead:    n.IsRead,
		Date:      n.Date,
		CreatedAt: n.CreatedAt,
	}
}

// --- Handler Methods ---

// List handles GET /notifications?userId=.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = MapNotificationToResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Create handles POST /notifications. Clients rarely call this directly;
// most notifications are appended as side effects server-side.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	created, err := h.notificationService.Notify(c.Request.Context(), userID, req.Type, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrInvalidType) {
			abortWithError(c, http.StatusBadRequest, "Unknown notification type")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapNotificationToResponse(created))
}

// MarkRead handles POST /notifications/:id.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	updated, err := h.notificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapNotificationToResponse(updated))
}

// MarkAllRead handles POST /notifications/read-all?userId=.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	marked, err := h.notificationService.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": marked})
}

// Delete handles DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
