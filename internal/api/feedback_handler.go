package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler holds the feedback service dependency.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// --- DTOs ---

type FeedbackRequest struct {
	UserID  string `json:"userId"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Rating  string `json:"rating" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    string    `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// MapFeedbackToResponse converts a domain.Feedback to its DTO. The owning
// user id stays internal; the listing is public.
func MapFeedbackToResponse(feedback *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID.Hex(),
		Name:      feedback.Name,
		Email:     feedback.Email,
		Rating:    feedback.Rating,
		Message:   feedback.Message,
		CreatedAt: feedback.CreatedAt,
	}
}

// --- Handler Methods ---

// Create handles POST /feedback.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	feedback := &domain.Feedback{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Message: req.Message,
	}

	created, err := h.feedbackService.Create(c.Request.Context(), feedback)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "All fields are required")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your feedback!", "feedback": MapFeedbackToResponse(created)})
}

// List handles GET /feedback. Public, no auth or user filter.
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	responses := make([]FeedbackResponse, len(items))
	for i := range items {
		responses[i] = MapFeedbackToResponse(&items[i])
	}
	c.JSON(http.StatusOK, responses)
}
