package api

import (
	"errors"
	"net/http"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

type ProfileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// MapProfileToResponse converts a service.Profile to its DTO.
func MapProfileToResponse(profile *service.Profile) ProfileResponse {
	return ProfileResponse{
		ID:       profile.ID.Hex(),
		Name:     profile.Name,
		Email:    profile.Email,
		ImageURL: profile.ImageURL,
	}
}

// PreferencesRequest uses a pointer for the notifications object so that
// omitting it keeps the push default instead of writing push=false.
type PreferencesRequest struct {
	Notifications *domain.NotificationPrefs `json:"notifications"`
	Units         domain.UnitSystem         `json:"units" binding:"omitempty,oneof=metric imperial"`
	Theme         domain.Theme              `json:"theme" binding:"omitempty,oneof=dark light"`
	Language      string                    `json:"language" binding:"omitempty,oneof=en es fr de ur"`
	Reminders     domain.ReminderTimes      `json:"reminders"`
}

// --- Handler Methods ---

// Get handles GET /profile?userId=.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// Update handles POST /profile. The body is a multipart form with name,
// email and an optional replacement profile picture.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, err := resolveUserID(c, c.PostForm("userId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		abortWithError(c, http.StatusBadRequest, "name and email are required")
		return
	}

	var image *service.ProfileImage
	if fileHeader, err := c.FormFile("profilePic"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			internalError(c, err)
			return
		}
		defer file.Close()
		image = &service.ProfileImage{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, name, email, image)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "profile": MapProfileToResponse(profile)})
}

// Delete handles DELETE /profile?userId=. Removes the account along with
// its workouts, progress entries and nutrition logs.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetPreferences handles GET /preferences?userId=.
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	prefs, err := h.profileService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles POST /preferences?userId=. Omitted fields fall
// back to defaults rather than being preserved.
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	prefs, err := h.profileService.UpdatePreferences(c.Request.Context(), userID, service.PreferencesUpdate{
		Notifications: req.Notifications,
		Units:         req.Units,
		Theme:         req.Theme,
		Language:      req.Language,
		Reminders:     req.Reminders,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences saved", "preferences": prefs})
}
