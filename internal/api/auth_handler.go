package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService    service.AuthService
	profileService service.ProfileService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, profileService service.ProfileService) *AuthHandler {
	return &AuthHandler{authService: authService, profileService: profileService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like the password hash.
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Image       string             `json:"image,omitempty"`
	Preferences domain.Preferences `json:"preferences"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type LoginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:          user.ID.Hex(),
		Name:        user.Name,
		Email:       user.Email,
		Image:       user.Image,
		Preferences: user.Preferences,
		CreatedAt:   user.CreatedAt,
	}
}

// --- Handler Methods ---

// Register handles POST /register. The body is a multipart form with name,
// email, password and an optional profile picture.
func (h *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		abortWithError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	imageKey := ""
	if fileHeader, err := c.FormFile("profilePic"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			internalError(c, err)
			return
		}
		defer file.Close()

		imageKey, err = h.profileService.UploadProfileImage(c.Request.Context(), &service.ProfileImage{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		})
		if err != nil {
			internalError(c, err)
			return
		}
	}

	_, err := h.authService.Register(c.Request.Context(), name, email, password, imageKey)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			abortWithError(c, http.StatusBadRequest, "Email already registered")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login handles POST /login. Credential failures are reported as message
// strings in a 200 response, not as HTTP error codes.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownUser):
			c.JSON(http.StatusOK, LoginResponse{Message: "User don't exist"})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusOK, LoginResponse{Message: "Wrong Password"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Logged in",
		Token:   token,
		User:    MapUserToResponse(user),
	})
}
