package api

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/fitness-tracker/internal/domain"
	"fitpulse/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// NutritionHandler holds the nutrition service dependency.
type NutritionHandler struct {
	nutritionService service.NutritionService
}

// NewNutritionHandler creates a new NutritionHandler.
func NewNutritionHandler(nutritionService service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// --- DTOs ---

type FoodItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity string  `json:"quantity" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Proteins float64 `json:"proteins" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fats     float64 `json:"fats" binding:"min=0"`
}

type NutritionRequest struct {
	UserID    string            `json:"userId"`
	MealType  domain.MealType   `json:"mealType" binding:"required,oneof=Breakfast Lunch Dinner Snacks Other"`
	FoodItems []FoodItemRequest `json:"foodItems" binding:"required,min=1,dive"`
	Date      time.Time         `json:"date" binding:"required"`
	Notes     string            `json:"notes"`
}

// NutritionResponse carries the log plus totals derived at read time.
type NutritionResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	MealType      domain.MealType   `json:"mealType"`
	FoodItems     []domain.FoodItem `json:"foodItems"`
	Date          time.Time         `json:"date"`
	Notes         string            `json:"notes,omitempty"`
	TotalCalories float64           `json:"totalCalories"`
	TotalProteins float64           `json:"totalProteins"`
	TotalCarbs    float64           `json:"totalCarbs"`
	TotalFats     float64           `json:"totalFats"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// MapNutritionToResponse converts a domain.NutritionLog to its DTO,
// deriving the calorie and macro totals.
func MapNutritionToResponse(log *domain.NutritionLog) NutritionResponse {
	return NutritionResponse{
		ID:            log.ID.Hex(),
		UserID:        log.UserID.Hex(),
		MealType:      log.MealType,
		FoodItems:     log.FoodItems,
		Date:          log.Date,
		Notes:         log.Notes,
		TotalCalories: log.TotalCalories(),
		TotalProteins: log.TotalProteins(),
		TotalCarbs:    log.TotalCarbs(),
		TotalFats:     log.TotalFats(),
		CreatedAt:     log.CreatedAt,
		UpdatedAt:     log.UpdatedAt,
	}
}

func foodItemsFromRequest(items []FoodItemRequest) []domain.FoodItem {
	foods := make([]domain.FoodItem, len(items))
	for i, item := range items {
		foods[i] = domain.FoodItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Calories: item.Calories,
			Proteins: item.Proteins,
			Carbs:    item.Carbs,
			Fats:     item.Fats,
		}
	}
	return foods
}

// --- Handler Methods ---

// Create handles POST /nutrition.
func (h *NutritionHandler) Create(c *gin.Context) {
	var req NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	log := &domain.NutritionLog{
		UserID:    userID,
		MealType:  req.MealType,
		FoodItems: foodItemsFromRequest(req.FoodItems),
		Date:      req.Date,
		Notes:     req.Notes,
	}

	created, err := h.nutritionService.Create(c.Request.Context(), log)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Invalid data")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Created", "log": MapNutritionToResponse(created)})
}

// List handles GET /nutrition?userId=.
func (h *NutritionHandler) List(c *gin.Context) {
	userID, err := resolveUserID(c, "")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "userId required")
		return
	}

	logs, err := h.nutritionService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}

	responses := make([]NutritionResponse, len(logs))
	for i := range logs {
		responses[i] = MapNutritionToResponse(&logs[i])
	}
	c.JSON(http.StatusOK, responses)
}

// Update handles POST /nutrition/:id.
func (h *NutritionHandler) Update(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid nutrition log id")
		return
	}

	var req NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid data")
		return
	}

	log := &domain.NutritionLog{
		ID:        id,
		MealType:  req.MealType,
		FoodItems: foodItemsFromRequest(req.FoodItems),
		Date:      req.Date,
		Notes:     req.Notes,
	}

	updated, err := h.nutritionService.Update(c.Request.Context(), log)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNutritionNotFound):
			abortWithError(c, http.StatusNotFound, "Not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, "Invalid data")
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapNutritionToResponse(updated))
}

// Delete handles DELETE /nutrition/:id.
func (h *NutritionHandler) Delete(c *gin.Context) {
	id, err := pathObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid nutrition log id")
		return
	}

	if err := h.nutritionService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNutritionNotFound) {
			abortWithError(c, http.StatusNotFound, "Not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
