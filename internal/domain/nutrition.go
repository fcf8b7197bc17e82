package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType identifies which meal a nutrition log belongs to.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnacks    MealType = "Snacks"
	MealOther     MealType = "Other"
)

// FoodItem is one food within a nutrition log. Quantity is free text
// ("1 cup", "150g"); macros are gram counts.
type FoodItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity string  `bson:"quantity" json:"quantity"`
	Calories float64 `bson:"calories" json:"calories"`
	Proteins float64 `bson:"proteins" json:"proteins"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fats     float64 `bson:"fats" json:"fats"`
}

// NutritionLog records one meal. Totals are summed from FoodItems on
// every read and never stored, so edits to the list immediately change
// all aggregates.
type NutritionLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	MealType  MealType           `bson:"mealType" json:"mealType"`
	FoodItems []FoodItem         `bson:"foodItems" json:"foodItems"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TotalCalories sums calories across all food items.
func (n *NutritionLog) TotalCalories() float64 {
	var total float64
	for _, item := range n.FoodItems {
		total += item.Calories
	}
	return total
}

// TotalProteins sums protein grams across all food items.
func (n *NutritionLog) TotalProteins() float64 {
	var total float64
	for _, item := range n.FoodItems {
		total += item.Proteins
	}
	return total
}

// TotalCarbs sums carbohydrate grams across all food items.
func (n *NutritionLog) TotalCarbs() float64 {
	var total float64
	for _, item := range n.FoodItems {
		total += item.Carbs
	}
	return total
}

// TotalFats sums fat grams across all food items.
func (n *NutritionLog) TotalFats() float64 {
	var total float64
	for _, item := range n.FoodItems {
		total += item.Fats
	}
	return total
}
