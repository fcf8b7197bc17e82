package domain

import "testing"

func TestNutritionLogTotals(t *testing.T) {
	log := NutritionLog{
		MealType: MealLunch,
		FoodItems: []FoodItem{
			{Name: "Chicken breast", Quantity: "150g", Calories: 250, Proteins: 45, Carbs: 0, Fats: 6},
			{Name: "Rice", Quantity: "1 cup", Calories: 200, Proteins: 4, Carbs: 45, Fats: 0.5},
			{Name: "Olive oil", Quantity: "1 tbsp", Calories: 120, Proteins: 0, Carbs: 0, Fats: 14},
		},
	}

	if got := log.TotalCalories(); got != 570 {
		t.Errorf("TotalCalories() = %v, want 570", got)
	}
	if got := log.TotalProteins(); got != 49 {
		t.Errorf("TotalProteins() = %v, want 49", got)
	}
	if got := log.TotalCarbs(); got != 45 {
		t.Errorf("TotalCarbs() = %v, want 45", got)
	}
	if got := log.TotalFats(); got != 20.5 {
		t.Errorf("TotalFats() = %v, want 20.5", got)
	}
}

func TestNutritionLogTotalsEmpty(t *testing.T) {
	log := NutritionLog{MealType: MealSnacks}
	if got := log.TotalCalories(); got != 0 {
		t.Errorf("TotalCalories() = %v, want 0", got)
	}
}
