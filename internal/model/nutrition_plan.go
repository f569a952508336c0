// File: internal/model/nutrition_plan.go
package model

import "time"

// NutritionPlan 已儲存的飲食計畫，建立後不再修改
type NutritionPlan struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"user_id"`
	DietPreference string    `db:"diet_preference" json:"diet_preference"`
	CalorieTarget  int       `db:"calorie_target" json:"calorie_target"`
	Plan           string    `db:"plan" json:"plan"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
