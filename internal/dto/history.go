// File: internal/dto/history.go
package dto

import (
	"time"

	"gideon/internal/model"
)

// swagger:model dto.WorkoutHistoryItem
type WorkoutHistoryItem struct {
	ID        int       `json:"id" example:"12"`
	Goal      string    `json:"goal" example:"strength"`
	Level     string    `json:"level" example:"beginner"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-09T15:04:05Z"`
}

// swagger:model dto.NutritionHistoryItem
type NutritionHistoryItem struct {
	ID             int       `json:"id" example:"7"`
	DietPreference string    `json:"diet_preference" example:"vegan"`
	CalorieTarget  int       `json:"calorie_target" example:"2000"`
	Plan           string    `json:"plan"`
	CreatedAt      time.Time `json:"created_at" example:"2025-05-09T15:04:05Z"`
}

// NewWorkoutHistory 轉換為回應格式；沒有資料時回傳空陣列而非 nil
func NewWorkoutHistory(ws []model.Workout) []WorkoutHistoryItem {
	out := make([]WorkoutHistoryItem, 0, len(ws))
	for _, w := range ws {
		out = append(out, WorkoutHistoryItem{
			ID:        w.ID,
			Goal:      w.Goal,
			Level:     w.Level,
			Plan:      w.Plan,
			CreatedAt: w.CreatedAt.UTC(),
		})
	}
	return out
}

func NewNutritionHistory(ps []model.NutritionPlan) []NutritionHistoryItem {
	out := make([]NutritionHistoryItem, 0, len(ps))
	for _, p := range ps {
		out = append(out, NutritionHistoryItem{
			ID:             p.ID,
			DietPreference: p.DietPreference,
			CalorieTarget:  p.CalorieTarget,
			Plan:           p.Plan,
			CreatedAt:      p.CreatedAt.UTC(),
		})
	}
	return out
}
