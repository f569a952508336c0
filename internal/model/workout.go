// File: internal/model/workout.go
package model

import "time"

// Workout 已儲存的訓練計畫，建立後不再修改
type Workout struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Goal        string    `db:"goal" json:"goal"`
	Level       string    `db:"level" json:"level"`
	DaysPerWeek int       `db:"days_per_week" json:"days_per_week"`
	Plan        string    `db:"plan" json:"plan"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
