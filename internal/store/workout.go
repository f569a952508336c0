// File: internal/store/workout.go
package store

import (
	"context"
	"fmt"

	"gideon/internal/database"
	"gideon/internal/model"
)

// HistoryLimit 歷史紀錄每次回傳的最大筆數
const HistoryLimit = 5

func CreateWorkout(ctx context.Context, db database.DB, w *model.Workout) (*model.Workout, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO workouts (user_id, goal, level, days_per_week, plan)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		w.UserID,
		w.Goal,
		w.Level,
		w.DaysPerWeek,
		w.Plan,
	)
	if err := row.Scan(&w.ID, &w.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateWorkout: %w", err)
	}
	return w, nil
}

// ListRecentWorkouts 依建立時間新到舊回傳最多 limit 筆；沒有資料時回傳空 slice
func ListRecentWorkouts(ctx context.Context, db database.DB, userID, limit int) ([]model.Workout, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, goal, level, days_per_week, plan, created_at
		 FROM workouts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentWorkouts: %w", err)
	}
	defer rows.Close()

	list := make([]model.Workout, 0, limit)
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Goal,
			&w.Level,
			&w.DaysPerWeek,
			&w.Plan,
			&w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRecentWorkouts: %w", err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentWorkouts: %w", err)
	}
	return list, nil
}
