// File: internal/store/nutrition_plan.go
package store

import (
	"context"
	"fmt"

	"gideon/internal/database"
	"gideon/internal/model"
)

func CreateNutritionPlan(ctx context.Context, db database.DB, p *model.NutritionPlan) (*model.NutritionPlan, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO nutrition_plans (user_id, diet_preference, calorie_target, plan)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.UserID,
		p.DietPreference,
		p.CalorieTarget,
		p.Plan,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateNutritionPlan: %w", err)
	}
	return p, nil
}

func ListRecentNutritionPlans(ctx context.Context, db database.DB, userID, limit int) ([]model.NutritionPlan, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, diet_preference, calorie_target, plan, created_at
		 FROM nutrition_plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentNutritionPlans: %w", err)
	}
	defer rows.Close()

	list := make([]model.NutritionPlan, 0, limit)
	for rows.Next() {
		var p model.NutritionPlan
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.DietPreference,
			&p.CalorieTarget,
			&p.Plan,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRecentNutritionPlans: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentNutritionPlans: %w", err)
	}
	return list, nil
}
