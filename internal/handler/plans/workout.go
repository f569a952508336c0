// File: internal/handler/plans/workout.go
package plans

import (
	"context"
	"strconv"

	"gideon/internal/cache"
	"gideon/internal/dto"
	"gideon/internal/generator"

	"github.com/labstack/echo/v4"
)

// WorkoutPlanHandler 驗證參數後產生訓練計畫；結果不寫入資料庫
// @Summary     產生訓練計畫
// @Description 依目標、程度與每週天數 (1-7) 產生訓練計畫，接受 JSON 或表單
// @Tags        plans
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.WorkoutPlanRequest true "訓練參數"
// @Success     200  {object} dto.PlanResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /api/workout-plan [post]
func WorkoutPlanHandler(gen generator.WorkoutGenerator, opt Options) echo.HandlerFunc {
	const kind = "workout"
	return func(c echo.Context) error {
		var req dto.WorkoutPlanRequest
		if err := c.Bind(&req); err != nil {
			return opt.badRequest(c, kind, msgInvalidBody)
		}
		if err := c.Validate(&req); err != nil {
			return opt.badRequest(c, kind, msgMissingFields)
		}
		days, err := req.Days.Int()
		if err != nil {
			return opt.badRequest(c, kind, "Invalid days value")
		}
		if days < 1 || days > 7 {
			return opt.badRequest(c, kind, "Days must be between 1 and 7")
		}

		params := generator.WorkoutParams{Goal: req.Goal, Level: req.Level, Days: days}
		key := cache.PlanKey(kind, workoutCacheTag(gen), params.Goal, params.Level, strconv.Itoa(days))
		return opt.serve(c, kind, key, "Failed to generate workout plan", func(ctx context.Context) (any, error) {
			return gen.GenerateWorkout(ctx, params)
		})
	}
}

func workoutCacheTag(gen generator.WorkoutGenerator) string {
	if t, ok := gen.(interface{ WorkoutCacheTag() string }); ok {
		return t.WorkoutCacheTag()
	}
	if t, ok := gen.(interface{ CacheTag() string }); ok {
		return t.CacheTag()
	}
	return ""
}
