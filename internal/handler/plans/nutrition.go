// File: internal/handler/plans/nutrition.go
package plans

import (
	"context"
	"strconv"

	"gideon/internal/cache"
	"gideon/internal/dto"
	"gideon/internal/generator"

	"github.com/labstack/echo/v4"
)

// NutritionPlanHandler 驗證參數後產生飲食計畫；結果不寫入資料庫
// @Summary     產生飲食計畫
// @Description 依飲食偏好與每日熱量 (1000-5000) 產生飲食計畫，接受 JSON 或表單
// @Tags        plans
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.NutritionPlanRequest true "飲食參數"
// @Success     200  {object} dto.PlanResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /api/nutrition-plan [post]
func NutritionPlanHandler(gen generator.NutritionGenerator, opt Options) echo.HandlerFunc {
	const kind = "nutrition"
	return func(c echo.Context) error {
		var req dto.NutritionPlanRequest
		if err := c.Bind(&req); err != nil {
			return opt.badRequest(c, kind, msgInvalidBody)
		}
		if err := c.Validate(&req); err != nil {
			return opt.badRequest(c, kind, msgMissingFields)
		}
		calories, err := req.Calories.Int()
		if err != nil {
			return opt.badRequest(c, kind, "Invalid calories value")
		}
		if calories < 1000 || calories > 5000 {
			return opt.badRequest(c, kind, "Calories must be between 1000 and 5000")
		}

		params := generator.NutritionParams{Diet: req.Diet, Calories: calories}
		key := cache.PlanKey(kind, nutritionCacheTag(gen), params.Diet, strconv.Itoa(calories))
		return opt.serve(c, kind, key, "Failed to generate nutrition plan", func(ctx context.Context) (any, error) {
			return gen.GenerateNutrition(ctx, params)
		})
	}
}

func nutritionCacheTag(gen generator.NutritionGenerator) string {
	if t, ok := gen.(interface{ NutritionCacheTag() string }); ok {
		return t.NutritionCacheTag()
	}
	if t, ok := gen.(interface{ CacheTag() string }); ok {
		return t.CacheTag()
	}
	return ""
}
