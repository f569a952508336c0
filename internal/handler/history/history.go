// File: internal/handler/history/history.go
package history

import (
	"log/slog"
	"net/http"

	"gideon/internal/database"
	"gideon/internal/dto"
	"gideon/internal/middleware"
	"gideon/internal/store"

	"github.com/labstack/echo/v4"
)

// WorkoutHistoryHandler 回傳目前使用者最近 5 筆訓練計畫，新到舊
// @Summary     訓練計畫歷史
// @Tags        history
// @Produce     json
// @Success     200 {array}  dto.WorkoutHistoryItem
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/workouts/history [get]
func WorkoutHistoryHandler(db database.DB, log *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid or expired token"})
		}
		list, err := store.ListRecentWorkouts(c.Request().Context(), db, userID, store.HistoryLimit)
		if err != nil {
			log.Error("list workout history", "user_id", userID, "error", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to load workout history"})
		}
		return c.JSON(http.StatusOK, dto.NewWorkoutHistory(list))
	}
}

// NutritionHistoryHandler 回傳目前使用者最近 5 筆飲食計畫，新到舊
// @Summary     飲食計畫歷史
// @Tags        history
// @Produce     json
// @Success     200 {array}  dto.NutritionHistoryItem
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /api/nutrition/history [get]
func NutritionHistoryHandler(db database.DB, log *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.UserID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid or expired token"})
		}
		list, err := store.ListRecentNutritionPlans(c.Request().Context(), db, userID, store.HistoryLimit)
		if err != nil {
			log.Error("list nutrition history", "user_id", userID, "error", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to load nutrition history"})
		}
		return c.JSON(http.StatusOK, dto.NewNutritionHistory(list))
	}
}
