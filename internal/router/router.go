// File: internal/router/router.go
package router

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"gideon/internal/cache"
	"gideon/internal/database"
	"gideon/internal/generator"
	"gideon/internal/handler"
	"gideon/internal/handler/auth"
	"gideon/internal/handler/history"
	"gideon/internal/handler/plans"
	"gideon/internal/metrics"
	"gideon/internal/middleware"
	"gideon/internal/service"
)

// Deps 啟動時建立一次，交給各 handler 使用
type Deps struct {
	DB           database.DB
	Cache        cache.Cache // nil 表示停用快取
	Issuer       *service.TokenIssuer
	Workout      generator.WorkoutGenerator
	Nutrition    generator.NutritionGenerator
	PlanCacheTTL time.Duration
	Metrics      *metrics.Metrics
	Log          *slog.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	e.Use(d.Metrics.Middleware())

	// 註冊與登入
	authDeps := auth.Deps{DB: d.DB, Issuer: d.Issuer, Metrics: d.Metrics, Log: d.Log}
	e.POST("/auth/register", auth.RegisterHandler(authDeps))
	e.POST("/auth/login", auth.LoginHandler(authDeps))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 產生計畫，不需登入也不寫入資料庫
	planOpts := plans.Options{Cache: d.Cache, CacheTTL: d.PlanCacheTTL, Metrics: d.Metrics, Log: d.Log}
	api.POST("/workout-plan", plans.WorkoutPlanHandler(d.Workout, planOpts))
	api.POST("/nutrition-plan", plans.NutritionPlanHandler(d.Nutrition, planOpts))

	// 歷史紀錄需登入
	requireAuth := middleware.RequireAuth(d.Issuer)
	api.GET("/workouts/history", history.WorkoutHistoryHandler(d.DB, d.Log), requireAuth)
	api.GET("/nutrition/history", history.NutritionHistoryHandler(d.DB, d.Log), requireAuth)

	e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
}
