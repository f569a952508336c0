package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gideon/internal/cache"
	"gideon/internal/config"
	"gideon/internal/database"
	"gideon/internal/generator"
	"gideon/internal/handler"
	"gideon/internal/logger"
	"gideon/internal/metrics"
	"gideon/internal/router"
	"gideon/internal/service"
	"gideon/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "gideon/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = serve
)

// serve 啟動 HTTP 服務，收到 SIGINT/SIGTERM 後優雅關閉
func serve(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func modelSource(cfg config.Config) generator.Source {
	return generator.Source{
		Backend:       cfg.GeneratorBackend,
		WorkoutPath:   cfg.WorkoutModelPath,
		NutritionPath: cfg.NutritionModelPath,
		APIKey:        cfg.OpenAIKey,
		BaseURL:       cfg.OpenAIBaseURL,
		Model:         cfg.OpenAIModel,
		Fallback:      cfg.ModelFallback,
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	log := newLogger("gideon", cfg.LogLevel)
	ctx := context.Background()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration 執行失敗: %w", err)
	}

	// 未設定 REDIS_ADDR 時停用快取，保持 nil 介面
	var planCache cache.Cache
	if cfg.RedisAddr != "" {
		c, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("redis 連線失敗: %w", err)
		}
		defer c.Close()
		planCache = c
	} else {
		log.Info("plan cache disabled")
	}

	issuer, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		return err
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	workoutState, nutritionState := generator.States(log, modelSource(cfg))
	planner := generator.NewPlanner(workoutState, nutritionState, wp)
	log.Info("generators ready",
		"backend", cfg.GeneratorBackend,
		"workout_loaded", workoutState.IsLoaded(),
		"nutrition_loaded", nutritionState.IsLoaded(),
		"workers", cfg.WorkerCount)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:           db,
		Cache:        planCache,
		Issuer:       issuer,
		Workout:      planner,
		Nutrition:    planner,
		PlanCacheTTL: cfg.PlanCacheTTL,
		Metrics:      metrics.New(),
		Log:          log,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info("listening", "addr", cfg.HTTPAddr)
	return startServer(e, cfg.HTTPAddr)
}
