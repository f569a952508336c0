// File: internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 服務執行期設定，啟動時讀取一次
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret      string
	AccessTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PlanCacheTTL  time.Duration

	WorkerCount int

	WorkoutModelPath   string
	NutritionModelPath string
	ModelFallback      bool
	GeneratorBackend   string

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	LogLevel slog.Level
}

const (
	BackendModel = "model"
	BackendLLM   = "llm"
)

// 測試可覆寫
var loadDotenv = func() error { return godotenv.Load() }

// Load 讀取 .env（可不存在）與環境變數並驗證必要欄位
func Load() (Config, error) {
	_ = loadDotenv()

	cfg := Config{
		HTTPAddr:           GetString("HTTP_ADDR", ":8080"),
		DatabaseURL:        GetString("DATABASE_URL", ""),
		JWTSecret:          GetString("JWT_SECRET_KEY", ""),
		RedisAddr:          GetString("REDIS_ADDR", ""),
		RedisPassword:      GetString("REDIS_PASSWORD", ""),
		WorkoutModelPath:   GetString("WORKOUT_MODEL_PATH", "models/workout_model.json"),
		NutritionModelPath: GetString("NUTRITION_MODEL_PATH", "models/nutrition_model.json"),
		GeneratorBackend:   strings.ToLower(GetString("GENERATOR_BACKEND", BackendModel)),
		OpenAIKey:          GetString("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      GetString("OPENAI_BASE_URL", ""),
		OpenAIModel:        GetString("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("環境變數 JWT_SECRET_KEY 未設定")
	}

	var err error
	if cfg.AccessTokenTTL, err = GetDuration("JWT_ACCESS_TOKEN_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.PlanCacheTTL, err = GetDuration("PLAN_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = GetInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = GetInt("WORKER_COUNT", 4); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	if cfg.ModelFallback, err = GetBool("MODEL_FALLBACK", true); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = GetLevel("LOG_LEVEL", slog.LevelInfo); err != nil {
		return Config{}, err
	}

	switch cfg.GeneratorBackend {
	// llm 缺少金鑰時不在此擋下，由 generator 依 MODEL_FALLBACK 降級
	case BackendModel, BackendLLM:
	default:
		return Config{}, fmt.Errorf("無效的 GENERATOR_BACKEND: %q", cfg.GeneratorBackend)
	}

	return cfg, nil
}

// GetString retrieves an environment variable or returns a fallback when unset.
func GetString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return parsed, nil
}

func GetBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return parsed, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("無效的 %s: 必須大於 0", key)
	}
	return parsed, nil
}

func GetLevel(key string, fallback slog.Level) (slog.Level, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(value)); err != nil {
		return fallback, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return lvl, nil
}
