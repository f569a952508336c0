package generator

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// readFile 讀取模型檔，測試可覆寫
var readFile = os.ReadFile

// loadJSON 解碼模型檔並回傳內容摘要
func loadJSON(path string, v any) (string, error) {
	if path == "" {
		return "", errors.New("model path not set")
	}
	b, err := readFile(path)
	if err != nil {
		return "", fmt.Errorf("read model %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return "", fmt.Errorf("decode model %s: %w", path, err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:6]), nil
}

// LoadWorkoutModel 從 JSON 檔載入並驗證訓練規則表
func LoadWorkoutModel(path string) (*WorkoutModel, error) {
	m := &WorkoutModel{}
	digest, err := loadJSON(path, m)
	if err != nil {
		return nil, err
	}
	m.digest = digest
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadNutritionModel 從 JSON 檔載入並驗證飲食規則表
func LoadNutritionModel(path string) (*NutritionModel, error) {
	m := &NutritionModel{}
	digest, err := loadJSON(path, m)
	if err != nil {
		return nil, err
	}
	m.digest = digest
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// loadState 載入失敗不會中止啟動：fallback 為 true 時改用內建模型，否則標記為 Unavailable
func loadState[T any](log *slog.Logger, kind, path string, fallback bool, load func(string) (T, error), basic func() T) ModelState[T] {
	m, err := load(path)
	if err == nil {
		log.Info("model loaded", "kind", kind, "path", path)
		return Loaded(m)
	}
	log.Error("model load failed", "kind", kind, "path", path, "error", err)
	if fallback {
		log.Warn("using built-in basic model", "kind", kind)
		return Loaded(basic())
	}
	return Unavailable[T](err.Error())
}

func WorkoutState(log *slog.Logger, path string, fallback bool) ModelState[WorkoutGenerator] {
	return loadState(log, "workout", path, fallback,
		func(p string) (WorkoutGenerator, error) {
			m, err := LoadWorkoutModel(p)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
		func() WorkoutGenerator { return BasicWorkoutModel() },
	)
}

func NutritionState(log *slog.Logger, path string, fallback bool) ModelState[NutritionGenerator] {
	return loadState(log, "nutrition", path, fallback,
		func(p string) (NutritionGenerator, error) {
			m, err := LoadNutritionModel(p)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
		func() NutritionGenerator { return BasicNutritionModel() },
	)
}

// Source 模型來源設定；Backend 為 "llm" 時使用 OpenAI 相容服務，其餘讀取規則表檔案
type Source struct {
	Backend       string
	WorkoutPath   string
	NutritionPath string
	APIKey        string
	BaseURL       string
	Model         string
	Fallback      bool
}

const BackendLLM = "llm"

// States 依來源載入兩種模型
func States(log *slog.Logger, src Source) (ModelState[WorkoutGenerator], ModelState[NutritionGenerator]) {
	if src.Backend == BackendLLM {
		return LLMStates(log, src.APIKey, src.BaseURL, src.Model, src.Fallback)
	}
	return WorkoutState(log, src.WorkoutPath, src.Fallback), NutritionState(log, src.NutritionPath, src.Fallback)
}
