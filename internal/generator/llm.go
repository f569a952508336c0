package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// GenerateSchema 產生 structured output 用的 JSON schema（不允許額外欄位、不使用 $ref）
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var (
	workoutPlanSchema   = GenerateSchema[WorkoutPlan]()
	nutritionPlanSchema = GenerateSchema[NutritionPlan]()
)

const (
	workoutSystemPrompt = `You are a certified personal trainer. Build a weekly workout plan for the user.
Return exactly one weekly_schedule entry per requested training day, numbered from 1.
Keep exercise names short and use common gym terminology.`
	nutritionSystemPrompt = `You are a registered dietitian. Build a one-day meal plan for the user.
Macronutrient grams must add up to the requested calorie target (protein and carbohydrates 4 kcal/g, fats 9 kcal/g).
Write amounts as grams followed by "g", e.g. "150g".`
)

// chatCompletions 為 openai client.Chat.Completions 的最小介面，測試時替換
type chatCompletions interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// LLM 透過 OpenAI 相容 API 產生計畫，同時實作 WorkoutGenerator 與 NutritionGenerator
type LLM struct {
	chat  chatCompletions
	model string
}

// newLLM 建立 client，測試可覆寫
var newLLM = NewLLM

func NewLLM(apiKey, baseURL, model string) (*LLM, error) {
	if apiKey == "" {
		return nil, errors.New("llm: api key not set")
	}
	if model == "" {
		return nil, errors.New("llm: model not set")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &LLM{chat: &client.Chat.Completions, model: model}, nil
}

// CacheTag 以模型名稱區分不同 LLM 的輸出
func (l *LLM) CacheTag() string { return "llm-" + l.model }

func (l *LLM) GenerateWorkout(ctx context.Context, p WorkoutParams) (*WorkoutPlan, error) {
	user := fmt.Sprintf("Goal: %s\nFitness level: %s\nTraining days per week: %d", p.Goal, p.Level, p.Days)
	plan, err := complete[WorkoutPlan](ctx, l, "workout_plan", "Weekly workout plan", workoutPlanSchema, workoutSystemPrompt, user)
	if err != nil {
		return nil, err
	}
	if len(plan.WeeklySchedule) != p.Days {
		return nil, fmt.Errorf("llm: expected %d training days, got %d", p.Days, len(plan.WeeklySchedule))
	}
	return plan, nil
}

func (l *LLM) GenerateNutrition(ctx context.Context, p NutritionParams) (*NutritionPlan, error) {
	user := fmt.Sprintf("Diet preference: %s\nDaily calorie target: %d kcal", p.Diet, p.Calories)
	return complete[NutritionPlan](ctx, l, "nutrition_plan", "Daily nutrition plan", nutritionPlanSchema, nutritionSystemPrompt, user)
}

func complete[T any](ctx context.Context, l *LLM, name, desc string, schema *jsonschema.Schema, system, user string) (*T, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        name,
		Description: openai.String(desc),
		Schema:      schema,
		Strict:      openai.Bool(true),
	}
	chat, err := l.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
		},
		Model: l.model,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: %s: %w", name, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("llm: %s: empty response", name)
	}
	msg := chat.Choices[0].Message
	if msg.Refusal != "" {
		return nil, fmt.Errorf("llm: %s: refused: %s", name, msg.Refusal)
	}

	var out T
	if err := json.Unmarshal([]byte(strings.TrimSpace(msg.Content)), &out); err != nil {
		return nil, fmt.Errorf("llm: %s: decode: %w", name, err)
	}
	return &out, nil
}

// LLMStates 建立 LLM 後端；設定不完整時比照模型檔載入失敗處理
func LLMStates(log *slog.Logger, apiKey, baseURL, model string, fallback bool) (ModelState[WorkoutGenerator], ModelState[NutritionGenerator]) {
	l, err := newLLM(apiKey, baseURL, model)
	if err == nil {
		log.Info("llm backend ready", "model", model, "base_url", baseURL)
		return Loaded[WorkoutGenerator](l), Loaded[NutritionGenerator](l)
	}
	log.Error("llm backend unavailable", "error", err)
	if fallback {
		log.Warn("using built-in basic models")
		return Loaded[WorkoutGenerator](BasicWorkoutModel()), Loaded[NutritionGenerator](BasicNutritionModel())
	}
	return Unavailable[WorkoutGenerator](err.Error()), Unavailable[NutritionGenerator](err.Error())
}
