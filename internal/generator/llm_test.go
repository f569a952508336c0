package generator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	content string
	refusal string
	empty   bool
	err     error
	got     openai.ChatCompletionNewParams
}

func (f *fakeChat) New(_ context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	f.got = body
	if f.err != nil {
		return nil, f.err
	}
	if f.empty {
		return &openai.ChatCompletion{}, nil
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Content: f.content, Refusal: f.refusal},
		}},
	}, nil
}

func TestNewLLM(t *testing.T) {
	_, err := NewLLM("", "", "gpt-4o-mini")
	require.Error(t, err)
	_, err = NewLLM("key", "", "")
	require.Error(t, err)

	l, err := NewLLM("key", "http://localhost:11434/v1", "gpt-4o-mini")
	require.NoError(t, err)
	require.NotNil(t, l.chat)
	require.Equal(t, "gpt-4o-mini", l.model)
}

func TestGenerateSchemaStrict(t *testing.T) {
	b, err := json.Marshal(workoutPlanSchema)
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal(b, &s))
	require.Equal(t, false, s["additionalProperties"])
	require.ElementsMatch(t, []any{"weekly_schedule", "intensity", "notes"}, s["required"])
	require.NotContains(t, string(b), "$ref")
}

func TestLLMGenerateWorkout(t *testing.T) {
	want, err := BasicWorkoutModel().GenerateWorkout(context.Background(), WorkoutParams{Goal: "strength", Level: "beginner", Days: 3})
	require.NoError(t, err)
	body, err := json.Marshal(want)
	require.NoError(t, err)

	chat := &fakeChat{content: "\n" + string(body) + "\n"}
	l := &LLM{chat: chat, model: "test-model"}

	got, err := l.GenerateWorkout(context.Background(), WorkoutParams{Goal: "strength", Level: "beginner", Days: 3})
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.EqualValues(t, "test-model", chat.got.Model)
	require.Len(t, chat.got.Messages, 2)
	js := chat.got.ResponseFormat.OfJSONSchema
	require.NotNil(t, js)
	require.Equal(t, "workout_plan", js.JSONSchema.Name)
	require.Same(t, workoutPlanSchema, js.JSONSchema.Schema)

	// 天數不符
	_, err = l.GenerateWorkout(context.Background(), WorkoutParams{Goal: "strength", Level: "beginner", Days: 5})
	require.ErrorContains(t, err, "expected 5 training days")
}

func TestLLMGenerateNutrition(t *testing.T) {
	chat := &fakeChat{content: `{"macronutrients":{"protein":"150g","carbohydrates":"200g","fats":"67g"},
		"meal_plan":{"breakfast":"Oats","lunch":"Salad","dinner":"Fish","snacks":["Nuts"]},"notes":"ok"}`}
	l := &LLM{chat: chat, model: "m"}

	got, err := l.GenerateNutrition(context.Background(), NutritionParams{Diet: "balanced", Calories: 2000})
	require.NoError(t, err)
	require.Equal(t, "150g", got.Macronutrients.Protein)
	require.Equal(t, []string{"Nuts"}, got.MealPlan.Snacks)
	require.Equal(t, "nutrition_plan", chat.got.ResponseFormat.OfJSONSchema.JSONSchema.Name)
}

func TestLLMErrors(t *testing.T) {
	p := NutritionParams{Diet: "vegan", Calories: 1800}
	cases := []struct {
		name string
		chat *fakeChat
		msg  string
	}{
		{"transport", &fakeChat{err: errors.New("429")}, "429"},
		{"no choices", &fakeChat{empty: true}, "empty response"},
		{"refusal", &fakeChat{refusal: "cannot help"}, "refused"},
		{"bad json", &fakeChat{content: "Sure! Here is your plan"}, "decode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := &LLM{chat: tc.chat, model: "m"}
			_, err := l.GenerateNutrition(context.Background(), p)
			require.ErrorContains(t, err, tc.msg)
		})
	}
}
