package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"gideon/internal/logger"

	"github.com/stretchr/testify/require"
)

func stubReadFile(t *testing.T, files map[string][]byte) {
	t.Helper()
	readFile = func(name string) ([]byte, error) {
		if b, ok := files[name]; ok {
			return b, nil
		}
		return nil, os.ErrNotExist
	}
	t.Cleanup(func() { readFile = os.ReadFile })
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestLoadWorkoutModel(t *testing.T) {
	custom := BasicWorkoutModel()
	custom.Version = "2025.05"
	stubReadFile(t, map[string][]byte{
		"ok.json":      mustJSON(t, custom),
		"bad.json":     []byte("{not json"),
		"unknown.json": []byte(`{"goals":{},"extra":1}`),
		"invalid.json": []byte(`{"default_goal":"x","goals":{},"levels":{}}`),
	})

	m, err := LoadWorkoutModel("ok.json")
	require.NoError(t, err)
	require.Equal(t, "2025.05", m.Version)
	require.Equal(t, custom.Levels["advanced"], m.Levels["advanced"])

	for _, path := range []string{"", "missing.json", "bad.json", "unknown.json", "invalid.json"} {
		_, err := LoadWorkoutModel(path)
		require.Error(t, err, path)
	}
	_, err = LoadWorkoutModel("missing.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadNutritionModel(t *testing.T) {
	stubReadFile(t, map[string][]byte{
		"ok.json":      mustJSON(t, BasicNutritionModel()),
		"invalid.json": []byte(`{"default_diet":"balanced","diets":{"balanced":{"protein_pct":50}}}`),
	})

	m, err := LoadNutritionModel("ok.json")
	require.NoError(t, err)
	require.Len(t, m.Diets, len(BasicNutritionModel().Diets))

	_, err = LoadNutritionModel("invalid.json")
	require.Error(t, err)
	_, err = LoadNutritionModel("missing.json")
	require.Error(t, err)
}

func TestWorkoutState(t *testing.T) {
	custom := BasicWorkoutModel()
	custom.Goals["general_fitness"] = GoalRule{
		Duration: "30 minutes",
		Split:    []SessionRule{{Focus: "Custom", Exercises: []string{"Burpees"}}},
	}
	stubReadFile(t, map[string][]byte{"workout.json": mustJSON(t, custom)})
	ctx := context.Background()
	params := WorkoutParams{Goal: "general_fitness", Level: "beginner", Days: 1}

	t.Run("loaded from file", func(t *testing.T) {
		s := WorkoutState(logger.Discard(), "workout.json", false)
		g, err := s.Get()
		require.NoError(t, err)
		plan, err := g.GenerateWorkout(ctx, params)
		require.NoError(t, err)
		require.Equal(t, "Custom", plan.WeeklySchedule[0].Focus)
	})

	t.Run("fallback to basic", func(t *testing.T) {
		var buf bytes.Buffer
		s := WorkoutState(logger.NewWithWriter(&buf, "test", 0), "missing.json", true)
		g, err := s.Get()
		require.NoError(t, err)
		plan, err := g.GenerateWorkout(ctx, params)
		require.NoError(t, err)
		require.Equal(t, "Full Body", plan.WeeklySchedule[0].Focus)
		require.Contains(t, buf.String(), "model load failed")
		require.Contains(t, buf.String(), "using built-in basic model")
	})

	t.Run("unavailable", func(t *testing.T) {
		s := WorkoutState(logger.Discard(), "missing.json", false)
		require.False(t, s.IsLoaded())
		require.NotEmpty(t, s.Reason())
		g, err := s.Get()
		require.ErrorIs(t, err, ErrModelUnavailable)
		require.Nil(t, g)
	})
}

func TestNutritionState(t *testing.T) {
	stubReadFile(t, map[string][]byte{"nutrition.json": mustJSON(t, BasicNutritionModel())})

	s := NutritionState(logger.Discard(), "nutrition.json", false)
	require.True(t, s.IsLoaded())

	s = NutritionState(logger.Discard(), "missing.json", true)
	require.True(t, s.IsLoaded())

	s = NutritionState(logger.Discard(), "missing.json", false)
	_, err := s.Get()
	require.ErrorIs(t, err, ErrModelUnavailable)
}

func TestLLMStates(t *testing.T) {
	t.Cleanup(func() { newLLM = NewLLM })

	w, n := LLMStates(logger.Discard(), "", "", "gpt-4o-mini", false)
	require.False(t, w.IsLoaded())
	require.False(t, n.IsLoaded())

	w, n = LLMStates(logger.Discard(), "", "", "gpt-4o-mini", true)
	g, err := w.Get()
	require.NoError(t, err)
	require.IsType(t, &WorkoutModel{}, g)
	ng, err := n.Get()
	require.NoError(t, err)
	require.IsType(t, &NutritionModel{}, ng)

	fake := &LLM{chat: &fakeChat{}, model: "m"}
	newLLM = func(apiKey, baseURL, model string) (*LLM, error) {
		require.Equal(t, "key", apiKey)
		require.Equal(t, "http://llm.local/v1", baseURL)
		return fake, nil
	}
	w, n = LLMStates(logger.Discard(), "key", "http://llm.local/v1", "m", false)
	g, err = w.Get()
	require.NoError(t, err)
	require.Same(t, fake, g)
	ng, err = n.Get()
	require.NoError(t, err)
	require.Same(t, fake, ng)

	newLLM = func(string, string, string) (*LLM, error) { return nil, errors.New("dial") }
	w, _ = LLMStates(logger.Discard(), "key", "", "m", false)
	require.Equal(t, "dial", w.Reason())
}

func TestStates(t *testing.T) {
	stubReadFile(t, map[string][]byte{
		"w.json": mustJSON(t, BasicWorkoutModel()),
		"n.json": mustJSON(t, BasicNutritionModel()),
	})
	t.Cleanup(func() { newLLM = NewLLM })

	w, n := States(logger.Discard(), Source{Backend: "model", WorkoutPath: "w.json", NutritionPath: "n.json"})
	require.True(t, w.IsLoaded())
	require.True(t, n.IsLoaded())

	w, n = States(logger.Discard(), Source{WorkoutPath: "missing.json", NutritionPath: "n.json"})
	require.False(t, w.IsLoaded())
	require.True(t, n.IsLoaded())

	fake := &LLM{chat: &fakeChat{}, model: "m"}
	newLLM = func(string, string, string) (*LLM, error) { return fake, nil }
	w, _ = States(logger.Discard(), Source{Backend: BackendLLM, APIKey: "key", Model: "m", WorkoutPath: "missing.json"})
	g, err := w.Get()
	require.NoError(t, err)
	require.Same(t, fake, g)
}

func TestShippedModelFiles(t *testing.T) {
	w, err := LoadWorkoutModel("../../models/workout_model.json")
	require.NoError(t, err)
	require.Contains(t, w.Goals, "muscle_gain")

	n, err := LoadNutritionModel("../../models/nutrition_model.json")
	require.NoError(t, err)
	require.Contains(t, n.Diets, "mediterranean")
}

func TestModelCacheTag(t *testing.T) {
	a := BasicWorkoutModel()
	a.Version = "2025.05"
	b := BasicWorkoutModel()
	b.Version = "2025.05"
	b.Goals["strength"] = GoalRule{Duration: "70 minutes", Split: []SessionRule{{Focus: "Squat", Exercises: []string{"Back Squats"}}}}
	stubReadFile(t, map[string][]byte{"a.json": mustJSON(t, a), "b.json": mustJSON(t, b)})

	ma, err := LoadWorkoutModel("a.json")
	require.NoError(t, err)
	mb, err := LoadWorkoutModel("b.json")
	require.NoError(t, err)

	// 同版本號但內容不同，標籤也不同
	require.Regexp(t, `^rules-2025\.05-[0-9a-f]{12}$`, ma.CacheTag())
	require.NotEqual(t, ma.CacheTag(), mb.CacheTag())
	require.Equal(t, "rules-basic", BasicWorkoutModel().CacheTag())
	require.Equal(t, "rules-basic", BasicNutritionModel().CacheTag())
	require.Equal(t, "llm-gpt-4o-mini", (&LLM{model: "gpt-4o-mini"}).CacheTag())
}
