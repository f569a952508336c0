package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicModelsValid(t *testing.T) {
	require.NoError(t, BasicWorkoutModel().Validate())
	require.NoError(t, BasicNutritionModel().Validate())
}

func TestModelState(t *testing.T) {
	s := Loaded[int](3)
	require.True(t, s.IsLoaded())
	v, err := s.Get()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	u := Unavailable[int]("file missing")
	require.False(t, u.IsLoaded())
	require.Equal(t, "file missing", u.Reason())
	_, err = u.Get()
	require.ErrorIs(t, err, ErrModelUnavailable)
	require.ErrorContains(t, err, "file missing")

	var zero ModelState[WorkoutGenerator]
	_, err = zero.Get()
	require.ErrorIs(t, err, ErrModelUnavailable)
}

func TestGenerateWorkoutDays(t *testing.T) {
	m := BasicWorkoutModel()
	for days := 1; days <= 7; days++ {
		plan, err := m.GenerateWorkout(context.Background(), WorkoutParams{Goal: "strength", Level: "beginner", Days: days})
		require.NoError(t, err)
		require.Len(t, plan.WeeklySchedule, days)
		for i, d := range plan.WeeklySchedule {
			require.Equal(t, i+1, d.Day)
			require.NotEmpty(t, d.Exercises)
			require.Equal(t, "60 minutes", d.Duration)
		}
	}

	for _, days := range []int{0, -1, 8} {
		_, err := m.GenerateWorkout(context.Background(), WorkoutParams{Goal: "strength", Level: "beginner", Days: days})
		require.Error(t, err, "days=%d", days)
	}
}

func TestGenerateWorkoutRules(t *testing.T) {
	m := BasicWorkoutModel()
	ctx := context.Background()

	plan, err := m.GenerateWorkout(ctx, WorkoutParams{Goal: "strength", Level: "advanced", Days: 4})
	require.NoError(t, err)
	// 三段輪替，第四天回到第一段
	require.Equal(t, "Squat", plan.WeeklySchedule[0].Focus)
	require.Equal(t, "Pull", plan.WeeklySchedule[2].Focus)
	require.Equal(t, "Squat", plan.WeeklySchedule[3].Focus)
	require.Equal(t, Intensity{Sets: "4-5", Reps: "6-10", Rest: "60-120 seconds"}, plan.Intensity)
	require.Contains(t, plan.Notes, "deload")

	// 名稱正規化
	plan, err = m.GenerateWorkout(ctx, WorkoutParams{Goal: " Weight Loss ", Level: "Intermediate", Days: 1})
	require.NoError(t, err)
	require.Equal(t, "HIIT", plan.WeeklySchedule[0].Focus)
	require.Equal(t, "3-4", plan.Intensity.Sets)

	// 未知值使用預設
	plan, err = m.GenerateWorkout(ctx, WorkoutParams{Goal: "parkour", Level: "guru", Days: 2})
	require.NoError(t, err)
	require.Equal(t, "Full Body", plan.WeeklySchedule[0].Focus)
	require.Equal(t, "2-3", plan.Intensity.Sets)

	// 回傳的 exercises 不可與規則表共用
	plan.WeeklySchedule[0].Exercises[0] = "changed"
	require.Equal(t, "Squats", m.Goals["general_fitness"].Split[0].Exercises[0])

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = m.GenerateWorkout(cctx, WorkoutParams{Goal: "strength", Level: "beginner", Days: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateNutrition(t *testing.T) {
	m := BasicNutritionModel()
	ctx := context.Background()

	plan, err := m.GenerateNutrition(ctx, NutritionParams{Diet: "balanced", Calories: 2000})
	require.NoError(t, err)
	require.Equal(t, Macronutrients{Protein: "150g", Carbohydrates: "200g", Fats: "67g"}, plan.Macronutrients)
	require.NotEmpty(t, plan.MealPlan.Breakfast)
	require.Len(t, plan.MealPlan.Snacks, 2)
	require.Contains(t, plan.Notes, "2000 kcal")

	plan, err = m.GenerateNutrition(ctx, NutritionParams{Diet: "High-Protein", Calories: 1000})
	require.NoError(t, err)
	require.Equal(t, "100g", plan.Macronutrients.Protein)

	plan, err = m.GenerateNutrition(ctx, NutritionParams{Diet: "carnivore", Calories: 3000})
	require.NoError(t, err)
	require.Equal(t, m.Diets["balanced"].Breakfast, plan.MealPlan.Breakfast)

	_, err = m.GenerateNutrition(ctx, NutritionParams{Diet: "balanced", Calories: 0})
	require.Error(t, err)
}

func TestWorkoutModelValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m *WorkoutModel)
	}{
		{"empty goals", func(m *WorkoutModel) { m.Goals = nil }},
		{"bad default goal", func(m *WorkoutModel) { m.DefaultGoal = "nope" }},
		{"bad default level", func(m *WorkoutModel) { m.DefaultLevel = "nope" }},
		{"empty split", func(m *WorkoutModel) { m.Goals["strength"] = GoalRule{Duration: "1h"} }},
		{"incomplete session", func(m *WorkoutModel) {
			m.Goals["strength"] = GoalRule{Split: []SessionRule{{Focus: "x"}}}
		}},
		{"goal key case", func(m *WorkoutModel) { m.Goals["Strength"] = m.Goals["strength"] }},
		{"level key case", func(m *WorkoutModel) { m.Levels["Pro"] = LevelRule{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := BasicWorkoutModel()
			tc.mutate(m)
			require.Error(t, m.Validate())
		})
	}
}

func TestNutritionModelValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(m *NutritionModel)
	}{
		{"empty", func(m *NutritionModel) { m.Diets = nil }},
		{"bad default", func(m *NutritionModel) { m.DefaultDiet = "nope" }},
		{"split sum", func(m *NutritionModel) {
			d := m.Diets["keto"]
			d.FatPct = 60
			m.Diets["keto"] = d
		}},
		{"negative pct", func(m *NutritionModel) {
			d := m.Diets["keto"]
			d.CarbsPct, d.FatPct = -5, 80
			m.Diets["keto"] = d
		}},
		{"missing meal", func(m *NutritionModel) {
			d := m.Diets["vegan"]
			d.Dinner = ""
			m.Diets["vegan"] = d
		}},
		{"key case", func(m *NutritionModel) { m.Diets["Paleo"] = m.Diets["balanced"] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := BasicNutritionModel()
			tc.mutate(m)
			require.Error(t, m.Validate())
		})
	}
}
