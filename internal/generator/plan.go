package generator

import "context"

// WorkoutParams 產生訓練計畫所需的已驗證參數
type WorkoutParams struct {
	Goal  string
	Level string
	Days  int
}

// NutritionParams 產生飲食計畫所需的已驗證參數
type NutritionParams struct {
	Diet     string
	Calories int
}

type WorkoutGenerator interface {
	GenerateWorkout(ctx context.Context, p WorkoutParams) (*WorkoutPlan, error)
}

type NutritionGenerator interface {
	GenerateNutrition(ctx context.Context, p NutritionParams) (*NutritionPlan, error)
}

// WorkoutPlan 為回傳給前端的訓練計畫格式
type WorkoutPlan struct {
	WeeklySchedule []WorkoutDay `json:"weekly_schedule" jsonschema_description:"One entry per training day, in order."`
	Intensity      Intensity    `json:"intensity" jsonschema_description:"Sets, reps and rest applied to every exercise."`
	Notes          string       `json:"notes" jsonschema_description:"Short coaching notes for the whole week."`
}

type WorkoutDay struct {
	Day       int      `json:"day" jsonschema_description:"Training day number starting at 1."`
	Focus     string   `json:"focus" jsonschema_description:"Main focus of the session, e.g. Upper Body."`
	Duration  string   `json:"duration" jsonschema_description:"Expected session length, e.g. 45 minutes."`
	Exercises []string `json:"exercises" jsonschema_description:"Exercises performed in the session."`
}

type Intensity struct {
	Sets string `json:"sets" jsonschema_description:"Sets per exercise, e.g. 3-4."`
	Reps string `json:"reps" jsonschema_description:"Reps per set, e.g. 8-12."`
	Rest string `json:"rest" jsonschema_description:"Rest between sets, e.g. 60-90 seconds."`
}

// NutritionPlan 為回傳給前端的每日飲食計畫格式
type NutritionPlan struct {
	Macronutrients Macronutrients `json:"macronutrients" jsonschema_description:"Daily macronutrient targets in grams."`
	MealPlan       MealPlan       `json:"meal_plan" jsonschema_description:"Meals for one day."`
	Notes          string         `json:"notes" jsonschema_description:"Short dietary notes."`
}

type Macronutrients struct {
	Protein       string `json:"protein" jsonschema_description:"Daily protein, e.g. 150g."`
	Carbohydrates string `json:"carbohydrates" jsonschema_description:"Daily carbohydrates, e.g. 200g."`
	Fats          string `json:"fats" jsonschema_description:"Daily fats, e.g. 60g."`
}

type MealPlan struct {
	Breakfast string   `json:"breakfast"`
	Lunch     string   `json:"lunch"`
	Dinner    string   `json:"dinner"`
	Snacks    []string `json:"snacks"`
}
