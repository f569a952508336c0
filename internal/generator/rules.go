package generator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// WorkoutModel 為規則表模型：依目標決定課表輪替，依程度決定強度
type WorkoutModel struct {
	Version      string               `json:"version"`
	digest       string
	DefaultGoal  string               `json:"default_goal"`
	DefaultLevel string               `json:"default_level"`
	Goals        map[string]GoalRule  `json:"goals"`
	Levels       map[string]LevelRule `json:"levels"`
}

type GoalRule struct {
	Duration string        `json:"duration"`
	Notes    string        `json:"notes"`
	Split    []SessionRule `json:"split"`
}

type SessionRule struct {
	Focus     string   `json:"focus"`
	Exercises []string `json:"exercises"`
}

type LevelRule struct {
	Intensity
	Notes string `json:"notes"`
}

// NutritionModel 為規則表模型：依飲食偏好決定巨量營養素比例與菜單
type NutritionModel struct {
	Version     string              `json:"version"`
	digest      string
	DefaultDiet string              `json:"default_diet"`
	Diets       map[string]DietRule `json:"diets"`
}

type DietRule struct {
	ProteinPct int      `json:"protein_pct"`
	CarbsPct   int      `json:"carbs_pct"`
	FatPct     int      `json:"fat_pct"`
	Breakfast  string   `json:"breakfast"`
	Lunch      string   `json:"lunch"`
	Dinner     string   `json:"dinner"`
	Snacks     []string `json:"snacks"`
	Notes      string   `json:"notes"`
}

// CacheTag 標示規則表版本與檔案內容，模型檔更換後快取鍵隨之改變
func (m *WorkoutModel) CacheTag() string { return ruleTag(m.Version, m.digest) }

func (m *NutritionModel) CacheTag() string { return ruleTag(m.Version, m.digest) }

func ruleTag(version, digest string) string {
	if digest == "" {
		return "rules-" + version
	}
	return "rules-" + version + "-" + digest
}

// normalizeKey 將 "Weight Loss"、"weight-loss" 統一成 weight_loss
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// Validate 檢查規則表是否可用
func (m *WorkoutModel) Validate() error {
	if len(m.Goals) == 0 || len(m.Levels) == 0 {
		return errors.New("workout model: goals and levels must not be empty")
	}
	if _, ok := m.Goals[m.DefaultGoal]; !ok {
		return fmt.Errorf("workout model: default goal %q not defined", m.DefaultGoal)
	}
	if _, ok := m.Levels[m.DefaultLevel]; !ok {
		return fmt.Errorf("workout model: default level %q not defined", m.DefaultLevel)
	}
	for name, g := range m.Goals {
		if name != normalizeKey(name) {
			return fmt.Errorf("workout model: goal key %q must be lower_snake_case", name)
		}
		if len(g.Split) == 0 {
			return fmt.Errorf("workout model: goal %q has empty split", name)
		}
		for i, s := range g.Split {
			if s.Focus == "" || len(s.Exercises) == 0 {
				return fmt.Errorf("workout model: goal %q session %d incomplete", name, i)
			}
		}
	}
	for name := range m.Levels {
		if name != normalizeKey(name) {
			return fmt.Errorf("workout model: level key %q must be lower_snake_case", name)
		}
	}
	return nil
}

// GenerateWorkout 依課表輪替排出 p.Days 天的訓練；未知目標或程度使用預設值
func (m *WorkoutModel) GenerateWorkout(ctx context.Context, p WorkoutParams) (*WorkoutPlan, error) {
	if p.Days < 1 || p.Days > 7 {
		return nil, fmt.Errorf("workout model: days out of range: %d", p.Days)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	goal, ok := m.Goals[normalizeKey(p.Goal)]
	if !ok {
		goal = m.Goals[m.DefaultGoal]
	}
	level, ok := m.Levels[normalizeKey(p.Level)]
	if !ok {
		level = m.Levels[m.DefaultLevel]
	}

	plan := &WorkoutPlan{
		WeeklySchedule: make([]WorkoutDay, 0, p.Days),
		Intensity:      level.Intensity,
		Notes:          joinNotes(goal.Notes, level.Notes),
	}
	for d := 1; d <= p.Days; d++ {
		s := goal.Split[(d-1)%len(goal.Split)]
		plan.WeeklySchedule = append(plan.WeeklySchedule, WorkoutDay{
			Day:       d,
			Focus:     s.Focus,
			Duration:  goal.Duration,
			Exercises: append([]string(nil), s.Exercises...),
		})
	}
	return plan, nil
}

func (m *NutritionModel) Validate() error {
	if len(m.Diets) == 0 {
		return errors.New("nutrition model: diets must not be empty")
	}
	if _, ok := m.Diets[m.DefaultDiet]; !ok {
		return fmt.Errorf("nutrition model: default diet %q not defined", m.DefaultDiet)
	}
	names := make([]string, 0, len(m.Diets))
	for name := range m.Diets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := m.Diets[name]
		if name != normalizeKey(name) {
			return fmt.Errorf("nutrition model: diet key %q must be lower_snake_case", name)
		}
		if d.ProteinPct < 0 || d.CarbsPct < 0 || d.FatPct < 0 || d.ProteinPct+d.CarbsPct+d.FatPct != 100 {
			return fmt.Errorf("nutrition model: diet %q macro split must sum to 100", name)
		}
		if d.Breakfast == "" || d.Lunch == "" || d.Dinner == "" {
			return fmt.Errorf("nutrition model: diet %q missing meals", name)
		}
	}
	return nil
}

// GenerateNutrition 依熱量與飲食比例計算每日克數；蛋白質與碳水 4 kcal/g，脂肪 9 kcal/g
func (m *NutritionModel) GenerateNutrition(ctx context.Context, p NutritionParams) (*NutritionPlan, error) {
	if p.Calories <= 0 {
		return nil, fmt.Errorf("nutrition model: calories must be positive: %d", p.Calories)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, ok := m.Diets[normalizeKey(p.Diet)]
	if !ok {
		d = m.Diets[m.DefaultDiet]
	}

	grams := func(pct, kcalPerGram int) string {
		g := math.Round(float64(p.Calories) * float64(pct) / 100 / float64(kcalPerGram))
		return fmt.Sprintf("%dg", int(g))
	}
	snacks := append([]string{}, d.Snacks...)

	return &NutritionPlan{
		Macronutrients: Macronutrients{
			Protein:       grams(d.ProteinPct, 4),
			Carbohydrates: grams(d.CarbsPct, 4),
			Fats:          grams(d.FatPct, 9),
		},
		MealPlan: MealPlan{
			Breakfast: d.Breakfast,
			Lunch:     d.Lunch,
			Dinner:    d.Dinner,
			Snacks:    snacks,
		},
		Notes: joinNotes(fmt.Sprintf("Daily target: %d kcal.", p.Calories), d.Notes),
	}, nil
}

func joinNotes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
