// record 為既有使用者產生一份計畫並寫入歷史紀錄
//
//	record -email alice@example.com -kind workout -goal strength -level beginner -days 3
//	record -email alice@example.com -kind nutrition -diet vegan -calories 2000
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gideon/internal/config"
	"gideon/internal/database"
	"gideon/internal/generator"
	"gideon/internal/logger"
	"gideon/internal/model"
	"gideon/internal/store"
)

const (
	kindWorkout   = "workout"
	kindNutrition = "nutrition"

	// 與 /api 端點的 400 訊息相同
	msgDaysRange     = "Days must be between 1 and 7"
	msgCaloriesRange = "Calories must be between 1000 and 5000"
)

type rangeError string

func (e rangeError) Error() string { return string(e) }

var (
	loadConfig          = config.Load
	newLogger           = logger.New
	newPgxPool          = database.NewPgxPool
	getUserByEmail      = store.GetUserByEmail
	createWorkout       = store.CreateWorkout
	createNutritionPlan = store.CreateNutritionPlan
	exitFunc            = os.Exit
)

type options struct {
	email    string
	kind     string
	goal     string
	level    string
	days     int
	diet     string
	calories int
	timeout  time.Duration
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.email, "email", "", "user email")
	fs.StringVar(&o.kind, "kind", kindWorkout, "plan kind (workout|nutrition)")
	fs.StringVar(&o.goal, "goal", "", "workout goal")
	fs.StringVar(&o.level, "level", "", "fitness level")
	fs.IntVar(&o.days, "days", 0, "training days per week (1-7)")
	fs.StringVar(&o.diet, "diet", "", "diet preference")
	fs.IntVar(&o.calories, "calories", 0, "daily calorie target")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "command timeout")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	o.email = strings.ToLower(strings.TrimSpace(o.email))
	o.kind = strings.ToLower(strings.TrimSpace(o.kind))
	if o.email == "" {
		return options{}, errors.New("-email is required")
	}
	switch o.kind {
	case kindWorkout:
		if o.goal == "" || o.level == "" || o.days == 0 {
			return options{}, errors.New("workout requires -goal, -level and -days")
		}
		if o.days < 1 || o.days > 7 {
			return options{}, rangeError(msgDaysRange)
		}
	case kindNutrition:
		if o.diet == "" || o.calories == 0 {
			return options{}, errors.New("nutrition requires -diet and -calories")
		}
		if o.calories < 1000 || o.calories > 5000 {
			return options{}, rangeError(msgCaloriesRange)
		}
	default:
		return options{}, fmt.Errorf("unsupported kind %q", o.kind)
	}
	return o, nil
}

func run(args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	log := newLogger("record", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	user, err := getUserByEmail(ctx, db, o.email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("user %s not found", o.email)
		}
		return err
	}

	workoutState, nutritionState := generator.States(log, generator.Source{
		Backend:       cfg.GeneratorBackend,
		WorkoutPath:   cfg.WorkoutModelPath,
		NutritionPath: cfg.NutritionModelPath,
		APIKey:        cfg.OpenAIKey,
		BaseURL:       cfg.OpenAIBaseURL,
		Model:         cfg.OpenAIModel,
		Fallback:      cfg.ModelFallback,
	})
	planner := generator.NewPlanner(workoutState, nutritionState, nil)

	switch o.kind {
	case kindWorkout:
		plan, err := planner.GenerateWorkout(ctx, generator.WorkoutParams{Goal: o.goal, Level: o.level, Days: o.days})
		if err != nil {
			return fmt.Errorf("generate workout: %w", err)
		}
		raw, err := json.Marshal(plan)
		if err != nil {
			return err
		}
		w, err := createWorkout(ctx, db, &model.Workout{
			UserID:      user.ID,
			Goal:        o.goal,
			Level:       o.level,
			DaysPerWeek: o.days,
			Plan:        string(raw),
		})
		if err != nil {
			return err
		}
		log.Info("workout recorded", "id", w.ID, "user_id", user.ID)
		fmt.Fprintf(out, "workout %d recorded for %s\n%s\n", w.ID, o.email, raw)

	case kindNutrition:
		plan, err := planner.GenerateNutrition(ctx, generator.NutritionParams{Diet: o.diet, Calories: o.calories})
		if err != nil {
			return fmt.Errorf("generate nutrition: %w", err)
		}
		raw, err := json.Marshal(plan)
		if err != nil {
			return err
		}
		p, err := createNutritionPlan(ctx, db, &model.NutritionPlan{
			UserID:         user.ID,
			DietPreference: o.diet,
			CalorieTarget:  o.calories,
			Plan:           string(raw),
		})
		if err != nil {
			return err
		}
		log.Info("nutrition plan recorded", "id", p.ID, "user_id", user.ID)
		fmt.Fprintf(out, "nutrition plan %d recorded for %s\n%s\n", p.ID, o.email, raw)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
