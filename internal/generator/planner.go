package generator

import (
	"context"

	"gideon/internal/worker"
)

// Planner 檢查模型狀態後，將產生計畫的呼叫交給 worker pool 執行
type Planner struct {
	workout   ModelState[WorkoutGenerator]
	nutrition ModelState[NutritionGenerator]
	pool      worker.Pool
}

// NewPlanner pool 為 nil 時直接在呼叫端 goroutine 執行
func NewPlanner(w ModelState[WorkoutGenerator], n ModelState[NutritionGenerator], pool worker.Pool) *Planner {
	return &Planner{workout: w, nutrition: n, pool: pool}
}

func (p *Planner) GenerateWorkout(ctx context.Context, params WorkoutParams) (*WorkoutPlan, error) {
	g, err := p.workout.Get()
	if err != nil {
		return nil, err
	}
	return run(ctx, p.pool, func(ctx context.Context) (*WorkoutPlan, error) {
		return g.GenerateWorkout(ctx, params)
	})
}

func (p *Planner) GenerateNutrition(ctx context.Context, params NutritionParams) (*NutritionPlan, error) {
	g, err := p.nutrition.Get()
	if err != nil {
		return nil, err
	}
	return run(ctx, p.pool, func(ctx context.Context) (*NutritionPlan, error) {
		return g.GenerateNutrition(ctx, params)
	})
}

func run[T any](ctx context.Context, pool worker.Pool, fn func(context.Context) (T, error)) (T, error) {
	if pool == nil {
		return fn(ctx)
	}
	return worker.Do(ctx, pool, fn)
}

// WorkoutCacheTag 回傳目前訓練模型的快取標籤；模型不可用時為空字串
func (p *Planner) WorkoutCacheTag() string {
	g, err := p.workout.Get()
	if err != nil {
		return ""
	}
	return cacheTag(g)
}

func (p *Planner) NutritionCacheTag() string {
	g, err := p.nutrition.Get()
	if err != nil {
		return ""
	}
	return cacheTag(g)
}

func cacheTag(g any) string {
	if t, ok := g.(interface{ CacheTag() string }); ok {
		return t.CacheTag()
	}
	return ""
}
