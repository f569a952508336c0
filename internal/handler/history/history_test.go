package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"gideon/internal/database"
	"gideon/internal/dto"
	"gideon/internal/logger"
	"gideon/internal/middleware"
	"gideon/internal/model"
	"gideon/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// sliceRows 依序回傳預先排好的資料列
type sliceRows struct {
	rows [][]any
	idx  int
}

func (r *sliceRows) Close()                                       {}
func (r *sliceRows) Err() error                                   { return nil }
func (r *sliceRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *sliceRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *sliceRows) Next() bool                                   { return r.idx < len(r.rows) }
func (r *sliceRows) Values() ([]any, error)                       { return nil, nil }
func (r *sliceRows) RawValues() [][]byte                          { return nil }
func (r *sliceRows) Conn() *pgx.Conn                              { return nil }
func (r *sliceRows) Scan(dest ...any) error {
	row := r.rows[r.idx]
	r.idx++
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		case *time.Time:
			*p = row[i].(time.Time)
		}
	}
	return nil
}

// workoutTable 模擬 workouts 資料表，Query 時依 created_at DESC, id DESC 排序並套用 LIMIT
func workoutTable(all []model.Workout, gotUser *int) *database.FakeDB {
	return &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		uid, limit := args[0].(int), args[1].(int)
		if gotUser != nil {
			*gotUser = uid
		}
		var mine []model.Workout
		for _, w := range all {
			if w.UserID == uid {
				mine = append(mine, w)
			}
		}
		sort.Slice(mine, func(i, j int) bool {
			if !mine[i].CreatedAt.Equal(mine[j].CreatedAt) {
				return mine[i].CreatedAt.After(mine[j].CreatedAt)
			}
			return mine[i].ID > mine[j].ID
		})
		if len(mine) > limit {
			mine = mine[:limit]
		}
		rows := &sliceRows{}
		for _, w := range mine {
			rows.rows = append(rows.rows, []any{w.ID, w.UserID, w.Goal, w.Level, w.DaysPerWeek, w.Plan, w.CreatedAt})
		}
		return rows, nil
	}}
}

func authed(t *testing.T, h echo.HandlerFunc, userID int) *httptest.ResponseRecorder {
	t.Helper()
	iss, err := service.NewTokenIssuer("s", time.Hour)
	require.NoError(t, err)
	tok, _, err := iss.IssueAccessToken(userID)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	rec := httptest.NewRecorder()
	require.NoError(t, middleware.RequireAuth(iss)(h)(e.NewContext(req, rec)))
	return rec
}

func TestWorkoutHistoryHandler(t *testing.T) {
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	var all []model.Workout
	for i := 1; i <= 8; i++ {
		all = append(all, model.Workout{ID: i, UserID: 1, Goal: "strength", Level: "beginner", DaysPerWeek: 3, Plan: "{}", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	// 同一時間建立，以 id 決定先後
	all = append(all, model.Workout{ID: 9, UserID: 1, Goal: "tie", Level: "beginner", DaysPerWeek: 3, Plan: "{}", CreatedAt: base.Add(8 * time.Hour)})
	all = append(all, model.Workout{ID: 20, UserID: 2, Goal: "other", Level: "x", DaysPerWeek: 1, Plan: "{}", CreatedAt: base.Add(100 * time.Hour)})

	var gotUser int
	rec := authed(t, WorkoutHistoryHandler(workoutTable(all, &gotUser), logger.Discard()), 1)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, gotUser)

	var items []dto.WorkoutHistoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 5)
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	require.Equal(t, []int{9, 8, 7, 6, 5}, ids)
	for i := 1; i < len(items); i++ {
		require.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}
	require.Contains(t, rec.Body.String(), `"created_at":"2025-05-01T16:00:00Z"`)
}

func TestWorkoutHistoryHandlerEmpty(t *testing.T) {
	rec := authed(t, WorkoutHistoryHandler(workoutTable(nil, nil), logger.Discard()), 3)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestWorkoutHistoryHandlerErrors(t *testing.T) {
	db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("relation does not exist")
	}}
	rec := authed(t, WorkoutHistoryHandler(db, logger.Discard()), 1)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to load workout history"}`, rec.Body.String())

	// 未經 RequireAuth
	e := echo.New()
	rec = httptest.NewRecorder()
	require.NoError(t, WorkoutHistoryHandler(db, logger.Discard())(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNutritionHistoryHandler(t *testing.T) {
	created := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)
	db := &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		require.Equal(t, 4, args[0])
		require.Equal(t, 5, args[1])
		return &sliceRows{rows: [][]any{
			{11, 4, "vegan", 1800, `{"notes":"b"}`, created.Add(time.Hour)},
			{10, 4, "keto", 2200, `{"notes":"a"}`, created},
		}}, nil
	}}
	rec := authed(t, NutritionHistoryHandler(db, logger.Discard()), 4)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[
		{"id":11,"diet_preference":"vegan","calorie_target":1800,"plan":"{\"notes\":\"b\"}","created_at":"2025-05-02T10:30:00Z"},
		{"id":10,"diet_preference":"keto","calorie_target":2200,"plan":"{\"notes\":\"a\"}","created_at":"2025-05-02T09:30:00Z"}
	]`, rec.Body.String())

	empty := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &sliceRows{}, nil
	}}
	rec = authed(t, NutritionHistoryHandler(empty, logger.Discard()), 4)
	require.JSONEq(t, `[]`, rec.Body.String())

	broken := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("down")
	}}
	rec = authed(t, NutritionHistoryHandler(broken, logger.Discard()), 4)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
