// File: internal/handler/plans/plans.go
package plans

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gideon/internal/cache"
	"gideon/internal/dto"
	"gideon/internal/metrics"

	"github.com/labstack/echo/v4"
)

const (
	msgMissingFields = "Missing required fields"
	msgInvalidBody   = "Invalid request body"
)

// Options 計畫產生 handler 共用的相依；Cache 為 nil 時不快取
type Options struct {
	Cache    cache.Cache
	CacheTTL time.Duration
	Metrics  *metrics.Metrics
	Log      *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Log == nil {
		return slog.Default()
	}
	return o.Log
}

func (o Options) badRequest(c echo.Context, kind, msg string) error {
	o.Metrics.ObservePlan(kind, metrics.OutcomeInvalid)
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msg})
}

// serve 先查快取，未命中才呼叫 generate；快取錯誤只記錄不影響回應
func (o Options) serve(c echo.Context, kind, key, failMsg string, generate func(context.Context) (any, error)) error {
	ctx := c.Request().Context()
	log := o.logger().With("kind", kind)

	if raw, ok, err := cache.GetBytes(ctx, o.Cache, key); err != nil {
		log.Warn("plan cache get failed", "key", key, "error", err)
	} else if ok {
		o.Metrics.ObservePlan(kind, metrics.OutcomeCacheHit)
		return c.JSON(http.StatusOK, dto.PlanResponse{Plan: raw})
	}

	plan, err := generate(ctx)
	if err != nil {
		log.Error("generate plan failed", "error", err)
		o.Metrics.ObservePlan(kind, metrics.OutcomeError)
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: failMsg})
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		log.Error("encode plan failed", "error", err)
		o.Metrics.ObservePlan(kind, metrics.OutcomeError)
		return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: failMsg})
	}

	if err := cache.SetBytes(ctx, o.Cache, key, raw, o.CacheTTL); err != nil {
		log.Warn("plan cache set failed", "key", key, "error", err)
	}
	o.Metrics.ObservePlan(kind, metrics.OutcomeSuccess)
	return c.JSON(http.StatusOK, dto.PlanResponse{Plan: raw})
}
