package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gideon"

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// 結果標籤
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeError        = "error"
	OutcomeCacheHit     = "cache_hit"
	OutcomeUnauthorized = "unauthorized"
	OutcomeConflict     = "conflict"
)

// Metrics 持有服務的 Prometheus 指標；nil 時所有方法皆為 no-op
type Metrics struct {
	registry        *prometheus.Registry
	planRequests    *prometheus.CounterVec
	authEvents      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New 建立獨立 registry，避免重複註冊到全域 DefaultRegisterer
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		planRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_requests_total",
			Help:      "Number of plan generation requests by kind and outcome",
		}, []string{"kind", "outcome"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Number of register/login attempts by outcome",
		}, []string{"event", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.planRequests,
		m.authEvents,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler 回傳 /metrics 的 http.Handler
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObservePlan(kind, outcome string) {
	if m == nil {
		return
	}
	m.planRequests.With(prometheus.Labels{"kind": kind, "outcome": outcome}).Inc()
}

func (m *Metrics) ObserveAuth(event, outcome string) {
	if m == nil {
		return
	}
	m.authEvents.With(prometheus.Labels{"event": event, "outcome": outcome}).Inc()
}

// Middleware 記錄每個路由的處理時間；route 取 echo 的路由樣板，不含實際參數
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !c.Response().Committed {
					status = http.StatusInternalServerError
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.requestDuration.With(prometheus.Labels{
				"method": c.Request().Method,
				"route":  route,
				"status": strconv.Itoa(status),
			}).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
