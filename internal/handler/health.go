package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// Readiness thresholds. The probe trips when failed rows pile up, when
// runnable work sits unclaimed past the dispatch cadence, or when a lock
// outlives its TTL plus the maintenance grace.
const (
	readyFailedMax      = 50
	readyOldestReadyMax = 120 * time.Second
	readyInflightGrace  = 30 * time.Second
)

// HealthHandler serves the liveness and readiness probes. Liveness only
// proves the process is up; readiness additionally inspects the outbox,
// which doubles as the database reachability check.
type HealthHandler struct {
	store   db.Querier
	lockTTL time.Duration
	log     *zap.Logger
}

func NewHealthHandler(store db.Querier, lockTTL time.Duration, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, lockTTL: lockTTL, log: logger}
}

func (h *HealthHandler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Live)
	e.GET("/readyz", h.Ready)
}

func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type outboxHealth struct {
	Ready                 int64   `json:"ready"`
	Inflight              int64   `json:"inflight"`
	Failed                int64   `json:"failed"`
	OldestReadySeconds    float64 `json:"oldest_ready_seconds"`
	OldestInflightSeconds float64 `json:"oldest_inflight_seconds"`
}

type readiness struct {
	Status  string       `json:"status"`
	Reasons []string     `json:"reasons,omitempty"`
	Outbox  outboxHealth `json:"outbox"`
}

func (h *HealthHandler) Ready(c echo.Context) error {
	stats, err := h.store.GetOutboxStats(c.Request().Context(), h.lockTTL.Seconds())
	if err != nil {
		h.log.Warn("readiness query failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, readiness{
			Status:  "unavailable",
			Reasons: []string{"database unreachable"},
		})
	}

	var reasons []string
	if stats.FailedCount >= readyFailedMax {
		reasons = append(reasons, "too many failed outbox events")
	}
	if stats.OldestReadySeconds > readyOldestReadyMax.Seconds() {
		reasons = append(reasons, "outbox backlog is not draining")
	}
	if stats.OldestInflightSeconds > (h.lockTTL + readyInflightGrace).Seconds() {
		reasons = append(reasons, "outbox lock held past its ttl")
	}

	body := readiness{
		Status: "ok",
		Outbox: outboxHealth{
			Ready:                 stats.ReadyCount,
			Inflight:              stats.InflightCount,
			Failed:                stats.FailedCount,
			OldestReadySeconds:    stats.OldestReadySeconds,
			OldestInflightSeconds: stats.OldestInflightSeconds,
		},
	}
	if len(reasons) > 0 {
		body.Status = "unavailable"
		body.Reasons = reasons
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	return c.JSON(http.StatusOK, body)
}
