package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// readinessTimeout bounds the database probe
const readinessTimeout = 2 * time.Second

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthChecker probes a dependency
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db     HealthChecker
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler. db may be nil.
func NewHealthHandler(db HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// HandleHealth handles GET /healthz. Always 200 while the process serves.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleReadiness handles GET /readyz
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := make(map[string]string)
	status := "ready"
	httpStatus := http.StatusOK

	switch {
	case h.db == nil:
		checks["database"] = "not_initialized"
		status = "not_ready"
	default:
		if err := h.db.HealthCheck(ctx); err != nil {
			h.logger.Warn("database health check failed", zap.Error(err))
			checks["database"] = "unhealthy"
			status = "not_ready"
		} else {
			checks["database"] = "healthy"
		}
	}
	if status != "ready" {
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}
	if err := utils.WriteJSON(w, httpStatus, response); err != nil {
		h.logger.Error("failed to write readiness response", zap.Error(err))
	}
}
