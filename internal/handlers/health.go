package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homekeep/api/internal/cache"
	"github.com/homekeep/api/internal/database"
	"github.com/homekeep/api/internal/middleware"
)

const (
	// APIVersion is the current version of the API.
	APIVersion = "0.1.0"
	// healthCheckTimeout bounds the dependency pings in the readiness check.
	healthCheckTimeout = 2 * time.Second
)

// HealthHandler serves the liveness, readiness and info endpoints.
type HealthHandler struct {
	db        *database.Database
	names     *cache.HouseNames
	startTime time.Time
	env       string
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(db *database.Database, names *cache.HouseNames, env string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		names:     names,
		startTime: time.Now(),
		env:       env,
	}
}

// HealthResponse is the liveness check body.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse reports the state of each dependency.
type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// InfoResponse carries API metadata.
type InfoResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

// Health handles GET /health. It always returns 200 and checks nothing;
// orchestrators use it to see the process is alive.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// Ready handles GET /health/ready. Readiness requires the database; the
// cache state is reported but never blocks, since name lookups fall back to
// the database when Redis is down.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	cacheState := "disabled"
	if h.names != nil && h.names.Enabled() {
		cacheState = "connected"
		if err := h.names.Ping(ctx); err != nil {
			cacheState = "disconnected"
		}
	}

	if err := h.db.Ping(ctx); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Database health check failed", err, map[string]interface{}{
				"timeout": healthCheckTimeout.String(),
			})
		}

		c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:   "not_ready",
			Database: "disconnected",
			Cache:    cacheState,
		})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{
		Status:   "ready",
		Database: "connected",
		Cache:    cacheState,
	})
}

// Info handles GET /api/v1/info.
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(time.Since(h.startTime)),
	})
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
