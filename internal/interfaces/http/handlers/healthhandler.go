package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamtrack/internal/shared/logger"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db      *gorm.DB
	version string
	started time.Time
	logger  logger.Interface
}

func NewHealthHandler(db *gorm.DB, version string, log logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
		started: time.Now().UTC(),
		logger:  log,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// DetailedHealth handles GET /health/detailed and includes a database
// round trip.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	dbStatus := "ok"
	status := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Errorw("database health check failed", "error", err)
		dbStatus = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":  dbStatus,
		"version": h.version,
		"uptime":  time.Since(h.started).String(),
		"checks": gin.H{
			"database": dbStatus,
		},
	})
}
