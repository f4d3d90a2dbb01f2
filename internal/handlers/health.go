package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and the state of its
// dependencies.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Check godoc
// @Summary Health check
// @Description Reports whether the database and session store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	result := gin.H{"status": "healthy", "database": "up", "redis": "up"}

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		result["status"] = "degraded"
		result["database"] = "down"
		status = http.StatusServiceUnavailable
	}
	if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
		result["status"] = "degraded"
		result["redis"] = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, result)
}
