package handler

import (
	"context"
	"time"

	"studybyte/internal/domain"
	"studybyte/internal/dto"
	"studybyte/internal/middleware"
	"studybyte/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Dependency states reported by /api/status
const (
	StateDisabled = "disabled"
	StateUp       = "up"
	StateDown     = "down"
)

type StatusHandler struct {
	analysis  service.AnalysisService
	materials service.MaterialService
	cache     domain.Cache
	logger    *zap.Logger
}

// NewStatusHandler creates the status handler. cache is nil when Redis is not configured.
func NewStatusHandler(analysis service.AnalysisService, materials service.MaterialService, cache domain.Cache, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		analysis:  analysis,
		materials: materials,
		cache:     cache,
		logger:    logger,
	}
}

// GetStatus godoc
// @Summary Service status
// @Description Reports which optional collaborators are configured and pings the cache and the database
// @Tags status
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /status [get]
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	resp := dto.StatusResponse{
		Status:          "ok",
		AIConfigured:    h.analysis.AIEnabled(),
		CacheEnabled:    h.cache != nil,
		DatabaseEnabled: h.materials.StoreEnabled(),
		Cache:           StateDisabled,
		Database:        StateDisabled,
	}

	if resp.CacheEnabled {
		resp.Cache = h.ping(c, "cache", func() error { return h.cache.Ping(ctx) })
	}
	if resp.DatabaseEnabled {
		resp.Database = h.ping(c, "database", func() error { return h.materials.Ping(ctx) })
	}
	if resp.Cache == StateDown || resp.Database == StateDown {
		resp.Status = "degraded"
	}
	return c.JSON(resp)
}

func (h *StatusHandler) ping(c *fiber.Ctx, name string, fn func() error) string {
	if err := fn(); err != nil {
		h.logger.Warn("Health check failed",
			zap.String("dependency", name),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err))
		return StateDown
	}
	return StateUp
}
