package handler

import (
	"context"
	"time"

	"intern-match/internal/database"
	"intern-match/internal/infrastructure/cache"
	"intern-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, redisCache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: redisCache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health reports degraded dependencies without failing the check; the
// service keeps serving keyword recommendations when redis is down.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "not_configured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "unreachable"
	}

	cacheStatus := "ok"
	if h.cache == nil {
		cacheStatus = "not_configured"
	} else if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unreachable" {
		status = fiber.StatusServiceUnavailable
	}

	data := map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	return response.Success(c, status, response.MessageOK, data)
}
