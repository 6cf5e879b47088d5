package handler

import (
	"strconv"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/recommendations", h.GetRecommendations)
}

// GetRecommendations always answers 200 for an authenticated caller; empty
// terminal states carry guidance text instead of an error status.
func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 0)

	set, err := h.uc.GetRecommendations(c.Context(), userID, usecase.RecommendationParams{Limit: limit})
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationSetResponse(set))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
