package handler

import (
	"errors"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

type upsertCompanyProfileRequest struct {
	CompanyName string  `json:"company_name"`
	LogoURL     *string `json:"logo_url"`
	Industry    string  `json:"industry"`
	Location    string  `json:"location"`
	Website     string  `json:"website"`
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// Upsert semantics; both verbs land on the same handler.
	r.Post("/profile", h.UpsertProfile)
	r.Put("/profile", h.UpsertProfile)
	r.Get("/profile", h.GetProfile)
}

func (h *CompanyHandler) UpsertProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req upsertCompanyProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profile, err := h.uc.UpsertProfile(c.Context(), userID, usecase.UpsertCompanyProfileInput{
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
	})
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyProfileResponse(profile))
}

func (h *CompanyHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profile, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Company profile not found", nil, err)
		}
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyProfileResponse(profile))
}
