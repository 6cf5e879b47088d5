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

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

type createResumeRequest struct {
	FileURL    string   `json:"file_url"`
	ParsedText string   `json:"parsed_text"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/resumes")
	grp.Post("", h.Create)
	grp.Get("", h.ListOwn)
}

func (h *ResumeHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, err := h.uc.CreateResume(c.Context(), userID, usecase.CreateResumeInput{
		FileURL:    req.FileURL,
		ParsedText: req.ParsedText,
		Skills:     req.Skills,
		Education:  req.Education,
		Experience: req.Experience,
	})
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewResumeResponse(rec))
}

func (h *ResumeHandler) ListOwn(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	records, err := h.uc.ListOwnResumes(c.Context(), userID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeListResponse(records))
}

func mapCommonUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
