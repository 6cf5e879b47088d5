package handler

import (
	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Role           string `json:"role"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	Location       string `json:"location"`
	WorkMode       string `json:"work_mode"`
	JobType        string `json:"job_type"`
	DurationMonths int    `json:"duration_months"`

	StipendAmount   *float64 `json:"stipend_amount"`
	StipendCurrency *string  `json:"stipend_currency"`
	StipendType     *string  `json:"stipend_type"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes mounts the company-only posting surface. The caller wraps
// the group with the company role guard.
func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("", h.Create)
	r.Get("", h.ListOwn)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	companyID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	posting, err := h.uc.CreateJob(c.Context(), companyID, usecase.CreateJobInput{
		Role:            req.Role,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		WorkMode:        req.WorkMode,
		JobType:         req.JobType,
		DurationMonths:  req.DurationMonths,
		StipendAmount:   req.StipendAmount,
		StipendCurrency: req.StipendCurrency,
		StipendType:     req.StipendType,
	})
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(posting))
}

func (h *JobHandler) ListOwn(c fiber.Ctx) error {
	companyID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	postings, err := h.uc.ListOwnJobs(c.Context(), companyID)
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(postings))
}
