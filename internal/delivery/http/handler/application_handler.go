package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"gradmatch/internal/delivery/http/dto"
	"gradmatch/internal/delivery/http/middleware"
	"gradmatch/internal/delivery/http/validation"
	"gradmatch/internal/pkg/response"
	"gradmatch/internal/usecase"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type upsertApplicationRequest struct {
	JobID  uuid.UUID `json:"job_id" validate:"required"`
	Status string    `json:"status" validate:"omitempty,max=50"`
	Notes  string    `json:"notes"`
}

// Status is deliberately not restricted to the known set here; unknown
// values are ignored downstream instead of failing the request.
type updateApplicationRequest struct {
	Status *string `json:"status" validate:"omitempty,max=50"`
	Notes  *string `json:"notes"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/applications")
	grp.Get("/", h.List)
	grp.Post("/", h.Upsert)
	grp.Get("/:id", h.Get)
	grp.Patch("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListApplications(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicationsWithJobs(items))
}

func (h *ApplicationHandler) Upsert(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req upsertApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if ferrs := validation.Struct(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ferrs, nil)
	}

	tracker, created, err := h.uc.UpsertApplication(c.Context(), userID, usecase.UpsertApplicationInput{
		JobID:  req.JobID,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	if created {
		return response.Success(c, fiber.StatusCreated, "Application created", dto.FromApplication(tracker))
	}
	return response.Success(c, fiber.StatusOK, "Application updated", dto.FromApplication(tracker))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	tracker, err := h.uc.GetApplication(c.Context(), userID, id)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(tracker))
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if ferrs := validation.Struct(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ferrs, nil)
	}

	tracker, err := h.uc.UpdateApplication(c.Context(), userID, id, usecase.UpdateApplicationInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application updated", dto.FromApplication(tracker))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application id", nil, err)
	}

	if err := h.uc.DeleteApplication(c.Context(), userID, id); err != nil {
		return mapApplicationUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
