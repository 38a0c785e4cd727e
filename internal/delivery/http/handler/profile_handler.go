package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"gradmatch/internal/delivery/http/dto"
	"gradmatch/internal/delivery/http/middleware"
	"gradmatch/internal/delivery/http/validation"
	"gradmatch/internal/domain/student"
	"gradmatch/internal/pkg/response"
	"gradmatch/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Name              *string     `json:"name" validate:"omitempty,max=200"`
	Course            *string     `json:"course" validate:"omitempty,max=200"`
	PreferredJobType  *string     `json:"preferred_job_type" validate:"omitempty,oneof=internship part_time graduate full_time"`
	PreferredLocation *string     `json:"preferred_location" validate:"omitempty,max=200"`
	SkillIDs          []uuid.UUID `json:"skill_ids"`
}

type educationEntry struct {
	Institution string `json:"institution" validate:"required,max=255"`
	Degree      string `json:"degree" validate:"omitempty,max=255"`
	Subject     string `json:"subject" validate:"omitempty,max=255"`
	StartDate   string `json:"start_date" validate:"omitempty,max=50"`
	EndDate     string `json:"end_date" validate:"omitempty,max=50"`
	Description string `json:"description"`
}

type experienceEntry struct {
	Company     string `json:"company" validate:"required,max=255"`
	Role        string `json:"role" validate:"required,max=255"`
	StartDate   string `json:"start_date" validate:"omitempty,max=50"`
	EndDate     string `json:"end_date" validate:"omitempty,max=50"`
	Description string `json:"description"`
}

type updateCVRequest struct {
	Summary    string            `json:"summary"`
	Education  []educationEntry  `json:"education" validate:"dive"`
	Experience []experienceEntry `json:"experience" validate:"dive"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// RegisterRoutes mounts the authenticated /me endpoints.
func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetProfile)
	r.Put("/me", h.UpdateProfile)
	r.Get("/me/cv", h.GetCV)
	r.Put("/me/cv", h.UpdateCV)
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profile, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(profile))
}

func (h *ProfileHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if ferrs := validation.Struct(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ferrs, nil)
	}

	profile, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Name:              req.Name,
		Course:            req.Course,
		PreferredJobType:  req.PreferredJobType,
		PreferredLocation: req.PreferredLocation,
		SkillIDs:          req.SkillIDs,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", dto.FromProfile(profile))
}

func (h *ProfileHandler) GetCV(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	cv, err := h.uc.GetCV(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCV(cv))
}

func (h *ProfileHandler) UpdateCV(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateCVRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if ferrs := validation.Struct(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ferrs, nil)
	}

	cv, err := h.uc.ReplaceCV(c.Context(), userID, toDomainCV(req))
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "CV updated successfully", dto.FromCV(cv))
}

func toDomainCV(req updateCVRequest) student.CV {
	edu := make([]student.Education, 0, len(req.Education))
	for i, e := range req.Education {
		edu = append(edu, student.Education{
			Institution: e.Institution,
			Degree:      e.Degree,
			Subject:     e.Subject,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
			Position:    i,
		})
	}

	exp := make([]student.Experience, 0, len(req.Experience))
	for i, e := range req.Experience {
		exp = append(exp, student.Experience{
			Company:     e.Company,
			Role:        e.Role,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
			Position:    i,
		})
	}

	return student.CV{Summary: req.Summary, Education: edu, Experience: exp}
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidJobType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid preferred job type", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
