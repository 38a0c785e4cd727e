package handler

import (
	"github.com/gofiber/fiber/v3"

	"gradmatch/internal/delivery/http/dto"
	"gradmatch/internal/delivery/http/middleware"
	"gradmatch/internal/pkg/courses"
	"gradmatch/internal/pkg/response"
	"gradmatch/internal/usecase"
)

// CatalogHandler serves the public lookup lists used by profile forms.
type CatalogHandler struct {
	uc usecase.ProfileUsecase
}

func NewCatalogHandler(uc usecase.ProfileUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.ListSkills)
	r.Get("/courses", h.ListCourses)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(skills))
}

func (h *CatalogHandler) ListCourses(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, courses.Names)
}
