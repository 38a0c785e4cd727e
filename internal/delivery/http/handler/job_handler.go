package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"gradmatch/internal/delivery/http/dto"
	"gradmatch/internal/delivery/http/middleware"
	"gradmatch/internal/delivery/http/validation"
	"gradmatch/internal/infrastructure/adzuna"
	"gradmatch/internal/pkg/response"
	"gradmatch/internal/usecase"
)

type JobHandler struct {
	ingest usecase.IngestUsecase
	list   usecase.JobListUsecase
}

type fetchJobsRequest struct {
	Search         string `json:"search" validate:"omitempty,max=200"`
	Location       string `json:"location" validate:"omitempty,max=200"`
	ResultsPerPage int    `json:"results_per_page" validate:"omitempty,min=1,max=50"`
	Page           int    `json:"page" validate:"omitempty,min=1"`
}

type ingestResponse struct {
	SourceCount int               `json:"source_count"`
	Saved       int               `json:"saved"`
	Created     int               `json:"created"`
	Updated     int               `json:"updated"`
	Jobs        []dto.JobResponse `json:"jobs"`
	Hint        string            `json:"hint,omitempty"`
}

func NewJobHandler(ingest usecase.IngestUsecase, list usecase.JobListUsecase) *JobHandler {
	return &JobHandler{ingest: ingest, list: list}
}

// RegisterPublicRoutes mounts the unauthenticated job listing.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

// RegisterRefreshRoute mounts the authenticated fallback refresh.
func (h *JobHandler) RegisterRefreshRoute(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/refresh", h.Refresh)
}

// RegisterAdminRoutes mounts the admin-only single-query fetch.
func (h *JobHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/fetch", h.Fetch)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	jobs, err := h.list.ListJobs(c.Context(), usecase.JobListParams{Limit: limit, Offset: offset})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

func (h *JobHandler) Fetch(c fiber.Ctx) error {
	var req fetchJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if ferrs := validation.Struct(req); ferrs != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", ferrs, nil)
	}

	result, fetchErr, err := h.ingest.Fetch(c.Context(), usecase.IngestParams{
		Search:         req.Search,
		Location:       req.Location,
		ResultsPerPage: req.ResultsPerPage,
		Page:           req.Page,
	})
	if fetchErr != nil {
		return fetchErrorToAppError(fetchErr)
	}
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Jobs fetched successfully", toIngestResponse(result))
}

func (h *JobHandler) Refresh(c fiber.Ctx) error {
	var req fetchJobsRequest
	_ = c.Bind().Body(&req)

	result, fetchErr, err := h.ingest.Refresh(c.Context(), usecase.IngestParams{
		Search:   req.Search,
		Location: req.Location,
	})
	if fetchErr != nil {
		return fetchErrorToAppError(fetchErr)
	}
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Jobs refreshed successfully", toIngestResponse(result))
}

func toIngestResponse(result usecase.IngestResult) ingestResponse {
	return ingestResponse{
		SourceCount: result.SourceCount,
		Saved:       result.Saved,
		Created:     result.Created,
		Updated:     result.Updated,
		Jobs:        dto.FromJobs(result.Jobs),
		Hint:        result.Hint,
	}
}

// fetchErrorToAppError keeps upstream failures as 400s on our side; the
// payload carries enough detail to tell the three failure kinds apart.
func fetchErrorToAppError(fe *adzuna.FetchError) error {
	data := map[string]any{"kind": string(fe.Kind)}

	switch fe.Kind {
	case adzuna.ErrorKindConfig:
		if fe.Detail != "" {
			data["hint"] = fe.Detail
		}
		return middleware.NewAppError(fiber.StatusBadRequest, fe.Message, data, nil)
	case adzuna.ErrorKindHTTP:
		data["upstream_status"] = fe.StatusCode
		if fe.Detail != "" {
			data["detail"] = fe.Detail
		}
		return middleware.NewAppError(fiber.StatusBadRequest, fe.Message, data, nil)
	default:
		return middleware.NewAppError(fiber.StatusBadRequest, fe.Message, data, nil)
	}
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func mapJobUsecaseError(err error) error {
	switch err {
	case nil:
		return nil
	case usecase.ErrInvalidInput:
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case usecase.ErrJobNotFound:
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case usecase.ErrRefreshInProgress:
		return middleware.NewAppError(fiber.StatusConflict, "A refresh is already running", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
