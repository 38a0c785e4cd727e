package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"gradmatch/internal/delivery/http/middleware"
	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/repository"
	"gradmatch/internal/usecase"
)

type mockApplicationUsecase struct {
	tracker domjob.ApplicationTracker
	created bool
	err     error

	updates []usecase.UpdateApplicationInput
}

func (m *mockApplicationUsecase) ListApplications(context.Context, uuid.UUID) ([]repository.ApplicationWithJob, error) {
	return nil, m.err
}

func (m *mockApplicationUsecase) UpsertApplication(context.Context, uuid.UUID, usecase.UpsertApplicationInput) (domjob.ApplicationTracker, bool, error) {
	return m.tracker, m.created, m.err
}

func (m *mockApplicationUsecase) GetApplication(context.Context, uuid.UUID, uuid.UUID) (domjob.ApplicationTracker, error) {
	return m.tracker, m.err
}

func (m *mockApplicationUsecase) UpdateApplication(_ context.Context, _, _ uuid.UUID, in usecase.UpdateApplicationInput) (domjob.ApplicationTracker, error) {
	m.updates = append(m.updates, in)
	if m.err != nil {
		return domjob.ApplicationTracker{}, m.err
	}
	tr := m.tracker
	if in.Status != nil && domjob.ValidStatus(*in.Status) {
		tr.Status = *in.Status
	}
	return tr, nil
}

func (m *mockApplicationUsecase) DeleteApplication(context.Context, uuid.UUID, uuid.UUID) error {
	return m.err
}

func newApplicationTestApp(uc usecase.ApplicationUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, uuid.New())
		return c.Next()
	})
	NewApplicationHandler(uc).RegisterRoutes(app.Group("/api/jobs"))
	return app
}

func TestApplicationHandler_Update_UnknownStatusAcceptedAndIgnored(t *testing.T) {
	uc := &mockApplicationUsecase{
		tracker: domjob.ApplicationTracker{ID: uuid.New(), Status: domjob.StatusInterviewing, AppliedAt: time.Now()},
	}
	app := newApplicationTestApp(uc)

	body := `{"status":"ghosted","notes":"sent a follow up"}`
	req := httptest.NewRequest(fiber.MethodPatch, "/api/jobs/applications/"+uc.tracker.ID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unknown status must not fail the request, got %d", resp.StatusCode)
	}

	if len(uc.updates) != 1 {
		t.Fatalf("expected one update call, got %d", len(uc.updates))
	}
	got := uc.updates[0]
	if got.Status == nil || *got.Status != "ghosted" {
		t.Fatalf("raw status should reach the usecase, got %+v", got.Status)
	}
	if got.Notes == nil || *got.Notes != "sent a follow up" {
		t.Fatalf("notes should still be applied, got %+v", got.Notes)
	}

	var payload struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.Status != domjob.StatusInterviewing {
		t.Fatalf("stored status should be untouched, got %q", payload.Data.Status)
	}
}

func TestApplicationHandler_Update_OverlongStatusRejected(t *testing.T) {
	uc := &mockApplicationUsecase{tracker: domjob.ApplicationTracker{ID: uuid.New()}}
	app := newApplicationTestApp(uc)

	body := `{"status":"` + strings.Repeat("x", 51) + `"}`
	req := httptest.NewRequest(fiber.MethodPatch, "/api/jobs/applications/"+uc.tracker.ID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(uc.updates) != 0 {
		t.Fatalf("usecase should not be called, got %d calls", len(uc.updates))
	}
}

func TestApplicationHandler_Get(t *testing.T) {
	uc := &mockApplicationUsecase{
		tracker: domjob.ApplicationTracker{ID: uuid.New(), Status: domjob.StatusOffered},
	}
	app := newApplicationTestApp(uc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/jobs/applications/"+uc.tracker.ID.String(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			ID     uuid.UUID `json:"id"`
			Status string    `json:"status"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.ID != uc.tracker.ID || payload.Data.Status != domjob.StatusOffered {
		t.Fatalf("unexpected payload: %+v", payload.Data)
	}
}

func TestApplicationHandler_Get_InvalidID(t *testing.T) {
	app := newApplicationTestApp(&mockApplicationUsecase{})

	req := httptest.NewRequest(fiber.MethodGet, "/api/jobs/applications/not-a-uuid", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
