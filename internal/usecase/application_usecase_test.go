package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/repository"
)

type upsertCall struct {
	Status string
	Notes  string
}

type mockApplicationRepo struct {
	items   []repository.ApplicationWithJob
	tracker domjob.ApplicationTracker
	created bool
	err     error

	upserts []upsertCall
	updates []UpdateApplicationInput
}

func (m *mockApplicationRepo) ListForProfile(context.Context, uuid.UUID) ([]repository.ApplicationWithJob, error) {
	return m.items, m.err
}

func (m *mockApplicationRepo) Upsert(_ context.Context, _, jobID uuid.UUID, status, notes string) (domjob.ApplicationTracker, bool, error) {
	m.upserts = append(m.upserts, upsertCall{Status: status, Notes: notes})
	if m.err != nil {
		return domjob.ApplicationTracker{}, false, m.err
	}
	tr := m.tracker
	tr.JobID = jobID
	tr.Status = status
	tr.Notes = notes
	return tr, m.created, nil
}

func (m *mockApplicationRepo) GetForProfile(context.Context, uuid.UUID, uuid.UUID) (domjob.ApplicationTracker, error) {
	return m.tracker, m.err
}

func (m *mockApplicationRepo) Update(_ context.Context, _, _ uuid.UUID, status, notes *string) (domjob.ApplicationTracker, error) {
	m.updates = append(m.updates, UpdateApplicationInput{Status: status, Notes: notes})
	if m.err != nil {
		return domjob.ApplicationTracker{}, m.err
	}
	tr := m.tracker
	if status != nil {
		tr.Status = *status
	}
	if notes != nil {
		tr.Notes = *notes
	}
	return tr, nil
}

func (m *mockApplicationRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return m.err
}

func TestApplicationUsecase_Upsert_UnknownStatusDowngraded(t *testing.T) {
	profile := csProfile()
	job := cachedJob("Graduate Analyst", "London", "graduate", "desc", 1)
	apps := &mockApplicationRepo{created: true, tracker: domjob.ApplicationTracker{ID: uuid.New(), AppliedAt: time.Now()}}

	uc := NewApplicationUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{recent: []domjob.Job{job}},
		apps,
	)

	tr, created, err := uc.UpsertApplication(context.Background(), profile.UserID, UpsertApplicationInput{
		JobID:  job.ID,
		Status: "ghosted",
		Notes:  "  spoke to recruiter  ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if tr.Status != domjob.StatusApplied {
		t.Fatalf("unknown status should fall back to applied, got %q", tr.Status)
	}
	if len(apps.upserts) != 1 || apps.upserts[0].Notes != "spoke to recruiter" {
		t.Fatalf("notes should be trimmed, got %+v", apps.upserts)
	}
}

func TestApplicationUsecase_Upsert_UnknownJob(t *testing.T) {
	profile := csProfile()
	uc := NewApplicationUsecase(&mockProfileRepo{profile: profile}, &mockJobRepo{}, &mockApplicationRepo{})

	_, _, err := uc.UpsertApplication(context.Background(), profile.UserID, UpsertApplicationInput{JobID: uuid.New()})
	if err != ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationUsecase_Get(t *testing.T) {
	profile := csProfile()
	apps := &mockApplicationRepo{tracker: domjob.ApplicationTracker{ID: uuid.New(), Status: domjob.StatusOffered}}

	uc := NewApplicationUsecase(&mockProfileRepo{profile: profile}, &mockJobRepo{}, apps)

	tr, err := uc.GetApplication(context.Background(), profile.UserID, apps.tracker.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tr.ID != apps.tracker.ID || tr.Status != domjob.StatusOffered {
		t.Fatalf("unexpected tracker: %+v", tr)
	}
}

func TestApplicationUsecase_Get_NotFound(t *testing.T) {
	profile := csProfile()
	uc := NewApplicationUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{},
		&mockApplicationRepo{err: repository.ErrApplicationNotFound},
	)

	_, err := uc.GetApplication(context.Background(), profile.UserID, uuid.New())
	if err != ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationUsecase_Update_UnknownStatusIgnored(t *testing.T) {
	profile := csProfile()
	apps := &mockApplicationRepo{tracker: domjob.ApplicationTracker{ID: uuid.New(), Status: domjob.StatusInterviewing}}

	uc := NewApplicationUsecase(&mockProfileRepo{profile: profile}, &mockJobRepo{}, apps)

	bogus := "ghosted"
	tr, err := uc.UpdateApplication(context.Background(), profile.UserID, apps.tracker.ID, UpdateApplicationInput{Status: &bogus})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tr.Status != domjob.StatusInterviewing {
		t.Fatalf("status should be untouched, got %q", tr.Status)
	}
	if len(apps.updates) != 1 || apps.updates[0].Status != nil {
		t.Fatalf("unknown status should reach the repo as nil")
	}
}

func TestApplicationUsecase_Update_NotFound(t *testing.T) {
	profile := csProfile()
	uc := NewApplicationUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{},
		&mockApplicationRepo{err: repository.ErrApplicationNotFound},
	)

	_, err := uc.UpdateApplication(context.Background(), profile.UserID, uuid.New(), UpdateApplicationInput{})
	if err != ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationUsecase_Delete_NotFound(t *testing.T) {
	profile := csProfile()
	uc := NewApplicationUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{},
		&mockApplicationRepo{err: repository.ErrApplicationNotFound},
	)

	err := uc.DeleteApplication(context.Background(), profile.UserID, uuid.New())
	if err != ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
