package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/domain/student"
	"gradmatch/internal/repository"
)

type mockProfileRepo struct {
	profile student.Profile
	cv      student.CV
	err     error

	updates []repository.ProfileUpdate
}

func (m *mockProfileRepo) EnsureProfile(context.Context, uuid.UUID) (uuid.UUID, error) {
	return m.profile.ID, m.err
}
func (m *mockProfileRepo) GetByUserID(context.Context, uuid.UUID) (student.Profile, error) {
	return m.profile, m.err
}
func (m *mockProfileRepo) Update(_ context.Context, _ uuid.UUID, upd repository.ProfileUpdate) error {
	m.updates = append(m.updates, upd)
	return m.err
}
func (m *mockProfileRepo) GetCV(context.Context, uuid.UUID) (student.CV, error) {
	return m.cv, m.err
}
func (m *mockProfileRepo) ReplaceCV(_ context.Context, _ uuid.UUID, cv student.CV) error {
	m.cv = cv
	return m.err
}

type mockSavedRepo struct {
	savedIDs []uuid.UUID
	created  bool
	err      error
}

func (m *mockSavedRepo) ListJobsForProfile(context.Context, uuid.UUID) ([]domjob.Job, error) {
	return nil, m.err
}
func (m *mockSavedRepo) ListJobIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.savedIDs, m.err
}
func (m *mockSavedRepo) Save(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.created, m.err
}
func (m *mockSavedRepo) Unsave(context.Context, uuid.UUID, uuid.UUID) error { return m.err }

func csProfile() student.Profile {
	return student.Profile{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		Course:            "Computer Science",
		PreferredJobType:  "graduate",
		PreferredLocation: "London",
		Skills:            []student.Skill{{ID: uuid.New(), Name: "Python"}},
	}
}

func cachedJob(title, location, jobType, description string, postedDaysAgo int) domjob.Job {
	posted := time.Now().UTC().AddDate(0, 0, -postedDaysAgo)
	day := time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC)
	return domjob.Job{
		ID:          uuid.New(),
		Source:      "adzuna",
		ExternalID:  uuid.NewString(),
		Title:       title,
		Location:    location,
		JobType:     jobType,
		Description: description,
		PostedDate:  &day,
		CachedAt:    time.Now().UTC(),
	}
}

func TestRecommendationUsecase_RanksMatchingJobs(t *testing.T) {
	profile := csProfile()

	match := cachedJob("Graduate Software Engineer", "London", "graduate", "Python role for computer science grads", 1)
	miss := cachedJob("Nurse", "Glasgow", "full_time", "Ward duties", 1)

	uc := NewRecommendationUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{recent: []domjob.Job{match, miss}},
		&mockSavedRepo{},
		&mockCache{},
		nil,
	)

	items, err := uc.GetRecommendations(context.Background(), profile.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(items))
	}
	if items[0].Job.ID != match.ID {
		t.Fatalf("wrong job recommended")
	}
	if items[0].Score <= 0 {
		t.Fatalf("expected positive score, got %d", items[0].Score)
	}
	if len(items[0].Reasons) == 0 {
		t.Fatalf("expected reasons")
	}
}

func TestRecommendationUsecase_ExcludesSavedJobs(t *testing.T) {
	profile := csProfile()
	match := cachedJob("Graduate Software Engineer", "London", "graduate", "Python", 1)

	uc := NewRecommendationUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{recent: []domjob.Job{match}},
		&mockSavedRepo{savedIDs: []uuid.UUID{match.ID}},
		&mockCache{},
		nil,
	)

	items, err := uc.GetRecommendations(context.Background(), profile.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("saved job should be excluded, got %d items", len(items))
	}
}

func TestRecommendationUsecase_ProfileNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(
		&mockProfileRepo{err: repository.ErrProfileNotFound},
		&mockJobRepo{},
		&mockSavedRepo{},
		&mockCache{},
		nil,
	)

	_, err := uc.GetRecommendations(context.Background(), uuid.New())
	if err != ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestRecommendationUsecase_NilUserRejected(t *testing.T) {
	uc := NewRecommendationUsecase(&mockProfileRepo{}, &mockJobRepo{}, &mockSavedRepo{}, &mockCache{}, nil)

	_, err := uc.GetRecommendations(context.Background(), uuid.Nil)
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
