package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	domjob "gradmatch/internal/domain/job"
)

func TestSavedJobUsecase_Save_UnknownJob(t *testing.T) {
	profile := csProfile()
	uc := NewSavedJobUsecase(&mockProfileRepo{profile: profile}, &mockJobRepo{}, &mockSavedRepo{}, &mockCache{})

	_, err := uc.Save(context.Background(), profile.UserID, uuid.New())
	if err != ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSavedJobUsecase_Save_DropsCachedRecommendations(t *testing.T) {
	profile := csProfile()
	job := cachedJob("Graduate Analyst", "London", "graduate", "desc", 2)
	cache := &mockCache{}

	uc := NewSavedJobUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{recent: []domjob.Job{job}},
		&mockSavedRepo{created: true},
		cache,
	)

	created, err := uc.Save(context.Background(), profile.UserID, job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}

	want := "recommendations:" + profile.ID.String()
	if len(cache.deleted) != 1 || cache.deleted[0] != want {
		t.Fatalf("expected %q dropped, got %v", want, cache.deleted)
	}
}

func TestSavedJobUsecase_Save_AlreadySaved(t *testing.T) {
	profile := csProfile()
	job := cachedJob("Graduate Analyst", "London", "graduate", "desc", 2)

	uc := NewSavedJobUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{recent: []domjob.Job{job}},
		&mockSavedRepo{created: false},
		&mockCache{},
	)

	created, err := uc.Save(context.Background(), profile.UserID, job.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for an existing bookmark")
	}
}

func TestSavedJobUsecase_Unsave(t *testing.T) {
	profile := csProfile()
	job := cachedJob("Graduate Analyst", "London", "graduate", "desc", 2)
	cache := &mockCache{}

	uc := NewSavedJobUsecase(
		&mockProfileRepo{profile: profile},
		&mockJobRepo{recent: []domjob.Job{job}},
		&mockSavedRepo{},
		cache,
	)

	if err := uc.Unsave(context.Background(), profile.UserID, job.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.deleted) != 1 {
		t.Fatalf("expected cached recommendations dropped")
	}
}
