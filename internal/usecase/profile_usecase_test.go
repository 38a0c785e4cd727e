package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"gradmatch/internal/domain/student"
)

type mockSkillRepo struct {
	skills []student.Skill
	err    error
}

func (m *mockSkillRepo) ListSkills(context.Context) ([]student.Skill, error) {
	return m.skills, m.err
}

func TestProfileUsecase_UpdateProfile_InvalidJobType(t *testing.T) {
	profile := csProfile()
	uc := NewProfileUsecase(&mockProfileRepo{profile: profile}, &mockSkillRepo{}, &mockCache{})

	bad := "freelance"
	_, err := uc.UpdateProfile(context.Background(), profile.UserID, UpdateProfileInput{PreferredJobType: &bad})
	if err != ErrInvalidJobType {
		t.Fatalf("expected ErrInvalidJobType, got %v", err)
	}
}

func TestProfileUsecase_UpdateProfile_DropsCachedRecommendations(t *testing.T) {
	profile := csProfile()
	cache := &mockCache{}
	repo := &mockProfileRepo{profile: profile}
	uc := NewProfileUsecase(repo, &mockSkillRepo{}, cache)

	jt := "internship"
	_, err := uc.UpdateProfile(context.Background(), profile.UserID, UpdateProfileInput{PreferredJobType: &jt})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := "recommendations:" + profile.ID.String()
	if len(cache.deleted) != 1 || cache.deleted[0] != want {
		t.Fatalf("expected %q dropped, got %v", want, cache.deleted)
	}
	if len(repo.updates) != 1 || repo.updates[0].PreferredJobType == nil || *repo.updates[0].PreferredJobType != jt {
		t.Fatalf("update not forwarded: %+v", repo.updates)
	}
}

func TestProfileUsecase_ReplaceCV_RejectsBlankInstitution(t *testing.T) {
	profile := csProfile()
	uc := NewProfileUsecase(&mockProfileRepo{profile: profile}, &mockSkillRepo{}, &mockCache{})

	cv := student.CV{Education: []student.Education{{Institution: "   "}}}
	_, err := uc.ReplaceCV(context.Background(), profile.UserID, cv)
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileUsecase_ReplaceCV_RejectsBlankExperienceRole(t *testing.T) {
	profile := csProfile()
	uc := NewProfileUsecase(&mockProfileRepo{profile: profile}, &mockSkillRepo{}, &mockCache{})

	cv := student.CV{Experience: []student.Experience{{Company: "Acme", Role: ""}}}
	_, err := uc.ReplaceCV(context.Background(), profile.UserID, cv)
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileUsecase_ReplaceCV_RoundTrips(t *testing.T) {
	profile := csProfile()
	repo := &mockProfileRepo{profile: profile}
	uc := NewProfileUsecase(repo, &mockSkillRepo{}, &mockCache{})

	cv := student.CV{
		Summary:    "Final-year student",
		Education:  []student.Education{{Institution: "UCL", Degree: "BSc", Subject: "Computer Science"}},
		Experience: []student.Experience{{Company: "Acme", Role: "Intern"}},
	}

	got, err := uc.ReplaceCV(context.Background(), profile.UserID, cv)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Summary != cv.Summary || len(got.Education) != 1 || len(got.Experience) != 1 {
		t.Fatalf("unexpected CV back: %+v", got)
	}
}

func TestProfileUsecase_GetProfile_NilUser(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileRepo{}, &mockSkillRepo{}, &mockCache{})

	_, err := uc.GetProfile(context.Background(), uuid.Nil)
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
