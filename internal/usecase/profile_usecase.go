package usecase

import (
	"context"
	"errors"
	"strings"

	"gradmatch/internal/domain/student"
	"gradmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidJobType = errors.New("invalid preferred job type")

type UpdateProfileInput struct {
	Name              *string
	Course            *string
	PreferredJobType  *string
	PreferredLocation *string
	SkillIDs          []uuid.UUID
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (student.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (student.Profile, error)
	GetCV(ctx context.Context, userID uuid.UUID) (student.CV, error)
	ReplaceCV(ctx context.Context, userID uuid.UUID, cv student.CV) (student.CV, error)
	ListSkills(ctx context.Context) ([]student.Skill, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	skills   repository.SkillRepository
	cache    Cache
}

func NewProfileUsecase(profiles repository.ProfileRepository, skills repository.SkillRepository, cache Cache) *Profile {
	return &Profile{profiles: profiles, skills: skills, cache: cache}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (student.Profile, error) {
	if userID == uuid.Nil {
		return student.Profile{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return student.Profile{}, ErrProfileNotFound
		}
		return student.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (student.Profile, error) {
	p, err := u.GetProfile(ctx, userID)
	if err != nil {
		return student.Profile{}, err
	}

	if in.PreferredJobType != nil {
		jt := strings.TrimSpace(*in.PreferredJobType)
		if !student.ValidJobType(jt) {
			return student.Profile{}, ErrInvalidJobType
		}
		in.PreferredJobType = &jt
	}

	err = u.profiles.Update(ctx, p.ID, repository.ProfileUpdate{
		Name:              in.Name,
		Course:            in.Course,
		PreferredJobType:  in.PreferredJobType,
		PreferredLocation: in.PreferredLocation,
		SkillIDs:          in.SkillIDs,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return student.Profile{}, ErrProfileNotFound
		}
		return student.Profile{}, ErrInternal
	}

	// matching inputs changed, cached ranking is stale
	if u.cache != nil {
		_ = u.cache.Delete(ctx, "recommendations:"+p.ID.String())
	}

	return u.GetProfile(ctx, userID)
}

func (u *Profile) GetCV(ctx context.Context, userID uuid.UUID) (student.CV, error) {
	p, err := u.GetProfile(ctx, userID)
	if err != nil {
		return student.CV{}, err
	}

	cv, err := u.profiles.GetCV(ctx, p.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return student.CV{}, ErrProfileNotFound
		}
		return student.CV{}, ErrInternal
	}
	return cv, nil
}

func (u *Profile) ReplaceCV(ctx context.Context, userID uuid.UUID, cv student.CV) (student.CV, error) {
	p, err := u.GetProfile(ctx, userID)
	if err != nil {
		return student.CV{}, err
	}

	for _, e := range cv.Education {
		if strings.TrimSpace(e.Institution) == "" {
			return student.CV{}, ErrInvalidInput
		}
	}
	for _, e := range cv.Experience {
		if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Role) == "" {
			return student.CV{}, ErrInvalidInput
		}
	}

	if err := u.profiles.ReplaceCV(ctx, p.ID, cv); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return student.CV{}, ErrProfileNotFound
		}
		return student.CV{}, ErrInternal
	}

	return u.GetCV(ctx, userID)
}

func (u *Profile) ListSkills(ctx context.Context) ([]student.Skill, error) {
	skills, err := u.skills.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return skills, nil
}
