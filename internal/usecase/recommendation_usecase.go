package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/domain/recommend"
	"gradmatch/internal/repository"

	"github.com/google/uuid"
)

// candidatePoolSize bounds how many cached jobs feed the engine; the
// engine applies its own tighter recency cap after pre-filtering.
const candidatePoolSize = 500

type RecommendationItem struct {
	Job     domjob.Job `json:"job"`
	Score   int        `json:"match_score"`
	Reasons []string   `json:"recommended_reason"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]RecommendationItem, error)
}

type Recommendation struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	saved    repository.SavedJobRepository
	cache    Cache
	logger   *log.Logger
}

func NewRecommendationUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	saved repository.SavedJobRepository,
	cache Cache,
	logger *log.Logger,
) *Recommendation {
	return &Recommendation{profiles: profiles, jobs: jobs, saved: saved, cache: cache, logger: logger}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]RecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	cacheKey := "recommendations:" + profile.ID.String()
	if u.cache != nil {
		var cached []RecommendationItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommendations] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	savedIDs, err := u.saved.ListJobIDs(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	savedSet := make(map[uuid.UUID]bool, len(savedIDs))
	for _, id := range savedIDs {
		savedSet[id] = true
	}

	jobs, err := u.jobs.ListRecent(ctx, candidatePoolSize)
	if err != nil {
		return nil, ErrInternal
	}

	skillNames := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skillNames = append(skillNames, s.Name)
	}

	scored := recommend.Recommend(recommend.StudentInput{
		Course:            profile.Course,
		PreferredJobType:  profile.PreferredJobType,
		PreferredLocation: profile.PreferredLocation,
		SkillNames:        skillNames,
	}, jobs, savedSet)

	out := make([]RecommendationItem, 0, len(scored))
	for _, s := range scored {
		out = append(out, RecommendationItem{Job: s.Job, Score: s.Score, Reasons: s.Reasons})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 5*time.Minute)
	}
	return out, nil
}
