package dto

import "gradmatch/internal/usecase"

type RecommendationResponse struct {
	Job               JobResponse `json:"job"`
	MatchScore        int         `json:"match_score"`
	RecommendedReason []string    `json:"recommended_reason"`
}

func FromRecommendations(items []usecase.RecommendationItem) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		reasons := it.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		out = append(out, RecommendationResponse{
			Job:               FromJob(it.Job),
			MatchScore:        it.Score,
			RecommendedReason: reasons,
		})
	}
	return out
}
