package dto

import (
	"github.com/google/uuid"

	"gradmatch/internal/domain/student"
)

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProfileResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Course            string          `json:"course"`
	PreferredJobType  string          `json:"preferred_job_type"`
	PreferredLocation string          `json:"preferred_location"`
	Skills            []SkillResponse `json:"skills"`
}

func FromProfile(p student.Profile) ProfileResponse {
	skills := make([]SkillResponse, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, SkillResponse{ID: s.ID, Name: s.Name})
	}

	return ProfileResponse{
		ID:                p.ID,
		Name:              p.Name,
		Course:            p.Course,
		PreferredJobType:  p.PreferredJobType,
		PreferredLocation: p.PreferredLocation,
		Skills:            skills,
	}
}

func FromSkills(skills []student.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name})
	}
	return out
}
