package dto

import (
	"github.com/google/uuid"

	"gradmatch/internal/domain/student"
)

type EducationResponse struct {
	ID          uuid.UUID `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Subject     string    `json:"subject"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description string    `json:"description"`
}

type ExperienceResponse struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description string    `json:"description"`
}

type CVResponse struct {
	Summary    string               `json:"summary"`
	Education  []EducationResponse  `json:"education"`
	Experience []ExperienceResponse `json:"experience"`
}

func FromCV(cv student.CV) CVResponse {
	edu := make([]EducationResponse, 0, len(cv.Education))
	for _, e := range cv.Education {
		edu = append(edu, EducationResponse{
			ID:          e.ID,
			Institution: e.Institution,
			Degree:      e.Degree,
			Subject:     e.Subject,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}

	exp := make([]ExperienceResponse, 0, len(cv.Experience))
	for _, e := range cv.Experience {
		exp = append(exp, ExperienceResponse{
			ID:          e.ID,
			Company:     e.Company,
			Role:        e.Role,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}

	return CVResponse{Summary: cv.Summary, Education: edu, Experience: exp}
}
