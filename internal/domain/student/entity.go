package student

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeInternship = "internship"
	JobTypePartTime   = "part_time"
	JobTypeGraduate   = "graduate"
	JobTypeFullTime   = "full_time"
)

// ValidJobType reports whether t is one of the preferred job type choices.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeInternship, JobTypePartTime, JobTypeGraduate, JobTypeFullTime:
		return true
	}
	return false
}

type Profile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Course            string
	PreferredJobType  string
	PreferredLocation string
	CVSummary         string
	Skills            []Skill
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Skill struct {
	ID   uuid.UUID
	Name string
}

// Education is a CV entry. Dates are free-text ("Sept 2020") on purpose.
type Education struct {
	ID          uuid.UUID
	Institution string
	Degree      string
	Subject     string
	StartDate   string
	EndDate     string
	Description string
	Position    int
}

type Experience struct {
	ID          uuid.UUID
	Company     string
	Role        string
	StartDate   string
	EndDate     string
	Description string
	Position    int
}

// CV is the full curriculum payload; writes replace education and
// experience wholesale rather than patching entries.
type CV struct {
	Summary    string
	Education  []Education
	Experience []Experience
}
