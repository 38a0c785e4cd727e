// Package courses holds the course/degree names offered during sign-up
// and profile editing.
package courses

// Names is the static course list served by GET /api/users/courses.
var Names = []string{
	"Accounting and Finance",
	"Biomedical Science",
	"Business Management",
	"Computer Science",
	"Cyber Security",
	"Data Science",
	"Economics",
	"Electrical Engineering",
	"Graphic Design",
	"Law",
	"Marketing",
	"Mathematics",
	"Mechanical Engineering",
	"Nursing",
	"Psychology",
	"Software Engineering",
}
