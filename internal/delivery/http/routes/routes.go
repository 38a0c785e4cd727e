package routes

import (
	"github.com/gofiber/fiber/v3"

	"gradmatch/internal/delivery/http/handler"
	"gradmatch/internal/delivery/http/middleware"
)

type Registry struct {
	AuthMw *middleware.AuthMiddleware

	Health         *handler.HealthHandler
	Auth           *handler.AuthHandler
	Profile        *handler.ProfileHandler
	Catalog        *handler.CatalogHandler
	Job            *handler.JobHandler
	SavedJob       *handler.SavedJobHandler
	Application    *handler.ApplicationHandler
	Recommendation *handler.RecommendationHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")

	users := api.Group("/users")
	r.Auth.RegisterRoutes(users)
	r.Catalog.RegisterRoutes(users)
	r.Profile.RegisterRoutes(users.Group("", r.AuthMw.Middleware()))

	jobs := api.Group("/jobs")
	r.Job.RegisterPublicRoutes(jobs)

	// Route order matters here: /saved, /refresh and /applications must
	// be mounted before the /:job_id toggles.
	jobsAuthed := jobs.Group("", r.AuthMw.Middleware())
	r.Job.RegisterRefreshRoute(jobsAuthed)
	r.Application.RegisterRoutes(jobsAuthed)
	r.Job.RegisterAdminRoutes(jobsAuthed.Group("", r.AuthMw.AdminOnly()))
	r.SavedJob.RegisterRoutes(jobsAuthed)

	recs := api.Group("/recommendations", r.AuthMw.Middleware())
	r.Recommendation.RegisterRoutes(recs)
}
