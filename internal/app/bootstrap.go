package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"gradmatch/internal/config"
	"gradmatch/internal/delivery/http/handler"
	"gradmatch/internal/delivery/http/middleware"
	"gradmatch/internal/delivery/http/routes"
	"gradmatch/internal/pkg/jwt"
	"gradmatch/internal/repository"
	"gradmatch/internal/usecase"
	ucauth "gradmatch/internal/usecase/auth"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	jwtSvc := jwt.NewHMACService(
		c.Config.JWT.AccessSecret,
		c.Config.JWT.RefreshSecret,
		c.Config.JWT.AccessExpiresIn,
		c.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(c.DB)
	profileRepo := repository.NewPostgresProfileRepository(c.DB)
	skillRepo := repository.NewPostgresSkillRepository(c.DB)
	jobRepo := repository.NewPostgresJobRepository(c.DB)
	savedRepo := repository.NewPostgresSavedJobRepository(c.DB)
	appRepo := repository.NewPostgresApplicationRepository(c.DB)

	authSvc := ucauth.NewService(userRepo, profileRepo)
	authUC := usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, skillRepo, c.Cache)
	ingestUC := usecase.NewIngestUsecase(c.Adzuna, jobRepo, c.Cache, c.Logger)
	jobListUC := usecase.NewJobListUsecase(jobRepo, c.Cache, c.Logger)
	savedUC := usecase.NewSavedJobUsecase(profileRepo, jobRepo, savedRepo, c.Cache)
	applicationUC := usecase.NewApplicationUsecase(profileRepo, jobRepo, appRepo)
	recommendUC := usecase.NewRecommendationUsecase(profileRepo, jobRepo, savedRepo, c.Cache, c.Logger)

	registry := &routes.Registry{
		AuthMw: authMw,

		Health:         handler.NewHealthHandler(c.DB, c.Cache),
		Auth:           handler.NewAuthHandler(authUC),
		Profile:        handler.NewProfileHandler(profileUC),
		Catalog:        handler.NewCatalogHandler(profileUC),
		Job:            handler.NewJobHandler(ingestUC, jobListUC),
		SavedJob:       handler.NewSavedJobHandler(savedUC),
		Application:    handler.NewApplicationHandler(applicationUC),
		Recommendation: handler.NewRecommendationHandler(recommendUC),
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	a := New(c)
	return a, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
