// @title         advisor API
// @version       1.0
// @description   Помощник абитуриента магистратуры: разбор учебных планов, ответы на вопросы по программам и подбор выборных дисциплин.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/advisor/docs"

	// internal imports
	"github.com/artem13815/advisor/api/http"
	"github.com/artem13815/advisor/api/http/handlers"
	"github.com/artem13815/advisor/pkg/account"
	"github.com/artem13815/advisor/pkg/advisor"
	"github.com/artem13815/advisor/pkg/config"
	"github.com/artem13815/advisor/pkg/curriculum"
	"github.com/artem13815/advisor/pkg/faq"
	"github.com/artem13815/advisor/pkg/health"
	"github.com/artem13815/advisor/pkg/health/checkers"
	"github.com/artem13815/advisor/pkg/logging"
	"github.com/artem13815/advisor/pkg/profile"
	"github.com/artem13815/advisor/pkg/program"
	"github.com/artem13815/advisor/pkg/repository/memory"
	pgrepo "github.com/artem13815/advisor/pkg/repository/postgres"
	"github.com/artem13815/advisor/pkg/security/jwt"
	"github.com/artem13815/advisor/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel, "advisor")

	catalog, err := program.LoadFile(cfg.ProgramsFile)
	if err != nil {
		logger.Fatal("load programs", "file", cfg.ProgramsFile, "err", err)
	}
	logger.Info("programs loaded", "count", catalog.Len(), "file", cfg.ProgramsFile)
	if _, ok := catalog.FirstWithCurriculum(); !ok {
		logger.Warn("no program has a parsed curriculum; recommendations are unavailable")
	}

	regs, err := advisor.LoadRegistries(cfg.RegistryFile)
	if err != nil {
		logger.Fatal("load registries", "file", cfg.RegistryFile, "err", err)
	}

	// Repositories: PostgreSQL when configured, process memory otherwise.
	var (
		userRepo    account.UserRepository
		profileRepo profile.Repository
		readiness   = []health.Checker{checkers.NewProgramsChecker(catalog)}
	)
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		cancel()
		if err != nil {
			logger.Fatal("postgres connect", "err", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(pool, logger); err != nil {
			logger.Fatal("postgres migrate", "err", err)
		}
		userRepo = pgrepo.NewUserRepository(pool)
		profileRepo = pgrepo.NewProfileRepository(pool)
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
	} else {
		logger.Warn("DATABASE_URL is not set; accounts and profiles are kept in memory")
		userRepo = memory.NewUserRepository()
		profileRepo = memory.NewProfileRepository()
	}

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	accounts := account.NewService(userRepo, jwtGen, cfg.AdminEmails, logger)

	svc := advisor.NewService(advisor.Deps{
		Catalog:    catalog,
		Profiles:   profileRepo,
		Categories: regs.Categories,
		Archetypes: regs.Archetypes,
		Gate:       faq.DefaultGate(),
		Fetcher:    curriculum.NewFetcher(cfg.FetchTimeout, cfg.MaxUploadBytes()),
		Logger:     logger,
	})

	app := fiber.New(fiber.Config{
		AppName:     "advisor",
		BodyLimit:   int(cfg.MaxUploadBytes()) + 1<<20,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(http.RequestLogger(logger))

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	http.Register(app, http.Handlers{
		Auth:            handlers.NewAuthHandler(accounts),
		Health:          handlers.NewHealthHandler(health.NewService(readiness...)),
		Programs:        handlers.NewProgramsHandler(svc),
		FAQ:             handlers.NewFAQHandler(svc),
		Profile:         handlers.NewProfileHandler(svc),
		Recommendations: handlers.NewRecommendationsHandler(svc),
		Curriculum:      handlers.NewCurriculumHandler(svc, cfg.MaxUploadBytes()),
	}, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
	}
}
