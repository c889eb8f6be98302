package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artem13815/advisor/api/http/handlers"
	"github.com/artem13815/advisor/pkg/security/jwt"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth            *handlers.AuthHandler
	Health          *handlers.HealthHandler
	Programs        *handlers.ProgramsHandler
	FAQ             *handlers.FAQHandler
	Profile         *handlers.ProfileHandler
	Recommendations *handlers.RecommendationsHandler
	Curriculum      *handlers.CurriculumHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	v1.Get("/programs", h.Programs.List)
	v1.Get("/programs/compare", authMW, h.Programs.Compare)

	v1.Post("/faq/ask", h.FAQ.Ask)

	v1.Get("/profile/examples", h.Profile.Examples)
	v1.Post("/profile/classify", h.Profile.Classify)
	v1.Get("/profile", authMW, h.Profile.Get)
	v1.Put("/profile", authMW, h.Profile.Update)

	v1.Get("/recommendations", authMW, h.Recommendations.Get)

	v1.Post("/curriculum/parse", authMW, jwt.RequireAdmin(), h.Curriculum.Parse)
}
