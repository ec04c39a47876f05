package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/http/handlers"
	"github.com/spec-kit/studio-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Admin        *handlers.AdminHandler
	Contact      *handlers.ContactHandler
	Portfolio    *handlers.PortfolioHandler
	Jobs         *handlers.JobsHandler
	Applications *handlers.ApplicationsHandler
	Team         *handlers.TeamHandler
	Testimonials *handlers.TestimonialsHandler
	Clients      *handlers.ClientsHandler
	Auth         *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Public endpoints serve the website;
// everything behind the auth middleware is the admin surface.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)

	api := app.Group("/api/v1")
	admin := cfg.Auth.Handle

	api.Post("/admin/login", cfg.Admin.Login)
	api.Get("/admin/me", admin, cfg.Admin.Me)
	api.Get("/admin/dashboard", admin, cfg.Admin.Dashboard)

	api.Post("/contact", cfg.Contact.Submit)
	api.Get("/contact/stats", admin, cfg.Contact.Stats)
	api.Get("/contact", admin, cfg.Contact.List)
	api.Get("/contact/:id", admin, cfg.Contact.Get)
	api.Patch("/contact/:id/status", admin, cfg.Contact.UpdateStatus)
	api.Delete("/contact/:id", admin, cfg.Contact.Delete)

	api.Get("/portfolio/stats", admin, cfg.Portfolio.Stats)
	api.Get("/portfolio", cfg.Portfolio.List)
	api.Get("/portfolio/:idOrSlug", cfg.Portfolio.Get)
	api.Post("/portfolio/:id/view", cfg.Portfolio.IncrementViews)
	api.Post("/portfolio", admin, cfg.Portfolio.Create)
	api.Put("/portfolio/:id", admin, cfg.Portfolio.Update)
	api.Delete("/portfolio/:id", admin, cfg.Portfolio.Delete)

	api.Get("/jobs/all", admin, cfg.Jobs.ListAll)
	api.Get("/jobs", cfg.Jobs.List)
	api.Get("/jobs/:idOrSlug", cfg.Jobs.Get)
	api.Post("/jobs", admin, cfg.Jobs.Create)
	api.Put("/jobs/:id", admin, cfg.Jobs.Update)
	api.Patch("/jobs/:id/toggle", admin, cfg.Jobs.Toggle)
	api.Delete("/jobs/:id", admin, cfg.Jobs.Delete)

	api.Post("/applications", cfg.Applications.Submit)
	api.Get("/applications", admin, cfg.Applications.List)
	api.Get("/applications/:id", admin, cfg.Applications.Get)
	api.Patch("/applications/:id/status", admin, cfg.Applications.UpdateStatus)
	api.Delete("/applications/:id", admin, cfg.Applications.Delete)

	api.Get("/team/all", admin, cfg.Team.ListAll)
	api.Get("/team", cfg.Team.List)
	api.Post("/team", admin, cfg.Team.Create)
	api.Put("/team/:id", admin, cfg.Team.Update)
	api.Patch("/team/:id/toggle", admin, cfg.Team.Toggle)
	api.Patch("/team/:id/order", admin, cfg.Team.Reorder)
	api.Delete("/team/:id", admin, cfg.Team.Delete)

	api.Get("/testimonials/all", admin, cfg.Testimonials.ListAll)
	api.Get("/testimonials", cfg.Testimonials.List)
	api.Post("/testimonials", admin, cfg.Testimonials.Create)
	api.Put("/testimonials/:id", admin, cfg.Testimonials.Update)
	api.Patch("/testimonials/:id/approve", admin, cfg.Testimonials.ToggleApproved)
	api.Patch("/testimonials/:id/feature", admin, cfg.Testimonials.ToggleFeatured)
	api.Delete("/testimonials/:id", admin, cfg.Testimonials.Delete)

	api.Get("/clients/all", admin, cfg.Clients.ListAll)
	api.Get("/clients", cfg.Clients.List)
	api.Post("/clients", admin, cfg.Clients.Create)
	api.Put("/clients/:id", admin, cfg.Clients.Update)
	api.Patch("/clients/:id/toggle", admin, cfg.Clients.Toggle)
	api.Patch("/clients/:id/order", admin, cfg.Clients.Reorder)
	api.Delete("/clients/:id", admin, cfg.Clients.Delete)
}
