package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/seed"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Orchestrator         *seed.Orchestrator
	DefaultComprehensive bool
	JWTSecret            string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Superficie admin (requiere Bearer Token con rol owner o admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole("owner", "admin"))
	seedHandler := NewSeedHandler(deps.Orchestrator, deps.DefaultComprehensive)
	admin.Post("/seed", seedHandler.Run)
	admin.Get("/seed/status", seedHandler.Status)
}
