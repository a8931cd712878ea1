package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"actapi/internal/service"
)

// RegisterRoutes attaches the health and acta routes to app.
// db may be nil when the archive is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.ActaService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	actas := app.Group("/actas")
	actas.Post("/", GenerateActa(svc))
	actas.Post("/send", SendActa(svc))
	actas.Get("/", ListActas(svc))
	actas.Get("/:id", GetActa(svc))
	actas.Get("/:id/download", DownloadActa(svc))
	actas.Post("/:id/send", ResendActa(svc))
	actas.Delete("/:id", DeleteActa(svc))
}
