package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/goodwork-api/internal/application/auth"
	"github.com/jhoicas/goodwork-api/internal/application/job"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	JobUC     *job.JobUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Jobs: lectura pública, escritura detrás del gate de autenticación
	jobs := api.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	protected := AuthMiddleware(deps.JWTSecret)

	jobs.Get("/", jobHandler.List)
	jobs.Post("/", protected, jobHandler.Create)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", protected, jobHandler.Update)
	jobs.Delete("/:id", protected, jobHandler.Delete)
}
