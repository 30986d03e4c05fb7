// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"task-management-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// RegisterRoutes attaches all API routes. Everything except register and
// login sits behind the bearer auth middleware.
func RegisterRoutes(app *fiber.App, h *Handler, auth fiber.Handler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)

	protected := app.Group("", auth)
	protected.Post("/logout", h.Logout)
	protected.Get("/me", h.Me)

	protected.Get("/teams", h.ListTeams)
	protected.Post("/teams", h.CreateTeam)
	protected.Get("/teams/:id", h.GetTeam)
	protected.Put("/teams/:id", h.UpdateTeam)
	protected.Delete("/teams/:id", h.DeleteTeam)

	protected.Get("/teams/:teamId/projects", h.ListProjects)
	protected.Post("/teams/:teamId/projects", h.CreateProject)

	protected.Get("/projects/:projectId/tasks", h.ListTasks)
	protected.Post("/projects/:projectId/tasks", h.CreateTask)
	protected.Put("/projects/:projectId/tasks/:taskId", h.UpdateTask)
	protected.Patch("/projects/:projectId/tasks/:taskId/status", h.UpdateTaskStatus)
}
