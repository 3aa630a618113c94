package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/backend/api/handler"
)

type Handlers struct {
	Auth       *apiHandler.AuthHandler
	Task       *apiHandler.TaskHandler
	Preference *apiHandler.PreferenceHandler
	Health     *apiHandler.HealthHandler
}

func New(handlers Handlers, requireUser func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)

	// Protected routes
	r.GET("/api/v1/tasks", requireUser(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", requireUser(handlers.Task.CreateTask))
	r.PUT("/api/v1/tasks/{id}", requireUser(handlers.Task.EditTask))
	r.POST("/api/v1/tasks/{id}/toggle", requireUser(handlers.Task.ToggleTask))
	r.DELETE("/api/v1/tasks/{id}", requireUser(handlers.Task.DeleteTask))

	r.GET("/api/v1/preferences", requireUser(handlers.Preference.GetPreferences))
	r.PUT("/api/v1/preferences", requireUser(handlers.Preference.UpdatePreferences))

	return r
}
