package routes

import (
	"log"

	"intern-match/internal/config"
	"intern-match/internal/database"
	"intern-match/internal/delivery/http/handler"
	v1 "intern-match/internal/delivery/http/routes/v1"
	"intern-match/internal/infrastructure/ai"
	"intern-match/internal/infrastructure/cache"
	"intern-match/internal/usecase"
	"intern-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure every route group draws from.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	AI     ai.Client

	Hub      *ws.Hub
	Notifier usecase.JobNotifier

	Logger *log.Logger
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(d.DB, d.Cache)
	health.RegisterRoutes(app)

	if d.Hub != nil {
		wsHandler := ws.NewHandler(d.Hub, d.Logger)
		app.Get("/ws", wsHandler.HandleJobsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Config:   d.Config,
		DB:       d.DB,
		Cache:    d.Cache,
		AI:       d.AI,
		Notifier: d.Notifier,
		Logger:   d.Logger,
	})
}
