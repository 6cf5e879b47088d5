package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"intern-match/internal/config"
	"intern-match/internal/database"
	"intern-match/internal/database/migration"
	dbpostgres "intern-match/internal/database/postgres"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/delivery/http/routes"
	"intern-match/internal/infrastructure/ai"
	"intern-match/internal/infrastructure/cache"
	"intern-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App

	db    database.DB
	cache *cache.Redis
}

// Bootstrap wires config, storage, cache, the AI client, the websocket hub
// and the HTTP surface. The returned cleanup closes long-lived connections.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	aiClient := ai.NewClient(cfg.AI.BaseURL, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessMw.Middleware())

	routes.Register(f, routes.Deps{
		Config:   cfg,
		DB:       db,
		Cache:    redisCache,
		AI:       aiClient,
		Hub:      hub,
		Notifier: ws.NewNotifier(hub),
		Logger:   logger,
	})

	app := &App{Fiber: f, db: db, cache: redisCache}

	cleanup := func() error {
		if app.cache != nil {
			_ = app.cache.Close()
		}
		if app.db != nil {
			return app.db.Close()
		}
		return nil
	}
	return app, cleanup, nil
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
