package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/studyquest/internal/api"
	"github.com/terraincognita07/studyquest/internal/config"
	"github.com/terraincognita07/studyquest/internal/services"
	"github.com/terraincognita07/studyquest/internal/store"
)

func main() {
	// Optional .env for local development; env vars win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	stores := store.NewStores()
	if cfg.SeedDemoUsers {
		seedDemoUsers(stores)
	}

	handler := api.NewHandler(stores, cfg.SecretKey, location, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "StudyQuest",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	prometheus := fiberprometheus.New("studyquest")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("StudyQuest listening on http://0.0.0.0:%s (tz: %s, in-memory store)", cfg.Port, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// seedDemoUsers recreates the two demo accounts on every start; the store is
// empty after a restart anyway.
func seedDemoUsers(stores *store.Stores) {
	auth := services.NewAuthService(stores.Users)
	if _, err := auth.CreateUser("test", "test123", 5, 350, "cat"); err != nil {
		log.Printf("seed user test failed: %v", err)
	}
	if _, err := auth.CreateUser("admin", "debug123", 1, 0, "default_cat"); err != nil {
		log.Printf("seed user admin failed: %v", err)
	}
	log.Printf("seeded demo users: test/test123 (level 5), admin/debug123")
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
