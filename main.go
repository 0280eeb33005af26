package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"attendance_backend/internals/configs"
	database "attendance_backend/internals/databases"
	scheduler "attendance_backend/internals/features/users/auth/scheduler"
	helper "attendance_backend/internals/helpers"
	middlewares "attendance_backend/internals/middlewares"
	routes "attendance_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	app := fiber.New(fiber.Config{
		// 🚀 fast JSON
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.FromError,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, cfg.AllowOrigins(), cfg.RequestTimeout)

	// 🔌 DB connect + pool + schema + warm-up
	database.ConnectDB(cfg.DB)
	database.TunePool(database.DB, cfg.DB)
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ migrate: %v", err)
	}
	database.WarmUpQueries(database.DB)

	// ⏱ scheduler after DB is ready
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(database.DB, cfg.BlacklistCleanupSpec)
	if err != nil {
		log.Fatalf("❌ invalid TOKEN_BLACKLIST_CLEANUP_CRON %q: %v", cfg.BlacklistCleanupSpec, err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, cfg)

	// 🔒 Keep-Alive & connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, drain HTTP, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	<-cleanup.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(database.DB)
}
