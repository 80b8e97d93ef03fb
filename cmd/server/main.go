package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"blog-service/internal/application/services"
	"blog-service/internal/config"
	httpdelivery "blog-service/internal/delivery/http"
	"blog-service/internal/infrastructure/db/postgres"
	"blog-service/internal/infrastructure/postcache"
	"blog-service/internal/infrastructure/ratelimit"
	"blog-service/internal/infrastructure/token"
)

func main() {
	_ = godotenv.Load() // .env is optional outside development

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := postgres.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	limiter := ratelimit.NewLoginLimiter(cfg.RedisURL, cfg.LoginWindow, cfg.LoginMaxAttempts)
	defer limiter.Close()

	authService := services.NewAuthService(
		postgres.NewUserRepository(db),
		token.NewService(cfg.JWTSecret, cfg.TokenTTL),
		limiter,
		cfg.LoginTokenTTL,
	)
	postService := services.NewPostService(
		postgres.NewPostRepository(db),
		postcache.New(cfg.CacheSize, cfg.CacheTTL),
	)

	handler := httpdelivery.NewHandler(authService, postService)
	e := httpdelivery.NewRouter(handler, authService, cfg.RequestsPerSecond)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			e.Logger.Info("server stopped: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
