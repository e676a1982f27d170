package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/social-wave/backend/config"
	"github.com/social-wave/backend/internal/domain"
	"github.com/social-wave/backend/internal/pg"
	"github.com/social-wave/backend/internal/repository/postgres"
	"github.com/social-wave/backend/internal/security"
	"github.com/social-wave/backend/internal/service"
	transport "github.com/social-wave/backend/internal/transport/http"
	"github.com/social-wave/backend/pkg/logger"
)

func main() {
	// Config init
	cfg, err := config.LoadConfig()
	if err != nil {
		println("failed to load config:", err.Error())
		os.Exit(1)
	}

	// Logger init
	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting social-wave backend", "version", cfg.Logging.Version)

	// PostgreSQL init
	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		slog.Error("failed to init postgres", slog.Any("err", err))
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("connected to postgres")

	// Services init
	usersRepo := postgres.NewUserRepoFromPool(pool)
	chatsRepo := postgres.NewChatRepo(pool)
	messagesRepo := postgres.NewMessageRepo(pool)

	passCfg := security.PasswordConfig{
		Cost:      cfg.Security.Password.BcryptCost,
		MinLength: cfg.Security.Password.MinLength,
	}

	identitySvc := service.NewIdentityService(usersRepo, passCfg, nil)
	directorySvc := service.NewDirectoryService(usersRepo)
	chatSvc := service.NewChatService(chatsRepo, messagesRepo, domain.UserID(cfg.Chat.AssistantUserID), nil)

	// HTTP init
	router := transport.NewRouter(
		transport.NewIdentityHandler(identitySvc),
		transport.NewDirectoryHandler(directorySvc),
		transport.NewChatHandler(chatSvc),
		transport.RouterConfig{
			AllowedOrigins:     cfg.HTTP.AllowedOrigins,
			RequestTimeout:     cfg.HTTP.RequestTimeout,
			RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
		},
	)

	server := transport.NewServer(cfg.HTTP.Addr, router)
	if err := server.Start(ctx); err != nil {
		slog.Error("failed to start http server", slog.Any("err", err))
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("shutdown signal received", "signal", sig.String())

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	server.Stop(shutdownCtx)
	pool.Close()

	slog.Info("social-wave backend stopped gracefully")
}
