package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hackcwru/signup/internal/config"
	"github.com/hackcwru/signup/internal/handler"
	"github.com/hackcwru/signup/internal/notifier"
	"github.com/hackcwru/signup/internal/provider"
	"github.com/hackcwru/signup/internal/repository"
	"github.com/hackcwru/signup/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sqlx.Connect("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSchema()
	if err := repository.EnsureSchema(schemaCtx, db); err != nil {
		return err
	}

	slog.Info("database ready")

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	oauthClient := provider.New(provider.Config{
		BaseURL:      cfg.ProviderBaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
	}, httpClient)

	webhook := notifier.New(notifier.Config{
		URL:      cfg.WebhookURL,
		Channel:  cfg.WebhookChannel,
		Username: cfg.WebhookUsername,
		Icon:     cfg.WebhookIcon,
	}, httpClient)

	signups := service.NewSignupService(
		oauthClient,
		repository.NewProfileRepository(db),
		repository.NewEmailRepository(db),
		webhook,
		service.SignupConfig{
			SuccessURL: cfg.SuccessURL,
			FailureURL: cfg.FailureURL,
			Year:       cfg.SignupYear,
		},
	)

	signupHandler := handler.NewSignupHandler(signups, oauthClient.AuthorizeURL())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(handler.RequestLogger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/start", signupHandler.Start)
	e.GET("/callback", signupHandler.Callback)
	e.GET("/email", signupHandler.Email)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.BindAddr)
		errCh <- e.Start(cfg.BindAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
