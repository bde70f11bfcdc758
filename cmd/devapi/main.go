// Command devapi serves the events REST API the portal talks to, backed by
// PostgreSQL. It is meant for local development and end-to-end tests.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/event-portal/config"
	"github.com/Eursukkul/event-portal/internal/devapi/handler"
	"github.com/Eursukkul/event-portal/internal/devapi/repository"
	"github.com/Eursukkul/event-portal/internal/devapi/service"
	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/Eursukkul/event-portal/internal/middleware"
	"github.com/Eursukkul/event-portal/pkg/database"
	"github.com/Eursukkul/event-portal/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.DateTime,
	})))

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		slog.Error("database", "error", err)
		os.Exit(1)
	}

	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			slog.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer p.Close()
		publisher = p
	}

	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.JSONErrorHandler
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: "devapi"})
	})

	api := e.Group("/api")
	handler.NewEventHandler(service.NewEventService(eventRepo, publisher)).RegisterRoutes(api.Group("/events"))
	handler.NewRegistrationHandler(service.NewRegistrationService(regRepo, eventRepo, publisher)).RegisterRoutes(api)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("development API starting", "port", cfg.DevAPIPort, "rabbitmq", publisher != nil)
		if err := e.Start(":" + cfg.DevAPIPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
