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
	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/Eursukkul/event-portal/internal/handler"
	"github.com/Eursukkul/event-portal/internal/metrics"
	"github.com/Eursukkul/event-portal/internal/middleware"
	"github.com/Eursukkul/event-portal/internal/repository"
	"github.com/Eursukkul/event-portal/internal/service"
	"github.com/Eursukkul/event-portal/pkg/apiclient"
	"github.com/Eursukkul/event-portal/web"
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

	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, apiclient.WithObserver(metrics.ObserveUpstream))

	eventSvc := service.NewEventService(repository.NewEventRepository(client))
	regSvc := service.NewRegistrationService(repository.NewRegistrationRepository(client))

	e := echo.New()
	e.HideBanner = true
	e.Renderer = web.MustNewRenderer()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Service: "event-portal"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	handler.NewEventHandler(eventSvc).RegisterRoutes(e)
	handler.NewRegistrationHandler(regSvc).RegisterRoutes(e)
	handler.NewShareHandler(eventSvc, cfg.PublicURL).RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("event portal starting", "port", cfg.ServerPort, "api", client.BaseURL())
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
