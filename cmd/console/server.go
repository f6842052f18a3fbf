package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"itapay-admin/internal/backend"
	"itapay-admin/internal/config"
	"itapay-admin/internal/handlers"
	"itapay-admin/internal/middleware"
	"itapay-admin/internal/services"
	"itapay-admin/internal/ui"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsRegistry is where console collectors are registered and /metrics reads from
type metricsRegistry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// defaultRegistry also carries the process collectors and the error handler's counter
type defaultRegistry struct {
	prometheus.Registerer
	prometheus.Gatherer
}

// runServer serves the console until SIGINT/SIGTERM, then drains in-flight requests
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	registry := defaultRegistry{prometheus.DefaultRegisterer, prometheus.DefaultGatherer}

	e, err := newServer(ctx, cfg, logger, registry)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting admin console",
			"address", server.Addr,
			"environment", cfg.Server.Environment,
			"backend", cfg.Backend.BaseURL,
			"auth_enabled", cfg.AuthEnabled(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("Shutting down admin console", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Shutting down admin console", "reason", ctx.Err().Error())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Admin console stopped")
	return nil
}

// newServer wires the backend client, services, middleware and routes into an echo instance.
// ctx bounds background work such as rate limiter cleanup.
func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, registry metricsRegistry) (*echo.Echo, error) {
	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	metrics := services.NewPrometheusMetrics(registry)
	consoleLogger := services.NewConsoleLogger(logger)

	client := backend.NewClient(&cfg.Backend, metrics, logger)
	consoleService := services.NewConsoleService(
		client.Customers,
		client.Accounts,
		client.Transfers,
		consoleLogger,
		metrics,
	)

	consoleHandler := handlers.NewConsoleHandler(consoleService)
	healthHandler := handlers.NewHealthCheckHandler(client)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	limiter := middleware.NewRateLimiter(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(limiter.Middleware())
	if cfg.Security.CSRFEnabled {
		e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
			Skipper:        skipNonPageRoutes,
			TokenLookup:    "form:_csrf",
			ContextKey:     ui.CSRFContextKey,
			CookieName:     "_csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.IsProduction(),
			CookieSameSite: http.SameSiteStrictMode,
		}))
	}

	e.StaticFS("/static", ui.StaticFS())
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	console := e.Group("")
	if cfg.AuthEnabled() {
		console.Use(middleware.RequireAdmin(services.NewTokenService(&cfg.Auth), consoleLogger, metrics))
	}

	console.GET("/", consoleHandler.Dashboard)
	console.GET("/customers", consoleHandler.Customers)
	console.GET("/customers/:id", consoleHandler.CustomerDetail)
	console.POST("/customers/:id/:decision", consoleHandler.DecideCustomer)
	console.GET("/accounts", consoleHandler.Accounts)
	console.GET("/accounts/:id", consoleHandler.AccountDetail)
	console.GET("/transfers", consoleHandler.Transfers)

	return e, nil
}

func skipNonPageRoutes(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/static/") || path == "/health" || path == "/metrics"
}

// splitAddr splits a --addr value into host and port, keeping defaultPort when none is given
func splitAddr(addr, defaultPort string) (string, string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, defaultPort
	}
	return host, port
}
