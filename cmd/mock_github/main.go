package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/repoworks/process-repo-action/cmd/mock_github/internal/fixture"
	routesv3 "github.com/repoworks/process-repo-action/cmd/mock_github/routes/v3"
	"github.com/repoworks/process-repo-action/internal/config"
	"github.com/repoworks/process-repo-action/internal/logger"
	otelaction "github.com/repoworks/process-repo-action/internal/otel"
	"github.com/repoworks/process-repo-action/internal/validator"
)

func buildEcho(handler *routesv3.Handler) *echo.Echo {
	e := echo.New()

	validate := validator.Create()
	e.Validator = &validate

	e.Use(
		otelecho.Middleware("mock-github"),
		slogecho.NewWithConfig(logger.Logger, slogecho.Config{}),
	)

	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	handler.AddRoutes(e)

	return e
}

func run(ctx context.Context) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.LogLevel.Set(slog.Level(cfg.Logging.Level))

	otelShutdown, err := otelaction.SetupOTelSDK(ctx, cfg.Logging.UseOTLP)
	if err != nil {
		return fmt.Errorf("failed to initialize OTel SDK: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdown())
		defer cancel()

		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Logger.Error("failed to flush otel data", "error", err)
		}
	}()

	fix, err := fixture.Load(ctx, cfg.MockGithub.FixturePath)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	e := buildEcho(routesv3.NewHandler(fix))

	errch := make(chan error, 1)
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Got shutdown signal!")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdown())
		defer cancel()

		errch <- e.Shutdown(shutdownCtx)
		close(errch)
	}()

	logger.Logger.Info(
		"Starting mock GitHub API",
		"address", cfg.MockGithub.ListenAddress,
		"repos", len(fix.Repos),
	)

	err = e.Start(cfg.MockGithub.ListenAddress)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-errch
}

func main() {
	ctx, cancelSignal := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)

	logger.InitSlog()

	if err := run(ctx); err != nil {
		logger.Logger.Error(err.Error())
		cancelSignal()
		os.Exit(1)
	}

	cancelSignal()
}
