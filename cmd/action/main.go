package main

import (
	"context"
	"errors"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/repoworks/process-repo-action/cmd/action/cmds"
	"github.com/repoworks/process-repo-action/internal/config"
	"github.com/repoworks/process-repo-action/internal/logger"
	otelaction "github.com/repoworks/process-repo-action/internal/otel"
	runerrors "github.com/repoworks/process-repo-action/internal/run_errors"
	"github.com/repoworks/process-repo-action/internal/types"
)

var tracer = otel.Tracer("github.com/repoworks/process-repo-action/cmd/action")

func runApp(ctx context.Context) int {
	useOTLP := false
	cfg, err := config.GetConfig()
	if err != nil {
		logger.Logger.Warn("failed to load config for telemetry setup, defaulting to stdout exporters", "error", err)
	} else {
		useOTLP = cfg.Logging.UseOTLP
	}

	otelShutdown, err := otelaction.SetupOTelSDK(ctx, useOTLP)
	if err != nil {
		logger.Logger.Warn("failed to setup OTel SDK", "error", err)
	}
	defer func() {
		err = errors.Join(err, otelShutdown(context.Background()))
		if err != nil {
			logger.Logger.Warn("error shutting down OTel SDK", "error", err)
		}
	}()

	// A prior workflow step may have published trace context into the
	// environment. Link to it rather than parenting under it so this
	// run keeps its own root.
	carrier := otelaction.CreateEnvCarrier()
	extractedContext := otel.GetTextMapPropagator().Extract(context.Background(), carrier)

	ctx, span := tracer.Start(
		ctx,
		"Action",
		trace.WithNewRoot(),
		trace.WithLinks(trace.LinkFromContext(extractedContext)),
	)
	defer span.End()

	err = cmds.Execute(ctx)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "error while executing", "error", err)

		var exitError runerrors.ExitError
		if errors.As(err, &exitError) {
			return exitError.Code
		}

		return types.ExitErrored
	}

	return types.ExitNormal
}

func main() {
	logger.InitSlog()

	os.Exit(runApp(context.Background()))
}
