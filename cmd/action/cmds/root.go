package cmds

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/repoworks/process-repo-action/cmd/action/internal/delay"
	"github.com/repoworks/process-repo-action/cmd/action/internal/github"
	"github.com/repoworks/process-repo-action/cmd/action/internal/runner"
	"github.com/repoworks/process-repo-action/internal/audit"
	"github.com/repoworks/process-repo-action/internal/config"
	"github.com/repoworks/process-repo-action/internal/logger"
	otelaction "github.com/repoworks/process-repo-action/internal/otel"
	runerrors "github.com/repoworks/process-repo-action/internal/run_errors"
	"github.com/repoworks/process-repo-action/internal/types"
)

var tracer = otel.Tracer("github.com/repoworks/process-repo-action/cmd/action/cmds")

var rootCmd = &cobra.Command{
	Use:           "action",
	Short:         "Processes the current repository and reports the result",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, span := tracer.Start(cmd.Context(), "rootCmd")
		defer span.End()

		action := githubactions.New()

		// Failures before the pipeline starts still surface as one
		// error annotation plus a nonzero exit.
		fail := func(err error) error {
			action.Errorf("%s", err.Error())
			span.RecordError(err)
			span.SetStatus(codes.Error, "run terminated before processing")
			return runerrors.ExitErrorWrap(types.ExitErrored, err)
		}

		cfg, err := config.GetConfig()
		if err != nil {
			return fail(fmt.Errorf("failed to load config: %w", err))
		}
		logger.LogLevel.Set(slog.Level(cfg.Logging.Level))

		githubCtx, err := action.Context()
		if err != nil {
			return fail(fmt.Errorf("failed to read the workflow context: %w", err))
		}
		if githubCtx.Repository == "" {
			return fail(errors.New("GITHUB_REPOSITORY is not set"))
		}

		ref, err := types.ParseRepoRef(githubCtx.Repository)
		if err != nil {
			return fail(err)
		}

		publishTraceEnv(ctx, action)

		repoFull := ref.FullName()
		auditCtx := audit.Context{
			InvocationID: uuid.New(),
			Repository:   &repoFull,
		}
		if githubCtx.RunID != 0 {
			runID := strconv.FormatInt(githubCtx.RunID, 10)
			auditCtx.RunID = &runID
		}

		log := logger.WithInvocation(auditCtx.InvocationID.String())
		log.InfoContext(ctx, "resolved run context", "repository", repoFull)

		baseURL := cfg.Github.APIURL
		if baseURL == "" {
			baseURL = githubCtx.APIURL
		}

		fetcherFor := func(token string) (github.RepositoryFetcher, error) {
			return github.Create(token, baseURL, cfg.HTTPTimeout())
		}

		run := runner.NewRunner(
			action,
			fetcherFor,
			delay.NewTimerWaiter(),
			auditCtx,
			cfg.Audit.Enabled,
		)

		if _, err := run.Run(ctx, ref); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "run failed")
			return runerrors.ExitErrorWrap(types.ExitErrored, err)
		}

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "run completed")
		return nil
	},
}

// publishTraceEnv hands the active trace to later workflow steps through
// the GITHUB_ENV file. Skipped quietly when the runner does not provide
// one, as in local invocations.
func publishTraceEnv(ctx context.Context, action *githubactions.Action) {
	if action.Getenv("GITHUB_ENV") == "" {
		return
	}

	carrier := otelaction.CreateEnvCarrier()
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	for _, kv := range carrier.AsEnviron() {
		k, v, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		action.SetEnv(k, v)
	}
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
