package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sethvargo/go-githubactions"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/repoworks/process-repo-action/cmd/action/internal/delay"
	"github.com/repoworks/process-repo-action/cmd/action/internal/github"
	"github.com/repoworks/process-repo-action/cmd/action/internal/inputs"
	"github.com/repoworks/process-repo-action/cmd/action/internal/results"
	"github.com/repoworks/process-repo-action/internal/audit"
	"github.com/repoworks/process-repo-action/internal/logger"
	"github.com/repoworks/process-repo-action/internal/types"
)

var tracer = otel.Tracer(
	"github.com/repoworks/process-repo-action/cmd/action/internal/runner",
)

const unexpectedMessage = "An unexpected error occurred"

//go:generate mockgen -destination ./mock/mock.go -package mock . Reporter

// Reporter is the slice of the actions runtime the run drives: input reads,
// output writes, workflow diagnostics, and secret masking.
type Reporter interface {
	inputs.Source
	results.Sink
	AddMask(p string)
	Infof(msg string, args ...any)
	Warningf(msg string, args ...any)
	Errorf(msg string, args ...any)
	Debugf(msg string, args ...any)
}

// Ensure the actions runtime satisfies Reporter.
var _ Reporter = (*githubactions.Action)(nil)

// FetcherFactory builds the metadata fetcher once the credential is known.
// The token comes out of input resolution, so the client cannot exist
// before the run starts.
type FetcherFactory func(token string) (github.RepositoryFetcher, error)

// Failure is the single terminal error of a run. Message is the one
// user-facing line; Err keeps the original cause for diagnostics.
type Failure struct {
	Err      error
	Message  string
	Category types.FailureCategory
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Success carries what a finished run produced, for callers that record or
// display it.
type Success struct {
	Inputs   *inputs.ActionInputs
	Metadata *types.RepoMetadata
	Outputs  results.Outputs
}

// Runner executes the pipeline: resolve inputs, fetch repository metadata,
// wait, emit outputs. Stages run strictly in order and the first failure
// ends the run.
type Runner struct {
	reporter     Reporter
	fetcherFor   FetcherFactory
	waiter       delay.Waiter
	auditCtx     audit.Context
	auditEnabled bool
}

func NewRunner(
	reporter Reporter,
	fetcherFor FetcherFactory,
	waiter delay.Waiter,
	auditCtx audit.Context,
	auditEnabled bool,
) *Runner {
	return &Runner{
		reporter:     reporter,
		fetcherFor:   fetcherFor,
		waiter:       waiter,
		auditCtx:     auditCtx,
		auditEnabled: auditEnabled,
	}
}

// Run drives one invocation against ref. On failure the returned error is
// always a *Failure, exactly one error-level line has been reported, and no
// outputs have been set. Panics surface as failures instead of crashing the
// process.
func (r *Runner) Run(ctx context.Context, ref types.RepoRef) (s *Success, runErr error) {
	ctx, span := tracer.Start(ctx, "Run", trace.WithAttributes(
		attribute.String("repository", ref.FullName()),
	))
	defer span.End()

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		stack := debug.Stack()
		if err, ok := rec.(error); ok {
			s, runErr = nil, r.fail(ctx, span, r.classify(err), stack)
			return
		}

		s, runErr = nil, r.fail(ctx, span, &Failure{
			Err:      fmt.Errorf("recovered from panic: %v", rec),
			Message:  unexpectedMessage,
			Category: types.FailureUnexpected,
		}, stack)
	}()

	success, err := r.execute(ctx, ref)
	if err != nil {
		return nil, r.fail(ctx, span, r.classify(err), nil)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "run completed")
	return success, nil
}

func (r *Runner) execute(ctx context.Context, ref types.RepoRef) (*Success, error) {
	r.reporter.Infof("Starting processing for repository %s", ref.FullName())

	resolved, err := inputs.Resolve(ctx, r.reporter)
	if err != nil {
		return nil, err
	}
	r.reporter.AddMask(resolved.Token)
	r.reporter.Infof(
		"Inputs validated. Processing %s with a %dms delay",
		resolved.ExampleInput,
		resolved.Milliseconds,
	)

	if r.auditEnabled {
		audit.LogRunStarted(r.auditCtx, resolved.ExampleInput, resolved.Milliseconds)
	}

	fetcher, err := r.fetcherFor(resolved.Token)
	if err != nil {
		return nil, err
	}

	r.reporter.Infof("Fetching metadata for %s from the GitHub API", ref.FullName())
	meta, err := fetcher.FetchRepository(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := r.waiter.Wait(ctx, resolved.Milliseconds); err != nil {
		return nil, err
	}

	out := results.Compose(resolved.ExampleInput, meta.FullName, time.Now())
	results.Emit(r.reporter, out)

	r.reporter.Infof("Action completed successfully")

	if r.auditEnabled {
		audit.LogRepositoryProcessed(
			r.auditCtx,
			out.Result,
			meta.FullName,
			meta.DefaultBranch,
			meta.Private,
			resolved.Milliseconds,
		)
	}

	return &Success{Inputs: resolved, Metadata: meta, Outputs: out}, nil
}

func (r *Runner) classify(err error) *Failure {
	var inErr *inputs.InputError
	if errors.As(err, &inErr) {
		return &Failure{Err: err, Message: inErr.Message, Category: types.FailureInput}
	}

	var remoteErr *github.RemoteError
	if errors.As(err, &remoteErr) {
		return &Failure{Err: err, Message: remoteErr.Message, Category: remoteErr.Category}
	}

	return &Failure{Err: err, Message: err.Error(), Category: types.FailureUnexpected}
}

// fail reports a terminal failure exactly once: an optional rate-limit
// warning, the single error-level line with the normalized message, and a
// low-visibility stack trace when one exists.
func (r *Runner) fail(ctx context.Context, span trace.Span, f *Failure, stack []byte) error {
	if f.Category == types.FailureRateLimited {
		r.reporter.Warningf("GitHub API rate limit hit")
	}

	r.reporter.Errorf("%s", f.Message)
	logger.Logger.ErrorContext(ctx, "run failed", "category", f.Category, "error", f.Err)

	if stack != nil {
		r.reporter.Debugf("%s", stack)
	}

	if r.auditEnabled {
		audit.LogRunFailed(r.auditCtx, f.Category, f.Message)
	}

	span.RecordError(f)
	span.SetStatus(codes.Error, "run failed")
	return f
}
