package delay

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer(
	"github.com/repoworks/process-repo-action/cmd/action/internal/delay",
)

//go:generate mockgen -destination ./mock/mock.go -package mock . Waiter

// Waiter suspends the run for a fixed number of milliseconds. Resumption
// happens no earlier than the requested duration and there is no early
// wake short of ctx cancellation.
type Waiter interface {
	Wait(ctx context.Context, ms int) error
}

// Ensure TimerWaiter implements Waiter interface.
var _ Waiter = (*TimerWaiter)(nil)

type TimerWaiter struct{}

func NewTimerWaiter() *TimerWaiter {
	return &TimerWaiter{}
}

func (w *TimerWaiter) Wait(ctx context.Context, ms int) error {
	ctx, span := tracer.Start(ctx, "Wait", trace.WithAttributes(
		attribute.Int("delay.ms", ms),
	))
	defer span.End()

	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		err := ctx.Err()
		span.RecordError(err)
		span.SetStatus(codes.Error, "wait interrupted")
		return err
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "wait elapsed")
	return nil
}
