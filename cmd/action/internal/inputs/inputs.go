package inputs

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/repoworks/process-repo-action/internal/logger"
	"github.com/repoworks/process-repo-action/internal/validator"
)

var tracer = otel.Tracer(
	"github.com/repoworks/process-repo-action/cmd/action/internal/inputs",
)

//go:generate mockgen -destination ./mock/mock.go -package mock . Source

// Source hands back the raw value for a declared action input. The runner
// protocol trims surrounding whitespace, so an unset input and a blank one
// are indistinguishable here.
type Source interface {
	GetInput(name string) string
}

const (
	InputToken        = "token"
	InputMilliseconds = "milliseconds"
	InputExampleInput = "example-input"

	DefaultMilliseconds = "1000"
	DefaultExampleInput = "default"
)

// ActionInputs is the validated input record for one run.
type ActionInputs struct {
	Token        string `json:"-"             input:"token"         validate:"required"`
	ExampleInput string `json:"example_input" input:"example-input" validate:"required"`
	Milliseconds int    `json:"milliseconds"  input:"milliseconds"  validate:"min=0"`
}

// InputError carries the user-facing message for a missing or malformed
// input. The message text is part of the action's contract.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Resolve reads the declared inputs from src, applies defaults, and
// validates what remains. Milliseconds parsing is strict base-10: a leading
// sign is accepted, surrounding whitespace and decimal notation are not.
func Resolve(ctx context.Context, src Source) (*ActionInputs, error) {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()

	token := src.GetInput(InputToken)
	if token == "" {
		err := &InputError{Message: "Input required and not supplied: token"}
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing token")
		return nil, err
	}

	rawMS := src.GetInput(InputMilliseconds)
	effectiveMS := rawMS
	if effectiveMS == "" {
		effectiveMS = DefaultMilliseconds
	}

	ms, err := strconv.Atoi(effectiveMS)
	if err != nil || ms < 0 {
		inErr := &InputError{Message: fmt.Sprintf(
			"Invalid milliseconds value: %s. Must be a non-negative number.",
			rawMS,
		)}
		span.RecordError(inErr)
		span.SetStatus(codes.Error, "invalid milliseconds")
		return nil, inErr
	}

	exampleInput := src.GetInput(InputExampleInput)
	if exampleInput == "" {
		exampleInput = DefaultExampleInput
	}

	resolved := &ActionInputs{
		Token:        token,
		ExampleInput: exampleInput,
		Milliseconds: ms,
	}

	// The explicit checks above own the contract messages; the tag pass
	// covers the assembled record.
	span.AddEvent("validating resolved inputs")
	v := validator.Create()
	if err := v.Validate(resolved); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid inputs")
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "resolved inputs",
		"exampleInput", resolved.ExampleInput,
		"milliseconds", resolved.Milliseconds,
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "resolved inputs")
	return resolved, nil
}
