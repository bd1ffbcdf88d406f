package audit

import (
	"github.com/google/uuid"

	"github.com/repoworks/process-repo-action/internal/types"
)

var schemaVersion = "0.1.0"
var logContext = "audit"

type Disposition string

const (
	DispositionNeutral Disposition = "neutral"
	DispositionGood    Disposition = "good"
	DispositionBad     Disposition = "bad"
)

type EventType string

const (
	EvtRunStarted          EventType = "run_started"
	EvtRepositoryProcessed EventType = "repository_processed"
	EvtRunFailed           EventType = "run_failed"
)

type Message struct {
	Repository    *string     `json:"repository"`
	RunID         *string     `json:"run_id"`
	LogContext    string      `json:"log_context"   validate:"required"`
	SchemaVersion string      `json:"version"       validate:"required"`
	InvocationID  uuid.UUID   `json:"invocation_id" validate:"required"`
	Disposition   Disposition `json:"disposition"   validate:"required"`
	Type          EventType   `json:"event_type"    validate:"required"`

	Timestamp types.UnixMilli `json:"timestamp" validate:"required"`
}

type RunStartedEvent struct {
	ExampleInput string `json:"example_input" validate:"required"`
	DelayMS      int    `json:"delay_ms"`
}

type RunStarted struct {
	Event RunStartedEvent `json:"event" validate:"required"`
	Message
}

type RepositoryProcessedEvent struct {
	Result        string `json:"result"         validate:"required"`
	FullName      string `json:"full_name"      validate:"required"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	DelayMS       int    `json:"delay_ms"`
}

type RepositoryProcessed struct {
	Event RepositoryProcessedEvent `json:"event" validate:"required"`
	Message
}

type RunFailedEvent struct {
	Category types.FailureCategory `json:"category" validate:"required"`
	Error    string                `json:"error"    validate:"required"`
}

type RunFailed struct {
	Event RunFailedEvent `json:"event" validate:"required"`
	Message
}
