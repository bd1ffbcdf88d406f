package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/repoworks/process-repo-action/internal/logger"
	"github.com/repoworks/process-repo-action/internal/types"
)

// Audit lines go to stdout as single JSON objects so the workflow log stays
// machine-readable. Everything else logs to stderr.
type Context struct {
	Repository   *string
	RunID        *string
	InvocationID uuid.UUID
}

func LogRunStarted(c Context, exampleInput string, delayMS int) {
	event := RunStarted{}
	event.Type = EvtRunStarted

	event.LogContext = logContext
	event.SchemaVersion = schemaVersion

	event.Timestamp = types.UnixMilli(time.Now().UTC().UnixMilli())
	event.InvocationID = c.InvocationID
	event.Repository = c.Repository
	event.RunID = c.RunID

	event.Disposition = DispositionNeutral

	event.Event.ExampleInput = exampleInput
	event.Event.DelayMS = delayMS

	evtStr, err := json.Marshal(event)
	if err != nil {
		logger.Logger.Error(
			"could not serialize RunStarted event",
			"exampleInput",
			exampleInput,
			"delayMS",
			delayMS,
		)
		return
	}

	fmt.Println(string(evtStr))
}

func LogRepositoryProcessed(
	c Context,
	result string,
	fullName string,
	defaultBranch string,
	private bool,
	delayMS int,
) {
	event := RepositoryProcessed{}
	event.Type = EvtRepositoryProcessed

	event.LogContext = logContext
	event.SchemaVersion = schemaVersion

	event.Timestamp = types.UnixMilli(time.Now().UTC().UnixMilli())
	event.InvocationID = c.InvocationID
	event.Repository = c.Repository
	event.RunID = c.RunID

	event.Disposition = DispositionGood

	event.Event.Result = result
	event.Event.FullName = fullName
	event.Event.DefaultBranch = defaultBranch
	event.Event.Private = private
	event.Event.DelayMS = delayMS

	evtStr, err := json.Marshal(event)
	if err != nil {
		logger.Logger.Error(
			"could not serialize RepositoryProcessed event",
			"result",
			result,
			"fullName",
			fullName,
			"defaultBranch",
			defaultBranch,
			"private",
			private,
			"delayMS",
			delayMS,
		)
		return
	}

	fmt.Println(string(evtStr))
}

func LogRunFailed(c Context, category types.FailureCategory, errStr string) {
	event := RunFailed{}
	event.Type = EvtRunFailed

	event.LogContext = logContext
	event.SchemaVersion = schemaVersion

	event.Timestamp = types.UnixMilli(time.Now().UTC().UnixMilli())
	event.InvocationID = c.InvocationID
	event.Repository = c.Repository
	event.RunID = c.RunID

	event.Disposition = DispositionBad

	event.Event.Category = category
	event.Event.Error = errStr

	evtStr, err := json.Marshal(event)
	if err != nil {
		logger.Logger.Error(
			"could not serialize RunFailed event",
			"category",
			category,
			"error",
			errStr,
		)
		return
	}

	fmt.Println(string(evtStr))
}
