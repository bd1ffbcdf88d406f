package results

import (
	"fmt"
	"strconv"
	"time"
)

//go:generate mockgen -destination ./mock/mock.go -package mock . Sink

// Sink receives the finished output key/value pairs.
type Sink interface {
	SetOutput(k string, v string)
}

const (
	OutputTime      = "time"
	OutputResult    = "result"
	OutputProcessed = "processed"
)

// Outputs is the output record of a successful run. It is built once, after
// every stage has finished, and emitted as a group.
type Outputs struct {
	Time      string
	Result    string
	Processed bool
}

// Compose builds the output record. Pure, no failure modes. The timestamp
// renders as wall-clock time of day.
func Compose(exampleInput string, repoFullName string, completedAt time.Time) Outputs {
	return Outputs{
		Time:      completedAt.Format("15:04:05 MST"),
		Result:    fmt.Sprintf("Processed %s for %s", exampleInput, repoFullName),
		Processed: true,
	}
}

// Emit hands the outputs to the sink in a stable order: time, result,
// processed. Booleans serialize as lowercase text.
func Emit(sink Sink, out Outputs) {
	sink.SetOutput(OutputTime, out.Time)
	sink.SetOutput(OutputResult, out.Result)
	sink.SetOutput(OutputProcessed, strconv.FormatBool(out.Processed))
}
