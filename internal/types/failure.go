package types

// FailureCategory buckets terminal failures for audit events and exit
// handling. Categories mirror the user-facing failure taxonomy, not the
// wire errors underneath it.
type FailureCategory string

const (
	FailureInput       FailureCategory = "input_validation"
	FailureRateLimited FailureCategory = "rate_limited"
	FailureNotFound    FailureCategory = "not_found"
	FailureRemote      FailureCategory = "remote_api"
	FailureUnexpected  FailureCategory = "unexpected"
)

const (
	ExitNormal  int = 0
	ExitErrored int = 1
)
