package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"

	"github.com/repoworks/process-repo-action/internal/types"
)

const (
	rateLimitMessage = "GitHub API rate limit exceeded. Please try again later."
	notFoundMessage  = "Repository not found or token lacks necessary permissions."
)

// RemoteError is the normalized form of an API failure. Message is the
// exact text reported to the user and is part of the action's contract.
// Err keeps the original error for diagnostics.
type RemoteError struct {
	Err      error
	Message  string
	Category types.FailureCategory
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Classify maps an API error onto the failure taxonomy. Structured error
// types are checked before anything else; the substring checks below them
// are a compatibility shim for errors that arrive as plain text and depend
// on upstream wording.
func Classify(err error) *RemoteError {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RemoteError{Err: err, Message: rateLimitMessage, Category: types.FailureRateLimited}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RemoteError{Err: err, Message: rateLimitMessage, Category: types.FailureRateLimited}
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil &&
		respErr.Response.StatusCode == http.StatusNotFound {
		return &RemoteError{Err: err, Message: notFoundMessage, Category: types.FailureNotFound}
	}

	msg := err.Error()
	if strings.Contains(strings.ToLower(msg), "rate limit") {
		return &RemoteError{Err: err, Message: rateLimitMessage, Category: types.FailureRateLimited}
	}
	if strings.Contains(msg, "Not Found") {
		return &RemoteError{Err: err, Message: notFoundMessage, Category: types.FailureNotFound}
	}

	return &RemoteError{
		Err:      err,
		Message:  fmt.Sprintf("GitHub API error: %s", msg),
		Category: types.FailureRemote,
	}
}
