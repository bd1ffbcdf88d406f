package audit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoworks/process-repo-action/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func captureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout = w

	fn()

	if err := w.Close(); err != nil {
		return "", err
	}
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, r); err != nil {
		return "", err
	}

	if err := r.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const uuidRegex = `[\d\w]{8}-[\d\w]{4}-[\d\w]{4}-[\d\w]{4}-[\d\w]{12}`

func TestLogRunStarted(t *testing.T) {
	ctx := Context{
		Repository:   ptr("octocat/hello-world"),
		RunID:        ptr("42"),
		InvocationID: uuid.New(),
	}
	got, err := captureStdout(func() {
		LogRunStarted(ctx, "octocat", 1000)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		fmt.Sprintf(
			`{"event":{"example_input":"octocat","delay_ms":1000},"repository":"octocat/hello-world","run_id":"42","log_context":"audit","version":"\d\.\d\.\d","invocation_id":"%s","disposition":"neutral","event_type":"run_started","timestamp":\d+}`,
			uuidRegex,
		),
	)
	assert.Regexp(t, expect, got)
}

func TestLogRepositoryProcessed(t *testing.T) {
	ctx := Context{
		Repository:   ptr("octocat/hello-world"),
		RunID:        ptr("42"),
		InvocationID: uuid.New(),
	}
	got, err := captureStdout(func() {
		LogRepositoryProcessed(
			ctx,
			"Processed octocat for octocat/hello-world",
			"octocat/hello-world",
			"main",
			false,
			1000,
		)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		fmt.Sprintf(
			`{"event":{"result":"Processed octocat for octocat/hello-world","full_name":"octocat/hello-world","default_branch":"main","private":false,"delay_ms":1000},"repository":"octocat/hello-world","run_id":"42","log_context":"audit","version":"\d\.\d\.\d","invocation_id":"%s","disposition":"good","event_type":"repository_processed","timestamp":\d+}`,
			uuidRegex,
		),
	)
	assert.Regexp(t, expect, got)
}

func TestLogRunFailed(t *testing.T) {
	ctx := Context{
		Repository:   nil,
		RunID:        ptr("42"),
		InvocationID: uuid.New(),
	}
	got, err := captureStdout(func() {
		LogRunFailed(ctx, types.FailureNotFound, "Repository not found or token lacks necessary permissions.")
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		fmt.Sprintf(
			`{"event":{"category":"not_found","error":"Repository not found or token lacks necessary permissions."},"repository":null,"run_id":"42","log_context":"audit","version":"\d\.\d\.\d","invocation_id":"%s","disposition":"bad","event_type":"run_failed","timestamp":\d+}`,
			uuidRegex,
		),
	)
	assert.Regexp(t, expect, got)
}
