package github_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	gogithub "github.com/google/go-github/v66/github"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoworks/process-repo-action/cmd/action/internal/github"
	"github.com/repoworks/process-repo-action/internal/types"
)

// fakeAPI serves just enough of the repos endpoint to drive the client.
// Enterprise base URLs get the /api/v3 prefix appended by the client, so
// the routes live under it.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	e := echo.New()
	v3 := e.Group("/api/v3")
	v3.GET("/repos/:owner/:repo", func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer test-token" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		}

		owner := c.Param("owner")
		repo := c.Param("repo")

		switch repo {
		case "missing":
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Not Found"})
		case "limited":
			c.Response().Header().Set("X-Ratelimit-Limit", "60")
			c.Response().Header().Set("X-Ratelimit-Remaining", "0")
			c.Response().
				Header().
				Set("X-Ratelimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
			return c.JSON(
				http.StatusForbidden,
				map[string]string{"message": "API rate limit exceeded for 127.0.0.1."},
			)
		case "broken":
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "boom"})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"id":             1296269,
			"name":           repo,
			"full_name":      owner + "/" + repo,
			"owner":          map[string]any{"login": owner},
			"private":        false,
			"description":    "My first repository on GitHub!",
			"default_branch": "main",
		})
	})

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}

func TestFetchRepository(t *testing.T) {
	server := fakeAPI(t)

	client, err := github.Create("test-token", server.URL, 5*time.Second)
	require.NoError(t, err, "failed to build client")

	t.Run("Success", func(t *testing.T) {
		meta, err := client.FetchRepository(t.Context(), types.RepoRef{
			Owner: "octocat",
			Name:  "hello-world",
		})
		require.NoError(t, err, "fetch should succeed")

		assert.Equal(t, "octocat/hello-world", meta.FullName)
		assert.Equal(t, "hello-world", meta.Name)
		assert.Equal(t, "octocat", meta.OwnerLogin)
		assert.Equal(t, "main", meta.DefaultBranch)
		assert.False(t, meta.Private)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := client.FetchRepository(t.Context(), types.RepoRef{
			Owner: "octocat",
			Name:  "missing",
		})
		require.Error(t, err)

		var remoteErr *github.RemoteError
		require.ErrorAs(t, err, &remoteErr, "failures should normalize")
		assert.Equal(t, types.FailureNotFound, remoteErr.Category)
		assert.Equal(
			t,
			"Repository not found or token lacks necessary permissions.",
			remoteErr.Message,
		)

		var respErr *gogithub.ErrorResponse
		assert.ErrorAs(t, err, &respErr, "original error should stay reachable")
	})

	t.Run("RateLimited", func(t *testing.T) {
		_, err := client.FetchRepository(t.Context(), types.RepoRef{
			Owner: "octocat",
			Name:  "limited",
		})
		require.Error(t, err)

		var remoteErr *github.RemoteError
		require.ErrorAs(t, err, &remoteErr, "failures should normalize")
		assert.Equal(t, types.FailureRateLimited, remoteErr.Category)
		assert.Equal(t, "GitHub API rate limit exceeded. Please try again later.", remoteErr.Message)

		var rateErr *gogithub.RateLimitError
		assert.ErrorAs(t, err, &rateErr, "rate limits should arrive as structured errors")
	})

	t.Run("ServerError", func(t *testing.T) {
		_, err := client.FetchRepository(t.Context(), types.RepoRef{
			Owner: "octocat",
			Name:  "broken",
		})
		require.Error(t, err)

		var remoteErr *github.RemoteError
		require.ErrorAs(t, err, &remoteErr, "failures should normalize")
		assert.Equal(t, types.FailureRemote, remoteErr.Category)
		assert.True(
			t,
			strings.HasPrefix(remoteErr.Message, "GitHub API error: "),
			"message should carry the original text, got %q", remoteErr.Message,
		)
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("BadBaseURL", func(t *testing.T) {
		t.Parallel()

		_, err := github.Create("test-token", "://nope", 5*time.Second)
		require.Error(t, err, "unparseable base URL should fail")
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("RateLimitText", func(t *testing.T) {
		t.Parallel()

		got := github.Classify(errors.New("you have exceeded a secondary rate limit"))
		assert.Equal(t, types.FailureRateLimited, got.Category)
		assert.Equal(t, "GitHub API rate limit exceeded. Please try again later.", got.Message)
	})

	t.Run("NotFoundText", func(t *testing.T) {
		t.Parallel()

		got := github.Classify(errors.New("GET https://example.invalid: 404 Not Found []"))
		assert.Equal(t, types.FailureNotFound, got.Category)
		assert.Equal(
			t,
			"Repository not found or token lacks necessary permissions.",
			got.Message,
		)
	})

	t.Run("Other", func(t *testing.T) {
		t.Parallel()

		got := github.Classify(errors.New("dial tcp: connection refused"))
		assert.Equal(t, types.FailureRemote, got.Category)
		assert.Equal(t, "GitHub API error: dial tcp: connection refused", got.Message)
	})
}
