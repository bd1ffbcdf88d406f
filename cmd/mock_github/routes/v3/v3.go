// Package v3 implements the slice of the GitHub REST v3 surface the
// repository processing action talks to.
package v3

import (
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"github.com/repoworks/process-repo-action/cmd/mock_github/internal/fixture"
)

type Handler struct {
	fixture *fixture.Fixture
	served  atomic.Int64
}

func NewHandler(f *fixture.Fixture) *Handler {
	return &Handler{fixture: f}
}

// AddRoutes registers the handler under the /api/v3 prefix, which is the
// path the client derives for API hosts other than api.github.com.
func (h *Handler) AddRoutes(e *echo.Echo) {
	v3 := e.Group("/api/v3")

	v3.GET("/repos/:owner/:repo", h.GetRepo)
	v3.GET("/rate_limit", h.RateLimit)
}

type errorBody struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}

func notFound() errorBody {
	return errorBody{
		Message:          "Not Found",
		DocumentationURL: "https://docs.github.com/rest/repos/repos#get-a-repository",
	}
}

// bearerToken pulls the token out of an Authorization header in either
// the "Bearer x" or "token x" form.
func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	for _, scheme := range []string{"Bearer ", "token "} {
		if strings.HasPrefix(auth, scheme) {
			return strings.TrimPrefix(auth, scheme)
		}
	}

	return ""
}
