package v3

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/repoworks/process-repo-action/cmd/mock_github/internal/fixture"
	"github.com/repoworks/process-repo-action/internal/types"
	"github.com/repoworks/process-repo-action/internal/validator"
)

type repoOwner struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

type repoBody struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Owner         repoOwner `json:"owner"`
	Private       bool      `json:"private"`
	HTMLURL       string    `json:"html_url"`
	Description   *string   `json:"description"`
	Fork          bool      `json:"fork"`
	DefaultBranch string    `json:"default_branch"`
	Visibility    string    `json:"visibility"`
}

// GetRepo answers GET /repos/{owner}/{repo} from the fixture.
func (h *Handler) GetRepo(c echo.Context) error {
	type requestData struct {
		Owner string `param:"owner" validate:"required"`
		Repo  string `param:"repo"  validate:"required"`
	}

	var rdata requestData

	err := c.Bind(&rdata)
	if err != nil {
		return echo.NewHTTPError(
			http.StatusBadRequest,
			errorBody{Message: "failed parsing request data"},
		)
	}

	if h.fixture.Token != "" && bearerToken(c) != h.fixture.Token {
		return c.JSON(http.StatusUnauthorized, errorBody{
			Message:          "Bad credentials",
			DocumentationURL: "https://docs.github.com/rest",
		})
	}

	if h.overQuota(c) {
		return c.JSON(http.StatusForbidden, errorBody{
			Message:          "API rate limit exceeded",
			DocumentationURL: "https://docs.github.com/rest/overview/resources-in-the-rest-api#rate-limiting",
		})
	}

	err = c.Validate(rdata)
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound())
	}

	// Names GitHub would never accept do not merit a fixture lookup.
	if !validator.ValidateOwnerLen(len(rdata.Owner)) ||
		!validator.ValidateRepoLen(len(rdata.Repo)) ||
		!validator.ValidateRepoChars(rdata.Owner) ||
		!validator.ValidateRepoChars(rdata.Repo) {
		return c.JSON(http.StatusNotFound, notFound())
	}

	ref := types.RepoRef{Owner: rdata.Owner, Name: rdata.Repo}
	repo, ok := h.fixture.Lookup(ref.FullName())
	if !ok {
		return c.JSON(http.StatusNotFound, notFound())
	}

	return c.JSON(http.StatusOK, makeRepoBody(repo))
}

// makeRepoBody renders a fixture entry with the fixture's canonical
// spelling, independent of the casing the request used.
func makeRepoBody(repo *fixture.Repo) repoBody {
	owner, name, _ := strings.Cut(repo.FullName, "/")

	body := repoBody{
		ID:       repo.ID,
		Name:     name,
		FullName: repo.FullName,
		Owner: repoOwner{
			Login: owner,
			Type:  "User",
		},
		Private:       repo.Private,
		HTMLURL:       fmt.Sprintf("https://github.com/%s", repo.FullName),
		DefaultBranch: repo.DefaultBranch,
		Visibility:    "public",
	}
	if repo.Private {
		body.Visibility = "private"
	}
	if repo.Description != "" {
		body.Description = &repo.Description
	}

	return body
}
