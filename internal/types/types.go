package types

import (
	"fmt"
	"strings"
)

// Unix timestamp at millisecond resolution
type UnixMilli int64

// RepoRef identifies the repository the invocation runs against. It is
// resolved once from the workflow context and passed explicitly to every
// stage that needs it.
type RepoRef struct {
	Owner string `json:"owner" validate:"required"`
	Name  string `json:"name"  validate:"required"`
}

func (r RepoRef) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

func (r RepoRef) String() string {
	return r.FullName()
}

// ParseRepoRef splits an "owner/repo" pair as provided by the
// GITHUB_REPOSITORY environment variable.
func ParseRepoRef(fullName string) (RepoRef, error) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found || owner == "" || name == "" {
		return RepoRef{}, fmt.Errorf(
			"malformed repository %q: expected the \"owner/repo\" form",
			fullName,
		)
	}

	return RepoRef{Owner: owner, Name: name}, nil
}

// RepoMetadata is the slice of repository detail the run actually consumes.
// The upstream API returns far more; anything not listed here is discarded
// at the client boundary.
type RepoMetadata struct {
	FullName      string `json:"full_name"      validate:"required"`
	Name          string `json:"name"           validate:"required"`
	OwnerLogin    string `json:"owner_login"    validate:"required"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}
