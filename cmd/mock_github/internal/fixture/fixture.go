// Package fixture loads the set of repositories the mock GitHub API
// serves, either from a YAML file or from a built-in default.
package fixture

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v2"

	"github.com/repoworks/process-repo-action/internal/validator"
)

var tracer = otel.Tracer("github.com/repoworks/process-repo-action/cmd/mock_github/internal/fixture")

type Repo struct {
	ID            int64  `yaml:"id"`
	FullName      string `yaml:"full_name"      validate:"required"`
	Description   string `yaml:"description"`
	DefaultBranch string `yaml:"default_branch"`
	Private       bool   `yaml:"private"`
}

type Fixture struct {
	// Token is the bearer token the mock requires. Empty accepts any
	// request, authenticated or not.
	Token string `yaml:"token"`
	// RateLimit is the number of requests served before the mock starts
	// answering with 403 rate limit responses. Zero disables the limit.
	RateLimit int    `yaml:"rate_limit" validate:"min=0"`
	Repos     []Repo `yaml:"repos"      validate:"dive"`
}

func Default() *Fixture {
	fix := Fixture{
		Repos: []Repo{
			{
				FullName:    "octocat/hello-world",
				Description: "My first repository on GitHub!",
			},
			{
				FullName:    "octocat/spoon-knife",
				Description: "This repo is for demonstration purposes only.",
			},
			{
				FullName: "octocat/private-notes",
				Private:  true,
			},
		},
	}
	fillDefaults(&fix)

	return &fix
}

func Load(ctx context.Context, path string) (*Fixture, error) {
	_, span := tracer.Start(ctx, "Load", trace.WithAttributes(
		attribute.String("fixture.path", path),
	))
	defer span.End()

	if path == "" {
		span.AddEvent("no fixture path configured, using the built-in fixture")
		span.SetStatus(codes.Ok, "")
		span.RecordError(nil)
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		span.SetStatus(codes.Error, "error reading file")
		span.RecordError(err)
		return nil, err
	}

	fix := Fixture{}
	err = yaml.Unmarshal(content, &fix)
	if err != nil {
		span.SetStatus(codes.Error, "error unmarshalling fixture yaml")
		span.RecordError(err)
		return nil, err
	}
	fillDefaults(&fix)

	span.AddEvent("validating parsed fixture")
	v := validator.Create()
	err = v.Validate(fix)
	if err != nil {
		span.SetStatus(codes.Error, "error validating fixture")
		span.RecordError(err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	span.RecordError(nil)
	return &fix, nil
}

// fillDefaults assigns a branch and a stable synthetic id to entries
// that do not carry their own.
func fillDefaults(fix *Fixture) {
	for i := range fix.Repos {
		if fix.Repos[i].DefaultBranch == "" {
			fix.Repos[i].DefaultBranch = "main"
		}
		if fix.Repos[i].ID == 0 {
			fix.Repos[i].ID = int64(1296269 + i)
		}
	}
}

// Lookup finds a repository by its owner/name pair. Matching is case
// insensitive like the real API.
func (f *Fixture) Lookup(fullName string) (*Repo, bool) {
	for i := range f.Repos {
		if strings.EqualFold(f.Repos[i].FullName, fullName) {
			return &f.Repos[i], true
		}
	}

	return nil, false
}
