package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/repoworks/process-repo-action/internal/types"
)

const name = "github.com/repoworks/process-repo-action/cmd/action/internal/github"

var tracer = otel.Tracer(name)

//go:generate mockgen -destination ./mock/mock.go -package mock . RepositoryFetcher

// RepositoryFetcher retrieves metadata for a single repository. A run
// performs exactly one fetch; there is no retry behind this interface.
type RepositoryFetcher interface {
	FetchRepository(ctx context.Context, ref types.RepoRef) (*types.RepoMetadata, error)
}

// Ensure Client implements RepositoryFetcher interface.
var _ RepositoryFetcher = (*Client)(nil)

type Client struct {
	apiClient *github.Client
}

// Create builds a token-authenticated client. baseURL overrides the API
// endpoint when non-empty, which covers enterprise installs and the local
// mock server alike.
func Create(token string, baseURL string, timeout time.Duration) (*Client, error) {
	httpClient := &http.Client{Timeout: timeout}

	client := github.NewClient(httpClient).WithAuthToken(token)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to set the API base URL: %w", err)
		}
	}

	return &Client{apiClient: client}, nil
}

func (c *Client) FetchRepository(
	ctx context.Context,
	ref types.RepoRef,
) (*types.RepoMetadata, error) {
	ctx, span := tracer.Start(ctx, "FetchRepository", trace.WithAttributes(
		attribute.String("repository", ref.FullName()),
	))
	defer span.End()

	repo, _, err := c.apiClient.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		remoteErr := Classify(err)
		span.RecordError(remoteErr)
		span.SetStatus(codes.Error, "failed to fetch repository metadata")
		return nil, remoteErr
	}

	meta := &types.RepoMetadata{
		FullName:      repo.GetFullName(),
		Name:          repo.GetName(),
		OwnerLogin:    repo.GetOwner().GetLogin(),
		Description:   repo.GetDescription(),
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "fetched repository metadata")
	return meta, nil
}
