package azdo

import (
	"context"
	"fmt"

	"ado/internal/config"
	"ado/pkg/logging"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
)

// gitAPI is the slice of the SDK git client this package consumes.
// Narrowing the interface keeps the wrapper testable without standing up
// the full SDK surface.
type gitAPI interface {
	GetRepositories(ctx context.Context, args git.GetRepositoriesArgs) (*[]git.GitRepository, error)
	GetRepository(ctx context.Context, args git.GetRepositoryArgs) (*git.GitRepository, error)
}

// buildAPI is the slice of the SDK build client this package consumes.
type buildAPI interface {
	GetBuilds(ctx context.Context, args build.GetBuildsArgs) (*build.GetBuildsResponseValue, error)
}

// Client wraps the vendor SDK connection for the configured organization.
// All SDK failures are translated into the package error taxonomy before
// they reach a command.
type Client struct {
	project string
	git     gitAPI
	build   buildAPI
}

// New creates a Client from the resolved configuration. It fails fast with
// a ConfigurationError when organization, project, or token are missing.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	org, err := cfg.Org()
	if err != nil {
		return nil, err
	}
	project, err := cfg.Project()
	if err != nil {
		return nil, err
	}
	pat, err := cfg.PAT()
	if err != nil {
		return nil, err
	}

	orgURL := fmt.Sprintf("%s/%s", cfg.Server(), org)
	connection := azuredevops.NewPatConnection(orgURL, pat)

	gitClient, err := git.NewClient(ctx, connection)
	if err != nil {
		return nil, translateError(err, "organization "+org)
	}
	buildClient, err := build.NewClient(ctx, connection)
	if err != nil {
		return nil, translateError(err, "organization "+org)
	}

	logging.Debug("AzdoClient", "Connected to %s", orgURL)
	return &Client{project: project, git: gitClient, build: buildClient}, nil
}

// Project returns the project the client operates on.
func (c *Client) Project() string {
	return c.project
}

// ListRepositories lists all repositories in the configured project.
func (c *Client) ListRepositories(ctx context.Context) ([]git.GitRepository, error) {
	repos, err := c.git.GetRepositories(ctx, git.GetRepositoriesArgs{
		Project: &c.project,
	})
	if err != nil {
		return nil, translateError(err, "project "+c.project)
	}
	if repos == nil {
		return nil, nil
	}
	return *repos, nil
}

// GetRepository fetches a single repository by name or identifier.
func (c *Client) GetRepository(ctx context.Context, repoID string) (*git.GitRepository, error) {
	repo, err := c.git.GetRepository(ctx, git.GetRepositoryArgs{
		Project:      &c.project,
		RepositoryId: &repoID,
	})
	if err != nil {
		return nil, translateError(err, "repository "+repoID)
	}
	return repo, nil
}

// ListBuilds lists the most recent builds for a repository, bounded by top.
func (c *Client) ListBuilds(ctx context.Context, repoID string, top int) ([]build.Build, error) {
	repoType := "TfsGit"
	args := build.GetBuildsArgs{
		Project:        &c.project,
		RepositoryId:   &repoID,
		RepositoryType: &repoType,
	}
	if top > 0 {
		args.Top = &top
	}

	resp, err := c.build.GetBuilds(ctx, args)
	if err != nil {
		return nil, translateError(err, "builds for repository "+repoID)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Value, nil
}
