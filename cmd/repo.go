package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"ado/internal/azdo"
	"ado/internal/browser"
	"ado/internal/cli"
	"ado/internal/config"
	"ado/internal/fieldpath"
	"ado/internal/gitutil"
	"ado/internal/repocache"
	"ado/pkg/logging"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/spf13/cobra"
)

// Seams for tests; production code never reassigns these.
var (
	openBrowser       = browser.Open
	gitIsRepository   = gitutil.IsRepository
	gitRemoteURL      = gitutil.RemoteURL
	gitCurrentBranch  = gitutil.CurrentBranch
	fetchRepositories = func(ctx context.Context, cfg *config.Config) ([]git.GitRepository, error) {
		client, err := azdo.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client.ListRepositories(ctx)
	}
)

var (
	repoListPattern string
	repoListOpen    bool
	repoBrowseRef   string
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Work with repositories",
}

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repositories in the configured project",
	Long: `List the repositories of the configured project as a table. Columns
and headers come from the repo.columns and repo.column-names settings.

Each listing also refreshes the local repository cache that maps names
to identifiers for other commands.

Examples:
  ado repo list
  ado repo list --pattern 'api-*'
  ado repo list --open`,
	RunE: runRepoList,
}

var repoBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the current repository in the browser",
	Long: `Derive the Azure DevOps web URL from the origin remote of the current
git repository and open it, pinned to the checked-out branch.

Examples:
  ado repo browse
  ado repo browse --branch main`,
	RunE: runRepoBrowse,
}

// openRepoCache opens the local name→ID cache, honoring --config.
func openRepoCache() (*repocache.Cache, error) {
	if rootConfigDir != "" {
		return repocache.OpenPath(filepath.Join(rootConfigDir, "cache.db"))
	}
	return repocache.Open()
}

func runRepoList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	project, err := cfg.Project()
	if err != nil {
		return err
	}
	settings, err := cfg.Repo()
	if err != nil {
		return err
	}
	spec, err := cli.SpecFromSettings(settings)
	if err != nil {
		return err
	}

	var repos []git.GitRepository
	err = withProgress("Fetching repositories...", func() error {
		var fetchErr error
		repos, fetchErr = fetchRepositories(cmd.Context(), cfg)
		return fetchErr
	})
	if err != nil {
		return err
	}

	refreshRepoCache(repos)

	records := make([]any, 0, len(repos))
	for _, repo := range repos {
		records = append(records, repo)
	}
	records, err = cli.FilterByField(records, fieldpath.Parse("name"), repoListPattern)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		if repoListPattern != "" {
			fmt.Fprintf(out, "No repositories found matching pattern %q.\n", repoListPattern)
		} else {
			fmt.Fprintf(out, "No repositories found in project %q.\n", project)
		}
		return nil
	}

	if err := cli.RenderTable(out, records, spec); err != nil {
		return err
	}

	shouldOpen := settings.Open
	if cmd.Flags().Changed("open") {
		shouldOpen = repoListOpen
	}
	if !shouldOpen {
		return nil
	}

	index, selected, err := cli.PromptIndex(cmd.InOrStdin(), out, "Enter repository number to open (or press Enter to skip): ", len(records))
	if err != nil {
		return err
	}
	if !selected {
		return nil
	}

	repo := records[index-1].(git.GitRepository)
	url := repoWebURL(repo)
	if url == "" {
		return fmt.Errorf("repository has no web URL")
	}
	fmt.Fprintf(out, "Opening: %s\n", url)
	return openBrowser(url)
}

// refreshRepoCache replaces cached name→ID entries. Cache trouble never
// fails the listing; it only costs other commands a lookup.
func refreshRepoCache(repos []git.GitRepository) {
	cache, err := openRepoCache()
	if err != nil {
		logging.Warn("RepoCache", "Could not open repository cache: %v", err)
		return
	}
	defer cache.Close()

	entries := make([]repocache.Entry, 0, len(repos))
	for _, repo := range repos {
		if repo.Id == nil || repo.Name == nil {
			continue
		}
		entries = append(entries, repocache.Entry{ID: repo.Id.String(), Name: *repo.Name})
	}
	if err := cache.UpsertAll(entries); err != nil {
		logging.Warn("RepoCache", "Could not refresh repository cache: %v", err)
	}
}

func repoWebURL(repo git.GitRepository) string {
	if repo.WebUrl != nil && *repo.WebUrl != "" {
		return *repo.WebUrl
	}
	if repo.RemoteUrl != nil {
		return *repo.RemoteUrl
	}
	return ""
}

func runRepoBrowse(cmd *cobra.Command, args []string) error {
	if !gitIsRepository("") {
		return fmt.Errorf("not in a git repository")
	}
	remote, ok := gitRemoteURL("", "origin")
	if !ok {
		return fmt.Errorf("no remote 'origin' found")
	}
	info, ok := azdo.ParseRemoteURL(remote)
	if !ok {
		return fmt.Errorf("remote URL %q is not an Azure DevOps repository URL", remote)
	}

	branch := repoBrowseRef
	if branch == "" {
		branch, _ = gitCurrentBranch("")
	}

	url := azdo.RepoURL(info.Server, info.Org, info.Project, info.Repo, branch)
	fmt.Fprintf(cmd.OutOrStdout(), "Opening: %s\n", url)
	return openBrowser(url)
}

func init() {
	repoListCmd.Flags().StringVarP(&repoListPattern, "pattern", "p", "", "glob pattern to filter repositories by name")
	repoListCmd.Flags().BoolVar(&repoListOpen, "open", false, "prompt to open a repository after listing")

	repoBrowseCmd.Flags().StringVar(&repoBrowseRef, "branch", "", "branch to open (default: the checked-out branch)")

	repoCmd.AddCommand(repoListCmd)
	repoCmd.AddCommand(repoBrowseCmd)
	rootCmd.AddCommand(repoCmd)
}
