package cmd

import (
	"context"
	"fmt"

	"ado/internal/azdo"
	"ado/internal/cli"
	"ado/internal/config"
	"ado/internal/fieldpath"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/build"
	"github.com/spf13/cobra"
)

// Seam for tests; production code never reassigns this.
var fetchBuilds = func(ctx context.Context, cfg *config.Config, repoID string, top int) ([]build.Build, error) {
	client, err := azdo.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.ListBuilds(ctx, repoID, top)
}

var (
	buildListRepoName string
	buildListPattern  string
	buildListTop      int
	buildListOpen     bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Work with builds",
}

var buildListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent builds for a repository",
	Long: `List the most recent builds of a repository as a table. Columns and
headers come from the build.columns and build.column-names settings.

The repository name is resolved to its identifier through the local
cache populated by 'ado repo list'.

Examples:
  ado build list --repo-name my-service
  ado build list --repo-name my-service --top 50
  ado build list --repo-name my-service --pattern 'nightly-*'`,
	RunE: runBuildList,
}

func runBuildList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	settings, err := cfg.Build()
	if err != nil {
		return err
	}
	spec, err := cli.SpecFromSettings(settings)
	if err != nil {
		return err
	}

	repoID, err := resolveRepoID(buildListRepoName)
	if err != nil {
		return err
	}

	top := settings.Top
	if cmd.Flags().Changed("top") {
		if buildListTop <= 0 {
			return fmt.Errorf("top must be a positive integer")
		}
		top = buildListTop
	}

	var builds []build.Build
	err = withProgress("Fetching builds...", func() error {
		var fetchErr error
		builds, fetchErr = fetchBuilds(cmd.Context(), cfg, repoID, top)
		return fetchErr
	})
	if err != nil {
		return err
	}

	records := make([]any, 0, len(builds))
	for _, b := range builds {
		records = append(records, b)
	}
	records, err = cli.FilterByField(records, fieldpath.Parse("definition.name"), buildListPattern)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		if buildListPattern != "" {
			fmt.Fprintf(out, "No builds found matching pattern %q.\n", buildListPattern)
		} else {
			fmt.Fprintf(out, "No builds found for repository %q.\n", buildListRepoName)
		}
		return nil
	}

	if err := cli.RenderTable(out, records, spec); err != nil {
		return err
	}

	shouldOpen := settings.Open
	if cmd.Flags().Changed("open") {
		shouldOpen = buildListOpen
	}
	if !shouldOpen {
		return nil
	}

	index, selected, err := cli.PromptIndex(cmd.InOrStdin(), out, "Enter build number to open (or press Enter to skip): ", len(records))
	if err != nil {
		return err
	}
	if !selected {
		return nil
	}

	b := records[index-1].(build.Build)
	if b.Id == nil {
		return fmt.Errorf("build has no identifier")
	}
	org, err := cfg.Org()
	if err != nil {
		return err
	}
	project, err := cfg.Project()
	if err != nil {
		return err
	}

	url := azdo.BuildURL(cfg.Server(), org, project, *b.Id)
	fmt.Fprintf(out, "Opening: %s\n", url)
	return openBrowser(url)
}

// resolveRepoID maps a repository name to its identifier via the local
// cache. A miss points the user at the command that refreshes it.
func resolveRepoID(name string) (string, error) {
	cache, err := openRepoCache()
	if err != nil {
		return "", err
	}
	defer cache.Close()

	id, found, err := cache.IDByName(name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &azdo.NotFoundError{
			Resource: fmt.Sprintf("repository %q in the local cache", name),
			Hint:     "ado repo list",
		}
	}
	return id, nil
}

func init() {
	buildListCmd.Flags().StringVar(&buildListRepoName, "repo-name", "", "repository name (required)")
	buildListCmd.Flags().StringVarP(&buildListPattern, "pattern", "p", "", "glob pattern to filter builds by pipeline name")
	buildListCmd.Flags().IntVar(&buildListTop, "top", 0, "maximum number of builds to fetch")
	buildListCmd.Flags().BoolVar(&buildListOpen, "open", false, "prompt to open a build after listing")
	_ = buildListCmd.MarkFlagRequired("repo-name")

	buildCmd.AddCommand(buildListCmd)
	rootCmd.AddCommand(buildCmd)
}
