package cmd

import (
	"fmt"
	"strings"

	"ado/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the ado configuration file",
	Long: `Inspect and modify the configuration stored in ~/.config/ado/config.yaml.

The personal access token is never stored here; set the ADO_PAT
environment variable instead.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Write a configuration file with the default server and repository
column settings. Fails if a configuration file already exists.`,
	RunE: runConfigInit,
}

// configSetting describes one `config set` flag and where its value lands
// in the document tree.
type configSetting struct {
	flag string
	path []string
}

// configSettings is ordered; the confirmation line lists keys in this order.
var configSettings = []configSetting{
	{flag: "org", path: []string{"org"}},
	{flag: "project", path: []string{"project"}},
	{flag: "server", path: []string{"server"}},
	{flag: "repo-columns", path: []string{"repo", "columns"}},
	{flag: "repo-column-names", path: []string{"repo", "column-names"}},
	{flag: "repo.open", path: []string{"repo", "open"}},
	{flag: "build-columns", path: []string{"build", "columns"}},
	{flag: "build-column-names", path: []string{"build", "column-names"}},
	{flag: "build.open", path: []string{"build", "open"}},
	{flag: "build-top", path: []string{"build", "top"}},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more configuration values",
	Long: `Update configuration values. Only the provided flags are changed;
everything else in the file is preserved.

Examples:
  ado config set --org myorg --project myproject
  ado config set --repo-columns id,name,webUrl --repo-column-names ID,Name,URL
  ado config set --build-top 50 --build.open=false`,
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective configuration",
	Long: `Print all configuration values as sorted dot-notation key: value
lines. The server default is shown even when not explicitly set.`,
	RunE: runConfigList,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}
	if store.Exists() {
		return fmt.Errorf("configuration file already exists at %s", store.FilePath())
	}
	if err := store.Write(config.DefaultDocument()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", store.FilePath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	partial := config.Document{}
	var saved []string

	for _, setting := range configSettings {
		flag := cmd.Flags().Lookup(setting.flag)
		if flag == nil || !flag.Changed {
			continue
		}

		var value any
		switch flag.Value.Type() {
		case "bool":
			value = flag.Value.String() == "true"
		case "int":
			n, err := cmd.Flags().GetInt(setting.flag)
			if err != nil {
				return err
			}
			if n <= 0 {
				return &config.ConfigurationError{
					Key:    strings.Join(setting.path, "."),
					Reason: "must be a positive integer",
				}
			}
			value = n
		default:
			value = flag.Value.String()
		}

		config.SetPath(partial, setting.path, value)
		saved = append(saved, fmt.Sprintf("%s=%v", strings.Join(setting.path, "."), value))
	}

	if len(saved) == 0 {
		return fmt.Errorf("at least one configuration option must be provided")
	}

	store, err := newConfigStore()
	if err != nil {
		return err
	}
	if _, err := store.Update(partial); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved: %s\n", strings.Join(saved, ", "))
	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}
	doc, err := store.Read()
	if err != nil {
		return err
	}
	if _, ok := doc["server"]; !ok {
		doc = config.Merge(doc, config.Document{"server": config.DefaultServer})
	}
	for _, line := range config.Flatten(doc) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func init() {
	configSetCmd.Flags().String("org", "", "Azure DevOps organization name")
	configSetCmd.Flags().String("project", "", "Azure DevOps project name")
	configSetCmd.Flags().String("server", "", "server base URL (for Azure DevOps Server installations)")
	configSetCmd.Flags().String("repo-columns", "", "comma-separated field paths for repo list output")
	configSetCmd.Flags().String("repo-column-names", "", "comma-separated headers for repo list output")
	configSetCmd.Flags().Bool("repo.open", true, "prompt to open a repository after listing")
	configSetCmd.Flags().String("build-columns", "", "comma-separated field paths for build list output")
	configSetCmd.Flags().String("build-column-names", "", "comma-separated headers for build list output")
	configSetCmd.Flags().Bool("build.open", true, "prompt to open a build after listing")
	configSetCmd.Flags().Int("build-top", 0, "maximum number of builds to fetch")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
