package cmd

import (
	"os"

	"ado/internal/config"
	"ado/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a handled failure (validation, not-found,
	// access, auth). CLI-usage errors are reported by cobra itself.
	ExitCodeError = 1
)

var (
	rootConfigDir string
	rootDebug     bool
	rootQuiet     bool
)

// rootCmd represents the base command for the ado application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ado",
	Short: "Work with Azure DevOps from the command line",
	Long: `ado is a small CLI for Azure DevOps: list repositories and builds
with configurable columns, open repositories, builds, and work items in
the browser, and manage the local configuration that drives it all.

Configuration lives in ~/.config/ado/config.yaml; the personal access
token is read from the ADO_PAT environment variable and never persisted.`,
	// SilenceUsage prevents cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if rootDebug {
			level = logging.LevelDebug
		}
		logging.Init(level, cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command.
// This is called from the main package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It runs the root command and maps handled failures to a non-zero exit.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ado version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

// newConfigStore creates the config store, honoring the --config override.
func newConfigStore() (*config.Store, error) {
	if rootConfigDir != "" {
		return config.NewStoreWithPath(rootConfigDir), nil
	}
	return config.NewStore()
}

// loadConfig reads the persisted document into a per-invocation accessor.
func loadConfig() (*config.Config, error) {
	store, err := newConfigStore()
	if err != nil {
		return nil, err
	}
	return config.Load(store)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigDir, "config", "", "config directory (default ~/.config/ado)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
