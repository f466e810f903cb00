package cmd

import (
	"bytes"
	"strings"
	"testing"

	"ado/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the CLI with the given args against an isolated config
// directory, feeding in as stdin and capturing combined output.
func executeCommand(t *testing.T, configDir, in string, args ...string) (string, error) {
	t.Helper()
	resetCommandState(t)

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetArgs(append([]string{"--config", configDir}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetCommandState clears flag values and parse state left over from a
// previous Execute; cobra commands are package singletons.
func resetCommandState(t *testing.T) {
	t.Helper()

	rootConfigDir, rootDebug, rootQuiet = "", false, false
	repoListPattern, repoListOpen, repoBrowseRef = "", false, ""
	buildListRepoName, buildListPattern, buildListTop, buildListOpen = "", "", 0, false
	workItemID = 0

	commands := []*cobra.Command{
		configInitCmd, configSetCmd, configListCmd,
		repoListCmd, repoBrowseCmd, buildListCmd, workItemBrowseCmd,
	}
	for _, c := range commands {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
}

// seedConfig writes a config document into dir for a test run.
func seedConfig(t *testing.T, dir string, doc config.Document) {
	t.Helper()
	store := config.NewStoreWithPath(dir)
	require.NoError(t, store.Write(doc))
}

// captureBrowser replaces the browser opener for the duration of a test and
// returns the slice of opened URLs.
func captureBrowser(t *testing.T) *[]string {
	t.Helper()
	var opened []string
	orig := openBrowser
	openBrowser = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	t.Cleanup(func() { openBrowser = orig })
	return &opened
}
