package cmd

import (
	"fmt"

	"ado/internal/azdo"

	"github.com/spf13/cobra"
)

var workItemID int

var workItemCmd = &cobra.Command{
	Use:     "workitem",
	Aliases: []string{"wi"},
	Short:   "Work with work items",
}

var workItemBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open a work item in the browser",
	Long: `Open the edit page of a work item in the configured organization and
project.

Examples:
  ado workitem browse --id 1234
  ado wi browse --id 1234`,
	RunE: runWorkItemBrowse,
}

func runWorkItemBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	org, err := cfg.Org()
	if err != nil {
		return err
	}
	project, err := cfg.Project()
	if err != nil {
		return err
	}

	url := azdo.WorkItemURL(cfg.Server(), org, project, workItemID)
	fmt.Fprintf(cmd.OutOrStdout(), "Opening: %s\n", url)
	return openBrowser(url)
}

func init() {
	workItemBrowseCmd.Flags().IntVar(&workItemID, "id", 0, "work item identifier (required)")
	_ = workItemBrowseCmd.MarkFlagRequired("id")

	workItemCmd.AddCommand(workItemBrowseCmd)
	rootCmd.AddCommand(workItemCmd)
}
