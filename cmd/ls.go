package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/asgcfg/internal/aws"
	"github.com/vietdv277/asgcfg/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List Auto Scaling Groups",
	Long: `List Auto Scaling Groups with their capacity settings.

Examples:
  asgcfg ls               # List all groups
  asgcfg ls --name web    # Filter by name pattern`,
	RunE: runList,
}

var lsNamePattern string

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().StringVar(&lsNamePattern, "name", "", "Filter groups by name pattern")
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	groups, err := client.ListGroups(&aws.ListGroupsInput{
		NamePattern: lsNamePattern,
	})
	if err != nil {
		return fmt.Errorf("failed to list Auto Scaling Groups: %w", err)
	}

	if len(groups) == 0 {
		fmt.Println("No Auto Scaling Groups found")
		return nil
	}

	ui.PrintGroupTable(groups)
	return nil
}
