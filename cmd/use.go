package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/asgcfg/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use",
	Short: "Save default profile and region",
	Long: `Persist a default AWS profile and/or region to ~/.asgcfg/config.yaml.
Saved defaults apply when --profile/--region are not given.

Examples:
  asgcfg use --profile prod-sso --region ap-southeast-1
  asgcfg use --region us-east-1`,
	RunE: runUse,
}

var (
	useProfile string
	useRegion  string
)

func init() {
	rootCmd.AddCommand(useCmd)

	useCmd.Flags().StringVar(&useProfile, "profile", "", "Default AWS profile")
	useCmd.Flags().StringVar(&useRegion, "region", "", "Default AWS region")
}

func runUse(cmd *cobra.Command, args []string) error {
	if useProfile == "" && useRegion == "" {
		return fmt.Errorf("at least one of --profile or --region must be specified")
	}

	if err := config.SetDefaults(useProfile, useRegion); err != nil {
		return fmt.Errorf("failed to save defaults: %w", err)
	}

	fmt.Printf("Defaults saved to %s\n", config.GetConfigPath())
	return nil
}
