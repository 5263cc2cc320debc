package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/asgcfg/internal/config"
)

var (
	// Global flags
	profile string
	region  string
)

var rootCmd = &cobra.Command{
	Use:   "asgcfg",
	Short: "Inspect AWS Auto Scaling Group configuration",
	Long: `asgcfg fetches the configuration of AWS Auto Scaling Groups and renders
it in a stable, normalized schema: group attributes, scaling policies,
and scheduled actions merged into one record.

Examples:
  asgcfg get web-asg               # Fetch one group's full configuration
  asgcfg get web-asg -o json       # Same, rendered as JSON
  asgcfg get                       # Interactive group selector
  asgcfg ls --name web             # List groups matching a pattern
  asgcfg status                    # Show profile/region and verify auth`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("ASGCFG")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > ~/.asgcfg/config.yaml > AWS_PROFILE env
	if profile == "" {
		if saved := config.GetSavedProfile(); saved != "" {
			profile = saved
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	// Priority for region: --region flag > ~/.asgcfg/config.yaml > AWS env vars
	if region == "" {
		if saved := config.GetSavedRegion(); saved != "" {
			region = saved
		} else {
			region = os.Getenv("AWS_REGION")
			if region == "" {
				region = os.Getenv("AWS_DEFAULT_REGION")
			}
		}
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}
