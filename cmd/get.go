package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vietdv277/asgcfg/internal/aws"
	"github.com/vietdv277/asgcfg/internal/config"
	"github.com/vietdv277/asgcfg/internal/ui"
)

var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Fetch the configuration of an Auto Scaling Group",
	Long: `Fetch an Auto Scaling Group's attributes, scaling policies, and
scheduled actions, normalized into one record.

If no name is provided, an interactive selector will be shown.

Examples:
  asgcfg get web-asg            # Fetch specific group
  asgcfg get web-asg -o json    # Render as JSON
  asgcfg get                    # Interactive selector`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

var getOutput string

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getOutput, "output", "o", "yaml", "Output format: yaml or json")
}

func runGet(cmd *cobra.Command, args []string) error {
	if getOutput != "yaml" && getOutput != "json" {
		return fmt.Errorf("unsupported output format %q (expected yaml or json)", getOutput)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	var groupName string

	if len(args) > 0 {
		groupName = args[0]
	} else {
		// Interactive selection
		groups, err := client.ListGroups(nil)
		if err != nil {
			return fmt.Errorf("failed to list Auto Scaling Groups: %w", err)
		}

		if len(groups) == 0 {
			fmt.Println("No Auto Scaling Groups found")
			return nil
		}

		selected, err := ui.SelectGroup(groups)
		if err != nil {
			return err
		}
		groupName = selected.Name
	}

	cfg, err := client.FetchGroupConfig(groupName)
	if err != nil {
		return fmt.Errorf("failed to fetch group configuration: %w", err)
	}

	if cfg == nil {
		fmt.Printf("No Auto Scaling Group named %q\n", groupName)
		return nil
	}

	switch getOutput {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Println(string(data))
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Print(string(data))
	}

	return nil
}

// newClient builds the AWS client from the resolved profile/region plus any
// static keys saved in the config file.
func newClient() (*aws.Client, error) {
	opts := []aws.ClientOption{
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	}

	if saved, err := config.LoadConfig(); err == nil {
		if saved.AccessKeyID != "" && saved.SecretAccessKey != "" {
			opts = append(opts, aws.WithStaticCredentials(saved.AccessKeyID, saved.SecretAccessKey))
		}
	}

	client, err := aws.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}
