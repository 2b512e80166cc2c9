package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ibm-richard/go-tfe/pkg/tfe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewStateCommand creates the state command group.
func NewStateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect workspace state",
		Long:  "Show state versions and their outputs",
	}

	cmd.AddCommand(newStateCurrentCommand())
	cmd.AddCommand(newStateOutputsCommand())

	return cmd
}

func newStateCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current WORKSPACE_ID",
		Short: "Show the current state version",
		Long:  "Display the current state version of a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			stateVersion, err := client.StateVersions().ReadCurrent(context.Background(), args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(stateVersion)
			case OutputFormatYAML:
				return StandardYAMLRenderer(stateVersion)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", stateVersion.ID)
				_ = table.Append("Serial", fmt.Sprintf("%d", stateVersion.Serial))
				_ = table.Append("Lineage", stateVersion.Lineage)
				_ = table.Append("Terraform Version", stateVersion.TerraformVersion)
				_ = table.Append("Resources Processed", boolWord(stateVersion.ResourcesProcessed))
				_ = table.Append("Created", formatDateTime(stateVersion.CreatedAt))
				_ = table.Render()

				return nil
			}
		},
	}
}

func newStateOutputsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "outputs STATE_VERSION_ID",
		Short: "List state version outputs",
		Long:  "List the output values of a state version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.StateVersionOutputs().List(context.Background(), args[0], nil)
			if err != nil {
				return err
			}

			return outputStateVersionOutputs(page.Items)
		},
	}
}

func outputStateVersionOutputs(outputs []tfe.StateVersionOutput) error {
	for i := range outputs {
		if outputs[i].Sensitive {
			outputs[i].Value = Masked
		}
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(outputs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(outputs)
	default:
		if len(outputs) == 0 {
			_, _ = os.Stdout.WriteString("No outputs found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Type", "Value", "Sensitive")

		for _, out := range outputs {
			_ = table.Append(out.Name, out.Type, fmt.Sprintf("%v", out.Value),
				boolWord(out.Sensitive))
		}

		_ = table.Render()

		return nil
	}
}
