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

// NewVariablesCommand creates the variables command group.
func NewVariablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variables",
		Aliases: []string{"vars", "var"},
		Short:   "Manage workspace variables",
		Long:    "List, set, and delete workspace variables",
	}

	cmd.AddCommand(newVariablesListCommand())
	cmd.AddCommand(newVariablesSetCommand())
	cmd.AddCommand(newVariablesDeleteCommand())

	return cmd
}

func newVariablesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list WORKSPACE_ID",
		Short: "List variables",
		Long:  "List the variables of a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Variables().List(context.Background(), args[0], nil)
			if err != nil {
				return err
			}

			return outputVariables(page.Items)
		},
	}
}

func outputVariables(variables []tfe.Variable) error {
	// Sensitive values come back empty from the API; mask them explicitly
	// so the table makes that visible.
	for i := range variables {
		if variables[i].Sensitive {
			variables[i].Value = Masked
		}
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(variables)
	case OutputFormatYAML:
		return StandardYAMLRenderer(variables)
	default:
		if len(variables) == 0 {
			_, _ = os.Stdout.WriteString("No variables found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Key", "Value", "Category", "HCL", "Sensitive")

		for _, variable := range variables {
			_ = table.Append(variable.Key, variable.Value, variable.Category,
				boolWord(variable.HCL), boolWord(variable.Sensitive))
		}

		_ = table.Render()

		return nil
	}
}

func newVariablesSetCommand() *cobra.Command {
	var (
		category    string
		description string
		hcl         bool
		sensitive   bool
	)

	cmd := &cobra.Command{
		Use:   "set WORKSPACE_ID KEY VALUE",
		Short: "Set a variable",
		Long:  "Create a workspace variable, or update it if the key already exists",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			workspaceID, key, value := args[0], args[1], args[2]

			existing, err := findVariableByKey(ctx, client, workspaceID, key)
			if err != nil {
				return err
			}

			if existing != nil {
				opts := &tfe.VariableUpdateOptions{Value: &value}
				if description != "" {
					opts.Description = &description
				}

				_, err = client.Variables().Update(ctx, workspaceID, existing.ID, opts)
				if err != nil {
					return err
				}

				fmt.Printf("Updated variable %s\n", key)

				return nil
			}

			opts := &tfe.VariableCreateOptions{
				Key:      key,
				Value:    value,
				Category: category,
			}
			if description != "" {
				opts.Description = &description
			}

			if hcl {
				opts.HCL = &hcl
			}

			if sensitive {
				opts.Sensitive = &sensitive
			}

			_, err = client.Variables().Create(ctx, workspaceID, opts)
			if err != nil {
				return err
			}

			fmt.Printf("Created variable %s\n", key)

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "terraform", "variable category (terraform, env)")
	cmd.Flags().StringVar(&description, "description", "", "variable description")
	cmd.Flags().BoolVar(&hcl, "hcl", false, "parse the value as HCL")
	cmd.Flags().BoolVar(&sensitive, "sensitive", false, "hide the value in the UI and API")

	return cmd
}

func findVariableByKey(ctx context.Context, client tfe.Client, workspaceID, key string) (*tfe.Variable, error) {
	variables, err := tfe.FetchAllPages(ctx,
		func(ctx context.Context, opts *tfe.ListOptions) (*tfe.Page[tfe.Variable], error) {
			return client.Variables().List(ctx, workspaceID, opts)
		}, nil, nil)
	if err != nil {
		return nil, err
	}

	for i := range variables {
		if variables[i].Key == key {
			return &variables[i], nil
		}
	}

	return nil, nil
}

func newVariablesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete WORKSPACE_ID VARIABLE_ID",
		Short: "Delete a variable",
		Long:  "Delete a workspace variable by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("variable", args[1]) {
				return ErrDeletionAborted
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Variables().Delete(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted variable %s\n", args[1])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
