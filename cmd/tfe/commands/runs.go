package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRunsCommand creates the runs command group.
func NewRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "runs",
		Aliases: []string{"run"},
		Short:   "Manage runs",
		Long:    "List, get, create, apply, discard, and cancel runs",
	}

	cmd.AddCommand(newRunsListCommand())
	cmd.AddCommand(newRunsGetCommand())
	cmd.AddCommand(newRunsCreateCommand())
	cmd.AddCommand(newRunsActionCommand("apply", "Confirm and apply a run",
		func(ctx context.Context, client tfe.Client, runID, comment string) error {
			return client.Runs().Apply(ctx, runID, comment)
		}))
	cmd.AddCommand(newRunsActionCommand("discard", "Discard a run",
		func(ctx context.Context, client tfe.Client, runID, comment string) error {
			return client.Runs().Discard(ctx, runID, comment)
		}))
	cmd.AddCommand(newRunsActionCommand("cancel", "Cancel a run",
		func(ctx context.Context, client tfe.Client, runID, comment string) error {
			return client.Runs().Cancel(ctx, runID, comment)
		}))

	return cmd
}

func newRunsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list WORKSPACE_ID",
		Short: "List runs",
		Long:  "List the runs of a workspace, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := listOptionsFromFlags(0, perPage)

			fetch := func(ctx context.Context, opts *tfe.ListOptions) (*tfe.Page[tfe.Run], error) {
				return client.Runs().List(ctx, args[0], opts)
			}

			if allPages {
				runs, err := tfe.FetchAllPages(ctx, fetch, opts, nil)
				if err != nil {
					return err
				}

				return outputRuns(runs, nil, true)
			}

			page, err := fetch(ctx, opts)
			if err != nil {
				return err
			}

			return outputRuns(page.Items, &page.Pagination, false)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func outputRuns(runs []tfe.Run, pagination *tfe.Pagination, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(runs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(runs)
	default:
		if len(runs) == 0 {
			_, _ = os.Stdout.WriteString("No runs found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Status", "Message", "Destroy", "Created")

		for _, run := range runs {
			_ = table.Append(run.ID, run.Status, run.Message,
				boolWord(run.IsDestroy), formatDateTime(run.CreatedAt))
		}

		_ = table.Render()
		pageFooter(pagination, allPages)

		return nil
	}
}

func newRunsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RUN_ID",
		Short: "Get run details",
		Long:  "Display detailed information about a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			run, err := client.Runs().Read(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputRunDetails(run)
		},
	}
}

func outputRunDetails(run *tfe.Run) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(run)
	case OutputFormatYAML:
		return StandardYAMLRenderer(run)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", run.ID)
		_ = table.Append("Status", run.Status)
		_ = table.Append("Message", run.Message)
		_ = table.Append("Source", run.Source)
		_ = table.Append("Destroy", boolWord(run.IsDestroy))
		_ = table.Append("Auto Apply", boolWord(run.AutoApply))
		_ = table.Append("Has Changes", boolWord(run.HasChanges))
		_ = table.Append("Workspace ID", run.WorkspaceID)
		_ = table.Append("Plan ID", run.PlanID)
		_ = table.Append("Apply ID", run.ApplyID)
		_ = table.Append("Created", formatDateTime(run.CreatedAt))
		_ = table.Render()

		return nil
	}
}

func newRunsCreateCommand() *cobra.Command {
	var (
		workspaceID string
		message     string
		isDestroy   bool
		autoApply   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a run",
		Long:  "Queue a new run in a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &tfe.RunCreateOptions{WorkspaceID: workspaceID}
			if message != "" {
				opts.Message = &message
			}

			if isDestroy {
				opts.IsDestroy = &isDestroy
			}

			if autoApply {
				opts.AutoApply = &autoApply
			}

			run, err := client.Runs().Create(context.Background(), opts)
			if err != nil {
				return err
			}

			fmt.Printf("Created run %s (%s)\n", run.ID, run.Status)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "workspace ID (required)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "run message")
	cmd.Flags().BoolVar(&isDestroy, "destroy", false, "plan the destruction of all resources")
	cmd.Flags().BoolVar(&autoApply, "auto-apply", false, "apply without confirmation")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

func newRunsActionCommand(name, short string,
	action func(ctx context.Context, client tfe.Client, runID, comment string) error,
) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   name + " RUN_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = action(context.Background(), client, args[0], comment)
			if err != nil {
				return err
			}

			fmt.Printf("Run %s: %s requested\n", args[0], name)

			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "comment to record with the action")

	return cmd
}
