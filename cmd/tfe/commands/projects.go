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

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, get, create, and delete projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list ORG_NAME",
		Short: "List projects",
		Long:  "List the projects of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := listOptionsFromFlags(0, perPage)

			fetch := func(ctx context.Context, opts *tfe.ListOptions) (*tfe.Page[tfe.Project], error) {
				return client.Projects().List(ctx, args[0], opts)
			}

			if allPages {
				projects, err := tfe.FetchAllPages(ctx, fetch, opts, nil)
				if err != nil {
					return err
				}

				return outputProjects(projects, nil, true)
			}

			page, err := fetch(ctx, opts)
			if err != nil {
				return err
			}

			return outputProjects(page.Items, &page.Pagination, false)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func outputProjects(projects []tfe.Project, pagination *tfe.Pagination, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(projects)
	case OutputFormatYAML:
		return StandardYAMLRenderer(projects)
	default:
		if len(projects) == 0 {
			_, _ = os.Stdout.WriteString("No projects found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "ID", "Workspaces", "Created")

		for _, project := range projects {
			_ = table.Append(project.Name, project.ID,
				fmt.Sprintf("%d", project.WorkspaceCount), formatDate(project.CreatedAt))
		}

		_ = table.Render()
		pageFooter(pagination, allPages)

		return nil
	}
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Read(context.Background(), args[0])
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(project)
			case OutputFormatYAML:
				return StandardYAMLRenderer(project)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", project.ID)
				_ = table.Append("Name", project.Name)
				_ = table.Append("Description", project.Description)
				_ = table.Append("Organization", project.Organization)
				_ = table.Append("Workspaces", fmt.Sprintf("%d", project.WorkspaceCount))
				_ = table.Append("Created", formatDateTime(project.CreatedAt))
				_ = table.Render()

				return nil
			}
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create ORG_NAME PROJECT_NAME",
		Short: "Create a project",
		Long:  "Create a new project in an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &tfe.ProjectCreateOptions{Name: args[1]}
			if description != "" {
				opts.Description = &description
			}

			project, err := client.Projects().Create(context.Background(), args[0], opts)
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", project.Name, project.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "project description")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a project by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("project", args[0]) {
				return ErrDeletionAborted
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Projects().Delete(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted project %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
