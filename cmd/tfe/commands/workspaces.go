package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWorkspacesCommand creates the workspaces command group.
func NewWorkspacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"workspace", "ws"},
		Short:   "Manage workspaces",
		Long:    "List, get, create, update, delete, lock, and unlock workspaces",
	}

	cmd.AddCommand(newWorkspacesListCommand())
	cmd.AddCommand(newWorkspacesGetCommand())
	cmd.AddCommand(newWorkspacesCreateCommand())
	cmd.AddCommand(newWorkspacesDeleteCommand())
	cmd.AddCommand(newWorkspacesLockCommand())
	cmd.AddCommand(newWorkspacesUnlockCommand())

	return cmd
}

func newWorkspacesListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list ORG_NAME",
		Short: "List workspaces",
		Long:  "List the workspaces of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspacesListCommand(args[0], search, allPages, perPage)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "filter by name substring")

	return cmd
}

func runWorkspacesListCommand(organization, search string, allPages bool, perPage int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	opts := listOptionsFromFlags(0, perPage)
	opts.Search = search

	fetch := func(ctx context.Context, opts *tfe.ListOptions) (*tfe.Page[tfe.Workspace], error) {
		return client.Workspaces().List(ctx, organization, opts)
	}

	if allPages {
		workspaces, err := tfe.FetchAllPages(ctx, fetch, opts, nil)
		if err != nil {
			return err
		}

		return outputWorkspaces(workspaces, nil, true)
	}

	page, err := fetch(ctx, opts)
	if err != nil {
		return err
	}

	return outputWorkspaces(page.Items, &page.Pagination, false)
}

func outputWorkspaces(workspaces []tfe.Workspace, pagination *tfe.Pagination, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(workspaces)
	case OutputFormatYAML:
		return StandardYAMLRenderer(workspaces)
	default:
		return renderWorkspaceTable(workspaces, pagination, allPages)
	}
}

func renderWorkspaceTable(workspaces []tfe.Workspace, pagination *tfe.Pagination, allPages bool) error {
	if len(workspaces) == 0 {
		_, _ = os.Stdout.WriteString("No workspaces found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "Execution Mode", "Terraform", "Locked", "Resources")

	for _, workspace := range workspaces {
		_ = table.Append(workspace.Name, workspace.ID, workspace.ExecutionMode,
			workspace.TerraformVersion, boolWord(workspace.Locked),
			fmt.Sprintf("%d", workspace.ResourceCount))
	}

	_ = table.Render()
	pageFooter(pagination, allPages)

	return nil
}

// resolveWorkspace accepts either a workspace ID or ORG/NAME.
func resolveWorkspace(ctx context.Context, client tfe.Client, ref string) (*tfe.Workspace, error) {
	if org, name, ok := strings.Cut(ref, "/"); ok {
		return client.Workspaces().ReadByName(ctx, org, name)
	}

	return client.Workspaces().Read(ctx, ref)
}

func newWorkspacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get WORKSPACE_ID | ORG/NAME",
		Short: "Get workspace details",
		Long:  "Display detailed information about a workspace, by ID or by ORG/NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			workspace, err := resolveWorkspace(context.Background(), client, args[0])
			if err != nil {
				return err
			}

			return outputWorkspaceDetails(workspace)
		},
	}
}

func outputWorkspaceDetails(workspace *tfe.Workspace) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(workspace)
	case OutputFormatYAML:
		return StandardYAMLRenderer(workspace)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", workspace.ID)
		_ = table.Append("Name", workspace.Name)
		_ = table.Append("Description", workspace.Description)
		_ = table.Append("Organization", workspace.Organization)
		_ = table.Append("Project ID", workspace.ProjectID)
		_ = table.Append("Execution Mode", workspace.ExecutionMode)
		_ = table.Append("Auto Apply", boolWord(workspace.AutoApply))
		_ = table.Append("Terraform Version", workspace.TerraformVersion)
		_ = table.Append("Working Directory", workspace.WorkingDirectory)
		_ = table.Append("Locked", boolWord(workspace.Locked))
		_ = table.Append("Resources", fmt.Sprintf("%d", workspace.ResourceCount))
		_ = table.Append("Tags", strings.Join(workspace.Tags, ", "))
		_ = table.Append("Created", formatDateTime(workspace.CreatedAt))
		_ = table.Append("Updated", formatDateTime(workspace.UpdatedAt))
		_ = table.Render()

		return nil
	}
}

func newWorkspacesCreateCommand() *cobra.Command {
	var (
		description      string
		executionMode    string
		terraformVersion string
		workingDirectory string
		projectID        string
		autoApply        bool
	)

	cmd := &cobra.Command{
		Use:   "create ORG_NAME WORKSPACE_NAME",
		Short: "Create a workspace",
		Long:  "Create a new workspace in an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &tfe.WorkspaceCreateOptions{Name: args[1]}
			if description != "" {
				opts.Description = &description
			}

			if executionMode != "" {
				opts.ExecutionMode = &executionMode
			}

			if terraformVersion != "" {
				opts.TerraformVersion = &terraformVersion
			}

			if workingDirectory != "" {
				opts.WorkingDirectory = &workingDirectory
			}

			if autoApply {
				opts.AutoApply = &autoApply
			}

			opts.ProjectID = projectID

			workspace, err := client.Workspaces().Create(context.Background(), args[0], opts)
			if err != nil {
				return err
			}

			fmt.Printf("Created workspace %s (%s)\n", workspace.Name, workspace.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "workspace description")
	cmd.Flags().StringVar(&executionMode, "execution-mode", "", "execution mode (remote, local, agent)")
	cmd.Flags().StringVar(&terraformVersion, "terraform-version", "", "Terraform version")
	cmd.Flags().StringVar(&workingDirectory, "working-directory", "", "working directory")
	cmd.Flags().StringVar(&projectID, "project", "", "project ID to create the workspace in")
	cmd.Flags().BoolVar(&autoApply, "auto-apply", false, "apply runs automatically")

	return cmd
}

func newWorkspacesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete WORKSPACE_ID",
		Short: "Delete a workspace",
		Long:  "Delete a workspace by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("workspace", args[0]) {
				return ErrDeletionAborted
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Workspaces().Delete(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted workspace %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newWorkspacesLockCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "lock WORKSPACE_ID",
		Short: "Lock a workspace",
		Long:  "Lock a workspace so no new runs can start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			workspace, err := client.Workspaces().Lock(context.Background(), args[0], reason)
			if err != nil {
				return err
			}

			fmt.Printf("Locked workspace %s\n", workspace.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason for locking")

	return cmd
}

func newWorkspacesUnlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock WORKSPACE_ID",
		Short: "Unlock a workspace",
		Long:  "Release the lock on a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			workspace, err := client.Workspaces().Unlock(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Unlocked workspace %s\n", workspace.Name)

			return nil
		},
	}
}
