package commands

import (
	"bufio"
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

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List, get, create, update, and delete organizations",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())
	cmd.AddCommand(newOrgsCreateCommand())
	cmd.AddCommand(newOrgsDeleteCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations the token can access",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsListCommand(allPages, perPage)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func runOrgsListCommand(allPages bool, perPage int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	opts := listOptionsFromFlags(0, perPage)

	if allPages {
		orgs, err := tfe.FetchAllPages(ctx, client.Organizations().List, opts, nil)
		if err != nil {
			return err
		}

		return outputOrganizations(orgs, nil, true)
	}

	page, err := client.Organizations().List(ctx, opts)
	if err != nil {
		return err
	}

	return outputOrganizations(page.Items, &page.Pagination, false)
}

func outputOrganizations(orgs []tfe.Organization, pagination *tfe.Pagination, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(orgs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orgs)
	default:
		return renderOrganizationTable(orgs, pagination, allPages)
	}
}

func renderOrganizationTable(orgs []tfe.Organization, pagination *tfe.Pagination, allPages bool) error {
	if len(orgs) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Email", "Execution Mode", "Created")

	for _, org := range orgs {
		mode := org.DefaultExecutionMode
		if mode == "" {
			mode = NotAvailable
		}

		_ = table.Append(org.Name, org.Email, mode, formatDate(org.CreatedAt))
	}

	_ = table.Render()
	pageFooter(pagination, allPages)

	return nil
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_NAME",
		Short: "Get organization details",
		Long:  "Display detailed information about a specific organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			org, err := client.Organizations().Read(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputOrganizationDetails(org)
		},
	}
}

func outputOrganizationDetails(org *tfe.Organization) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(org)
	case OutputFormatYAML:
		return StandardYAMLRenderer(org)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Name", org.Name)
		_ = table.Append("Email", org.Email)
		_ = table.Append("External ID", org.ExternalID)
		_ = table.Append("Collaborator Auth Policy", org.CollaboratorAuthPolicy)
		_ = table.Append("Default Execution Mode", org.DefaultExecutionMode)
		_ = table.Append("Cost Estimation", boolWord(org.CostEstimationEnabled))
		_ = table.Append("Created", formatDateTime(org.CreatedAt))
		_ = table.Render()

		return nil
	}
}

func newOrgsCreateCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "create ORG_NAME",
		Short: "Create an organization",
		Long:  "Create a new organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			org, err := client.Organizations().Create(context.Background(), &tfe.OrganizationCreateOptions{
				Name:  args[0],
				Email: email,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created organization %s\n", org.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newOrgsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ORG_NAME",
		Short: "Delete an organization",
		Long:  "Delete an organization and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmDeletion("organization", args[0]) {
				return ErrDeletionAborted
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Organizations().Delete(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted organization %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func confirmDeletion(kind, name string) bool {
	fmt.Printf("Really delete %s %s? (y/N): ", kind, name)

	reader := bufio.NewReader(os.Stdin)

	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == Yes
}
