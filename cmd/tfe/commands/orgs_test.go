package commands_test

import (
	"testing"

	"github.com/ibm-richard/go-tfe/cmd/tfe/commands"
	"github.com/stretchr/testify/assert"
)

func TestNewOrgsCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewOrgsCommand()
	assert.Equal(t, "orgs", cmd.Use)
	assert.Equal(t, []string{"organizations", "org"}, cmd.Aliases)
	assert.Equal(t, "Manage organizations", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 4)

	commandNames := make([]string, 0, len(subcommands))
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "delete")
}

func TestOrgsListCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewOrgsCommand()
	cmd := findSubcommand(root, "list")
	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, "List organizations", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("all"))
	assert.NotNil(t, cmd.Flags().Lookup("per-page"))

	allFlag := cmd.Flags().Lookup("all")
	assert.Equal(t, "false", allFlag.DefValue)

	perPageFlag := cmd.Flags().Lookup("per-page")
	assert.Equal(t, "20", perPageFlag.DefValue)
}

func TestOrgsCreateCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewOrgsCommand()
	cmd := findSubcommand(root, "create")
	assert.Equal(t, "create ORG_NAME", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("email"))
}

func TestOrgsDeleteCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewOrgsCommand()
	cmd := findSubcommand(root, "delete")
	assert.Equal(t, "delete ORG_NAME", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	forceFlag := cmd.Flags().Lookup("force")
	assert.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
}
