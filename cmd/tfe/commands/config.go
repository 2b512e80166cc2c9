package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CLIConfig is the on-disk configuration stored in ~/.tfe/config.yml.
type CLIConfig struct {
	Address string `yaml:"address,omitempty"`
	Token   string `yaml:"token,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

var errUnknownConfigKey = errors.New("unknown config key")

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".tfe", "config.yml"), nil
}

func loadCLIConfig() *CLIConfig {
	config := &CLIConfig{}

	path, err := configPath()
	if err != nil {
		return config
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

func saveCLIConfig(config *CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and modify the CLI configuration stored in ~/.tfe/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the resolved CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			token := NotAvailable
			if config.Token != "" {
				token = Masked
			}

			address := config.Address
			if address == "" {
				address = NotAvailable
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				view := map[string]string{
					"address": address,
					"token":   token,
					"output":  config.Output,
				}
				if output == OutputFormatJSON {
					return StandardJSONRenderer(view)
				}

				return StandardYAMLRenderer(view)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Address", address)
				_ = table.Append("Token", token)
				_ = table.Append("Output", config.Output)
				_ = table.Render()

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set address, token, or output in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigKey(args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove address, token, or output from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigKey(args[0], "")
		},
	}
}

func setConfigKey(key, value string) error {
	config := loadCLIConfig()

	switch key {
	case "address":
		config.Address = value
	case "token":
		config.Token = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %s", errUnknownConfigKey, key)
	}

	return saveCLIConfig(config)
}
