package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
	"github.com/ibm-richard/go-tfe/pkg/tfeclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		address string
		token   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Terraform Enterprise",
		Long:  "Store an API token for a Terraform Enterprise or HCP Terraform address",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				address = viper.GetString("address")
			}

			if address == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Printf("Address [%s]: ", constants.DefaultAddress)
				address, _ = reader.ReadString('\n')
				address = strings.TrimSpace(address)
			}

			if address == "" {
				address = constants.DefaultAddress
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))
			}

			if token == "" {
				return ErrNoTokenConfigured
			}

			client, err := tfeclient.New(&tfe.Config{Address: address, Token: token})
			if err != nil {
				return err
			}

			// Verify the token before saving it.
			_, err = client.Organizations().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			config := loadCLIConfig()
			config.Address = address
			config.Token = token

			err = saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in to %s\n", address)

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "API address")
	cmd.Flags().StringVar(&token, "with-token", "", "API token (prompted if not given)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of Terraform Enterprise",
		Long:  "Remove the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()
			if config.Token == "" {
				fmt.Println("Not logged in")

				return nil
			}

			config.Token = ""

			err := saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
