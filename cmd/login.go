package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"surveyor/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the survey API",
	Long: `Log in with an email and password and keep the session for later commands.
The password is prompted for, or read from SURVEYOR_PASSWORD.`,
	RunE: runLogin,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("email", "e", "", "Account email (required)")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	email, _ := cmd.Flags().GetString("email")

	loginCommand := commands.NewLoginCommand(
		app.UseCaseFactory.MakeAuthentication(),
		app.AccountStore,
		app.PasswordReader,
		app.Logger,
	)
	account, err := loginCommand.Execute(commandContext(cmd), commands.LoginRequest{Email: email})
	if err != nil {
		return withHint(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", account.Name)
	return nil
}
