package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"surveyor/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	Long:  `Create a new account with the given name and email. The password is prompted for twice.`,
	RunE:  runSignup,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(signupCmd)

	signupCmd.Flags().StringP("name", "n", "", "Account name (required)")
	signupCmd.Flags().StringP("email", "e", "", "Account email (required)")

	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
}

func runSignup(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")

	signupCommand := commands.NewSignupCommand(
		app.UseCaseFactory.MakeAddAccount(),
		app.AccountStore,
		app.PasswordReader,
		app.Logger,
	)
	account, err := signupCommand.Execute(commandContext(cmd), commands.SignupRequest{
		Name:  name,
		Email: email,
	})
	if err != nil {
		return withHint(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed up as %s\n", account.Name)
	return nil
}
