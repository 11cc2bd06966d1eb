package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"surveyor/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the current session",
	RunE:  runLogout,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	if err := commands.NewLogoutCommand(app.AccountStore, app.Logger).Execute(commandContext(cmd)); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}
