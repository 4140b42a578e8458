package account

import (
	"github.com/Cbush039/book-review-app/cmd/util"
	"github.com/spf13/cobra"
)

var (
	svc *util.Services

	// AccountCommands represents the account command group
	AccountCommands = &cobra.Command{
		Use:               "account",
		Short:             "Manage accounts and the active session",
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add credential flags shared by signup and login
	signupCmd.Flags().StringP("username", "u", "", util.WrapString("Username of the account"))
	signupCmd.Flags().StringP("password", "p", "", util.WrapString("Password of the account (prompted when omitted)"))
	loginCmd.Flags().StringP("username", "u", "", util.WrapString("Username of the account"))
	loginCmd.Flags().StringP("password", "p", "", util.WrapString("Password of the account (prompted when omitted)"))

	// Add subcommands
	AccountCommands.AddCommand(signupCmd)
	AccountCommands.AddCommand(loginCmd)
	AccountCommands.AddCommand(logoutCmd)
	AccountCommands.AddCommand(whoamiCmd)
}

// setup opens the store and wires the services
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	svc, err = util.OpenServices()
	return err
}

func teardown(_ *cobra.Command, _ []string) {
	if svc != nil {
		svc.Close()
	}
}
