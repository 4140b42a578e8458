package account

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	signupCmd = &cobra.Command{
		Use:   "signup",
		Short: "Create a new account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, password, err := credentials(cmd)
			if err != nil {
				return err
			}
			acc, err := svc.Accounts.Signup(username, password)
			if err != nil {
				return err
			}
			fmt.Printf("account %s created, you are now logged in\n", acc.Username)
			return nil
		},
	}
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, password, err := credentials(cmd)
			if err != nil {
				return err
			}
			acc, err := svc.Accounts.Login(username, password)
			if err != nil {
				return err
			}

			collection, err := svc.Books.List(acc)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s (%d books in your collection)\n", acc.Username, len(collection))
			return nil
		},
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Log out of the active session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := svc.Accounts.Logout(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the account of the active session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			acc, ok, err := svc.Accounts.Restore()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Println(acc.Username)
			return nil
		},
	}
)

// credentials reads username and password from flags, prompting on the
// terminal for whatever is missing. The password prompt does not echo.
func credentials(cmd *cobra.Command) (string, string, error) {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	if username == "" {
		fmt.Print("Username: ")
		if _, err := fmt.Scanln(&username); err != nil {
			return "", "", fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(username)
	}

	if password == "" {
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = string(bytePassword)
	}

	return username, password, nil
}
