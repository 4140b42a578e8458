package cmd

import (
	"fmt"
	"os"

	"github.com/Cbush039/book-review-app/cmd/account"
	"github.com/Cbush039/book-review-app/cmd/books"
	"github.com/Cbush039/book-review-app/cmd/store"
	"github.com/Cbush039/book-review-app/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "bookrev",
		Short: "personal book tracker",
		Long: fmt.Sprintf(`bookrev (v%s)

A command-line book tracker with per-account collections, ratings,
reading status and reviews, backed by a local key-value store.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bookrev",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bookrev v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(account.AccountCommands)
	RootCmd.AddCommand(books.BookCommands)
	RootCmd.AddCommand(store.StoreCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "data-dir"
	RootCmd.PersistentFlags().String(key, "", util.WrapString("directory for the database files (default ~/.bookrev)"))
	key = "engine"
	RootCmd.PersistentFlags().String(key, "bolt", util.WrapString("storage engine to use (bolt, mem)"))
	key = "codec"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("codec for stored records (json, gob)"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "warn", util.WrapString("log level (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
