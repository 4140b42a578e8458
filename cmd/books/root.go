package books

import (
	"github.com/Cbush039/book-review-app/cmd/util"
	"github.com/spf13/cobra"
)

var (
	svc *util.Services

	// BookCommands represents the books command group
	BookCommands = &cobra.Command{
		Use:               "books",
		Short:             "Manage the book collection of the active session",
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Flags for add
	addCmd.Flags().String("title", "", util.WrapString("Title of the book (required)"))
	addCmd.Flags().String("author", "", util.WrapString("Author of the book (required)"))
	addCmd.Flags().Int("rating", 0, util.WrapString("Rating from 0 to 5 (0 = unrated)"))
	addCmd.Flags().String("status", "want-to-read", util.WrapString("Reading status (want-to-read, reading, completed)"))
	addCmd.Flags().String("review", "", util.WrapString("Free-text review"))

	// Flags for list
	listCmd.Flags().String("search", "", util.WrapString("Case-insensitive substring match on title or author"))
	listCmd.Flags().String("status", "all", util.WrapString("Only show books with this reading status (all, want-to-read, reading, completed)"))

	// Flags for update
	updateCmd.Flags().String("title", "", util.WrapString("New title"))
	updateCmd.Flags().String("author", "", util.WrapString("New author"))
	updateCmd.Flags().Int("rating", 0, util.WrapString("New rating from 0 to 5"))
	updateCmd.Flags().String("status", "", util.WrapString("New reading status"))
	updateCmd.Flags().String("review", "", util.WrapString("New review text"))

	// Add subcommands
	BookCommands.AddCommand(addCmd)
	BookCommands.AddCommand(listCmd)
	BookCommands.AddCommand(rateCmd)
	BookCommands.AddCommand(statusCmd)
	BookCommands.AddCommand(reviewCmd)
	BookCommands.AddCommand(updateCmd)
	BookCommands.AddCommand(deleteCmd)
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
