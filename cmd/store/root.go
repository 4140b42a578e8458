package store

import (
	"github.com/Cbush039/book-review-app/cmd/util"
	"github.com/Cbush039/book-review-app/lib/kv"
	"github.com/spf13/cobra"
)

var (
	kvStore kv.Store

	// StoreCommands represents the store maintenance command group
	StoreCommands = &cobra.Command{
		Use:               "store",
		Short:             "Inspect and benchmark the underlying key-value store",
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Flags for perf
	perfCmd.Flags().Int("ops", 10000, util.WrapString("Number of operations per benchmark"))
	perfCmd.Flags().Int("value-size", 256, util.WrapString("Size of the benchmark values in bytes"))

	// Add subcommands
	StoreCommands.AddCommand(infoCmd)
	StoreCommands.AddCommand(perfCmd)
}

// setup opens the configured store engine
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	kvStore, err = util.OpenStore()
	return err
}

func teardown(_ *cobra.Command, _ []string) {
	if kvStore != nil {
		if err := kvStore.Close(); err != nil {
			util.Logger("store").Errorf("closing store: %v", err)
		}
	}
}
