package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Cbush039/book-review-app/lib/kv"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// perfKeyPrefix marks benchmark keys so they can be cleaned up afterwards.
const perfKeyPrefix = "__perf_"

var (
	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Print engine metadata as JSON",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info, err := kvStore.Info()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	perfCmd = &cobra.Command{
		Use:   "perf",
		Short: "Benchmark the configured engine",
		Long: `Benchmark the configured engine with a synthetic set/get/delete workload
and print latency summaries. Benchmark keys are removed afterwards; the
book data in the store is not touched.`,
		RunE: runPerf,
	}
)

func runPerf(_ *cobra.Command, _ []string) error {
	ops := viper.GetInt("ops")
	valueSize := viper.GetInt("value-size")

	value := make([]byte, valueSize)
	if _, err := rand.Read(value); err != nil {
		return err
	}

	fmt.Printf("benchmarking %d ops per operation type, %d byte values\n\n", ops, valueSize)

	registry := gometrics.NewRegistry()
	setTimer := gometrics.GetOrRegisterTimer("set", registry)
	getTimer := gometrics.GetOrRegisterTimer("get", registry)
	deleteTimer := gometrics.GetOrRegisterTimer("delete", registry)

	// Writes
	for i := 0; i < ops; i++ {
		key := fmt.Sprintf("%s%d", perfKeyPrefix, i)
		var opErr error
		setTimer.Time(func() {
			opErr = kvStore.Set(key, value)
		})
		if opErr != nil {
			return opErr
		}
	}

	// Reads
	for i := 0; i < ops; i++ {
		key := fmt.Sprintf("%s%d", perfKeyPrefix, i)
		var opErr error
		getTimer.Time(func() {
			_, _, opErr = kvStore.Get(key)
		})
		if opErr != nil {
			return opErr
		}
	}

	// Deletes (also the cleanup)
	for i := 0; i < ops; i++ {
		key := fmt.Sprintf("%s%d", perfKeyPrefix, i)
		var opErr error
		deleteTimer.Time(func() {
			opErr = kvStore.Delete(key)
		})
		if opErr != nil {
			return opErr
		}
	}

	fmt.Printf("%-8s %10s %12s %12s %12s\n", "OP", "COUNT", "MEAN", "P95", "P99")
	printTimer("set", setTimer)
	printTimer("get", getTimer)
	printTimer("delete", deleteTimer)

	// Dump the op counters the instrumented store collected on the way
	fmt.Println("\ncollected store metrics:")
	kv.WriteMetrics(os.Stdout)

	return nil
}

func printTimer(name string, timer gometrics.Timer) {
	fmt.Printf("%-8s %10d %12s %12s %12s\n",
		name,
		timer.Count(),
		time.Duration(int64(timer.Mean())),
		time.Duration(int64(timer.Percentile(0.95))),
		time.Duration(int64(timer.Percentile(0.99))),
	)
}
