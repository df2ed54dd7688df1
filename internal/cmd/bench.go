package cmd

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/benchmark"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
	"github.com/spf13/cobra"
)

var (
	benchEngine     string
	benchIterations int
	benchCustomerID int64
	benchOrderID    int64
	benchPageSize   int
	benchLastDays   int
	benchTopLimit   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark suite against a storage engine",
	Long: `Executes the full benchmark suite against the selected engine and prints
the timing statistics. The read use cases run first so the dataset stays
stable, followed by the place-order benchmarks which write new orders.`,
	RunE: runBenchmarks,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVar(&benchEngine, "engine", "sql", "Target engine (sql|mongo)")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 20, "Timed iterations per use case (1-200)")
	benchCmd.Flags().Int64Var(&benchCustomerID, "customer-id", 1, "Customer id for history and write benchmarks")
	benchCmd.Flags().Int64Var(&benchOrderID, "order-id", 1, "Order id for the details benchmark")
	benchCmd.Flags().IntVar(&benchPageSize, "page-size", 20, "Page size for the history benchmarks")
	benchCmd.Flags().IntVar(&benchLastDays, "last-days", 30, "Trailing window in days for top products")
	benchCmd.Flags().IntVar(&benchTopLimit, "top-limit", 10, "Result limit for top products")
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	eng, err := engine.Parse(benchEngine)
	if err != nil {
		return err
	}

	fmt.Printf("⏱️  Benchmarking %s (%d iterations per use case)...\n", eng, benchIterations)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close(ctx)

	backend, err := st.Backends.Get(eng)
	if err != nil {
		return err
	}

	params := benchmark.DefaultParams()
	params.Iterations = benchIterations
	params.CustomerID = benchCustomerID
	params.OrderID = benchOrderID
	params.PageSize = benchPageSize
	params.LastDays = benchLastDays
	params.TopLimit = benchTopLimit

	results, err := backend.NewSuite().RunAll(ctx, params)
	if err != nil {
		return err
	}

	printSummaries(results)
	return nil
}

func printSummaries(results []benchmark.Summary) {
	fmt.Printf("\n%-28s %6s %8s %8s %10s %8s %8s %10s\n",
		"USE CASE", "ITERS", "MIN(ms)", "MAX(ms)", "MEAN(ms)", "P50(ms)", "P95(ms)", "STDDEV(ms)")
	for _, r := range results {
		fmt.Printf("%-28s %6d %8d %8d %10.2f %8d %8d %10.2f\n",
			r.UseCase, r.Iterations, r.MinMs, r.MaxMs, r.MeanMs, r.P50Ms, r.P95Ms, r.StdDevMs)
	}
}
