package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Ecommerce Database Benchmark - SQL vs MongoDB",
	Long: `Ecommerce Database Benchmark compares a relational store (MySQL) and a
document store (MongoDB) under four representative access patterns:
placing an order, reading an order with its related data, paging through
a customer's order history, and aggregating top-selling products.

Both engines are loaded with the same deterministic, seed-reproducible
dataset so the timing results are fair and comparable.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
