package cmd

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/generator"
	"github.com/spf13/cobra"
)

var (
	seedEngine  string
	seedProfile string
	seedValue   int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a deterministic dataset into a storage engine",
	Long: `Generates a seed-reproducible dataset of customers, products, and orders
and bulk-loads it into the selected engine. Running the same profile and
seed against both engines produces identical domain data, which is what
keeps the benchmarks comparable.`,
	RunE: seedEngineData,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedEngine, "engine", "sql", "Target engine (sql|mongo)")
	seedCmd.Flags().StringVar(&seedProfile, "profile", "small", fmt.Sprintf("Dataset profile (%v)", generator.ProfileNames()))
	seedCmd.Flags().Int64Var(&seedValue, "seed", 42, "PRNG seed for the dataset generator")
}

func seedEngineData(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	eng, err := engine.Parse(seedEngine)
	if err != nil {
		return err
	}

	profile, err := generator.ProfileByName(seedProfile)
	if err != nil {
		return err
	}

	fmt.Printf("🌱 Seeding %s with profile '%s' (seed %d)...\n", eng, profile.Name, seedValue)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close(ctx)

	fmt.Println("🎲 Generating dataset...")
	dataset, err := generator.New(seedValue).Generate(profile)
	if err != nil {
		return err
	}

	backend, err := st.Backends.Get(eng)
	if err != nil {
		return err
	}

	fmt.Println("🗑️  Clearing existing data...")
	if err := backend.Seeder.Clear(ctx); err != nil {
		return err
	}

	fmt.Println("💾 Persisting dataset...")
	if err := backend.Seeder.Seed(ctx, dataset.Customers, dataset.Products, dataset.Orders); err != nil {
		return err
	}

	fmt.Printf("✅ Seeded %d customers, %d products, %d orders\n",
		len(dataset.Customers), len(dataset.Products), len(dataset.Orders))
	fmt.Printf("   💡 Heaviest customer id (for history benchmarks): %d\n", dataset.HeaviestCustomerID)
	return nil
}
