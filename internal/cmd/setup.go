package cmd

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
	"github.com/spf13/cobra"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision the relational schema and document indexes",
	Long: `Creates the MySQL tables (customers, products, orders, order_items) and
the MongoDB indexes the use cases rely on. Safe to run repeatedly; both
steps are idempotent.`,
	RunE: setupStorage,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing MySQL tables before creating")
}

func setupStorage(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Println("🔧 Provisioning storage engines...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close(ctx)

	if dropFirst {
		fmt.Println("🗑️  Dropping existing MySQL tables...")
		if err := st.SQL.DropSchema(ctx); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating MySQL schema...")
	if err := st.SQL.SetupSchema(ctx); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	fmt.Println("📇 Creating MongoDB indexes...")
	if err := st.Mongo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	fmt.Println("✅ Storage provisioning complete!")
	return nil
}
