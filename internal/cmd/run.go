package cmd

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/server"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the benchmark HTTP server",
	Long: `Start the benchmark server which provides:
- POST /benchmark/seed to load a deterministic dataset into an engine
- POST /benchmark/run to execute the benchmark suite against an engine
- GET /api/health for connectivity checks against both engines`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Println("🚀 Ecommerce Database Benchmark Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to storage engines...")
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close(ctx)

	fmt.Println("✅ MySQL and MongoDB connected successfully")

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(st.Backends)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
