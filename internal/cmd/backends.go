package cmd

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/mongostore"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/sqlstore"
)

// stores holds the open storage connections behind the backend set.
type stores struct {
	SQL      *sqlstore.Store
	Mongo    *mongostore.Store
	Backends *engine.Set
}

// openStores connects both engines and bundles their backends.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	sqlStore, err := sqlstore.Open(&cfg.SQL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	mongoStore, err := mongostore.Open(ctx, &cfg.Mongo)
	if err != nil {
		sqlStore.Close()
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &stores{
		SQL:   sqlStore,
		Mongo: mongoStore,
		Backends: &engine.Set{
			SQL:   sqlstore.NewBackend(sqlStore),
			Mongo: mongostore.NewBackend(mongoStore),
		},
	}, nil
}

func (s *stores) close(ctx context.Context) {
	s.SQL.Close()
	s.Mongo.Close(ctx)
}
