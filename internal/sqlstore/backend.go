package sqlstore

import (
	"context"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
)

// NewBackend bundles the relational adapters into an engine backend.
func NewBackend(store *Store) *engine.Backend {
	return &engine.Backend{
		Name:        engine.SQL,
		Customers:   NewCustomerRead(store),
		Products:    NewProductRead(store),
		OrderWrite:  NewOrderWrite(store),
		OrderRead:   NewOrderRead(store),
		History:     NewOrderHistoryRead(store),
		TopProducts: NewTopProductsRead(store),
		Seeder:      NewSeeder(store),
		Ping: func(ctx context.Context) error {
			return store.HealthCheck(ctx)
		},
	}
}
