// Package engine names the supported storage engines and bundles one
// engine's port implementations into a Backend. Use cases are constructed
// from a statically selected Backend; the engine tag is parsed once at the
// boundary and never used for runtime service lookup.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/benchmark"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/usecase"
)

// Engine is the enumerated storage engine selector.
type Engine string

const (
	SQL   Engine = "sql"
	Mongo Engine = "mongo"
)

// ErrUnknownEngine is returned for an unrecognized engine selector. Fatal at
// the boundary.
var ErrUnknownEngine = errors.New("unknown engine")

// Parse normalizes and validates an engine selector.
func Parse(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sql":
		return SQL, nil
	case "mongo":
		return Mongo, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownEngine, s, SQL, Mongo)
	}
}

// Seeder is the provisioning collaborator of one engine: clearing and bulk
// loading a generated dataset. Invoked once before benchmarking; assumed
// idempotent.
type Seeder interface {
	Clear(ctx context.Context) error
	Seed(ctx context.Context, customers []domain.Customer, products []domain.Product, orders []domain.Order) error
}

// Backend bundles one storage engine's six port implementations with its
// seeder and a connectivity probe.
type Backend struct {
	Name        Engine
	Customers   ports.CustomerRead
	Products    ports.ProductRead
	OrderWrite  ports.OrderWrite
	OrderRead   ports.OrderRead
	History     ports.OrderHistoryRead
	TopProducts ports.TopProductsRead
	Seeder      Seeder
	Ping        func(ctx context.Context) error
}

// NewSuite constructs the four use cases over this backend's ports.
func (b *Backend) NewSuite() *benchmark.Suite {
	return benchmark.NewSuite(
		usecase.NewPlaceOrder(b.Customers, b.Products, b.OrderWrite),
		usecase.NewGetOrderDetails(b.OrderRead),
		usecase.NewGetCustomerOrderHistory(b.History),
		usecase.NewGetTopSellingProducts(b.TopProducts),
	)
}

// Set holds the two configured backends.
type Set struct {
	SQL   *Backend
	Mongo *Backend
}

// Get returns the backend for an already-parsed engine tag.
func (s *Set) Get(e Engine) (*Backend, error) {
	switch e {
	case SQL:
		return s.SQL, nil
	case Mongo:
		return s.Mongo, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, e)
	}
}
