package mongostore

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeder bulk-loads a generated dataset into the document collections using
// the same domain data as the relational seeder, so benchmarks stay
// comparable across engines.
type Seeder struct {
	store *Store
}

func NewSeeder(store *Store) *Seeder {
	return &Seeder{store: store}
}

// Clear deletes all benchmark documents, including the order id counter so
// sequential ids restart from 1.
func (s *Seeder) Clear(ctx context.Context) error {
	collections := []string{"orders", "products", "customers", "counters"}
	for _, name := range collections {
		if _, err := s.store.db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	return nil
}

// Seed clears the collections and bulk-inserts the dataset. Order ids are
// assigned from the counter so writes after seeding continue the sequence.
func (s *Seeder) Seed(ctx context.Context, customers []domain.Customer, products []domain.Product, orders []domain.Order) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}

	if len(customers) > 0 {
		docs := make([]any, 0, len(customers))
		for _, c := range customers {
			docs = append(docs, customerDoc{
				CustomerID: c.CustomerID,
				FirstName:  c.FirstName,
				LastName:   c.LastName,
				Email:      c.Email,
				CreatedAt:  c.CreatedAt,
			})
		}
		if _, err := s.store.Customers().InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seeding customers: %w", err)
		}
	}

	if len(products) > 0 {
		docs := make([]any, 0, len(products))
		for _, p := range products {
			docs = append(docs, productDoc{
				ProductID: p.ProductID,
				SKU:       p.SKU,
				Name:      p.Name,
				Price:     money(p.Price),
				CreatedAt: p.CreatedAt,
			})
		}
		if _, err := s.store.Products().InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
	}

	if len(orders) > 0 {
		docs := make([]any, 0, len(orders))
		for i := range orders {
			id, err := s.store.NextOrderID(ctx)
			if err != nil {
				return err
			}
			orders[i].OrderID = id
			docs = append(docs, orderToDoc(&orders[i]))
		}
		if _, err := s.store.Orders().InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seeding orders: %w", err)
		}
	}

	return nil
}
