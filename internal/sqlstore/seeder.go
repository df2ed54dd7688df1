package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
)

// seedBatchSize bounds the number of rows per multi-row INSERT so statements
// stay under MySQL's packet limit even for the medium profile.
const seedBatchSize = 500

// Seeder bulk-loads a generated dataset into the relational schema with the
// generator's explicit ids, so ids stay stable and comparable across
// engines.
type Seeder struct {
	store *Store
}

func NewSeeder(store *Store) *Seeder {
	return &Seeder{store: store}
}

// Clear deletes all benchmark data in reverse dependency order.
func (s *Seeder) Clear(ctx context.Context) error {
	tables := []string{"order_items", "orders", "products", "customers"}
	for _, table := range tables {
		if _, err := s.store.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Seed inserts customers, products, and orders (with items) in dependency
// order inside a single transaction.
func (s *Seeder) Seed(ctx context.Context, customers []domain.Customer, products []domain.Product, orders []domain.Order) error {
	tx, err := s.store.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(customers); start += seedBatchSize {
		batch := customers[start:min(start+seedBatchSize, len(customers))]
		values := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*5)
		for _, c := range batch {
			values = append(values, "(?, ?, ?, ?, ?)")
			args = append(args, c.CustomerID, c.FirstName, c.LastName, c.Email, c.CreatedAt)
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO customers (id, first_name, last_name, email, created_at) VALUES "+strings.Join(values, ","),
			args...)
		if err != nil {
			return fmt.Errorf("seeding customers: %w", err)
		}
	}

	for start := 0; start < len(products); start += seedBatchSize {
		batch := products[start:min(start+seedBatchSize, len(products))]
		values := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*5)
		for _, p := range batch {
			values = append(values, "(?, ?, ?, ?, ?)")
			args = append(args, p.ProductID, p.SKU, p.Name, p.Price, p.CreatedAt)
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO products (id, sku, name, price, created_at) VALUES "+strings.Join(values, ","),
			args...)
		if err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
	}

	for start := 0; start < len(orders); start += seedBatchSize {
		batch := orders[start:min(start+seedBatchSize, len(orders))]

		orderValues := make([]string, 0, len(batch))
		orderArgs := make([]any, 0, len(batch)*5)
		itemValues := make([]string, 0, len(batch)*4)
		itemArgs := make([]any, 0, len(batch)*16)

		for _, o := range batch {
			orderValues = append(orderValues, "(?, ?, ?, ?, ?)")
			orderArgs = append(orderArgs, o.OrderID, o.CustomerID, string(o.Status), o.TotalAmount, o.CreatedAt)
			for _, item := range o.Items {
				itemValues = append(itemValues, "(?, ?, ?, ?)")
				itemArgs = append(itemArgs, o.OrderID, item.ProductID, item.Quantity, item.UnitPrice)
			}
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO orders (id, customer_id, status, total_amount, created_at) VALUES "+strings.Join(orderValues, ","),
			orderArgs...)
		if err != nil {
			return fmt.Errorf("seeding orders: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES "+strings.Join(itemValues, ","),
			itemArgs...)
		if err != nil {
			return fmt.Errorf("seeding order items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
