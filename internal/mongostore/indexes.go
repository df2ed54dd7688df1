package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the use cases depend on. Creation is
// idempotent; existing indexes are left in place.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	orderIndexes := []mongo.IndexModel{
		{
			// Order details fetches by order id.
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("ux_orders_order_id"),
		},
		{
			// Order history pages sort newest-first with id tie-break.
			Keys: bson.D{
				{Key: "customer_id", Value: 1},
				{Key: "created_at", Value: -1},
				{Key: "order_id", Value: -1},
			},
			Options: options.Index().SetName("ix_orders_history"),
		},
		{
			// Top-products window matches on creation time.
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("ix_orders_created_at"),
		},
	}
	if _, err := s.Orders().Indexes().CreateMany(ctx, orderIndexes); err != nil {
		return fmt.Errorf("creating order indexes: %w", err)
	}

	if _, err := s.Customers().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customer_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("ux_customers_customer_id"),
	}); err != nil {
		return fmt.Errorf("creating customer index: %w", err)
	}

	if _, err := s.Products().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("ux_products_product_id"),
	}); err != nil {
		return fmt.Errorf("creating product index: %w", err)
	}

	return nil
}
