// Package mongostore implements the benchmark ports against MongoDB, with
// orders modeled as aggregates embedding their items.
package mongostore

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB using the provided config and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// HealthCheck performs a simple health check against the primary.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Customers() *mongo.Collection { return s.db.Collection("customers") }
func (s *Store) Products() *mongo.Collection  { return s.db.Collection("products") }
func (s *Store) Orders() *mongo.Collection    { return s.db.Collection("orders") }
func (s *Store) Counters() *mongo.Collection  { return s.db.Collection("counters") }

// NextOrderID returns the next sequential order id using the counters
// collection pattern, since MongoDB has no identity columns.
func (s *Store) NextOrderID(ctx context.Context) (int64, error) {
	res := s.Counters().FindOneAndUpdate(ctx,
		bson.M{"_id": "orderId"},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc counterDoc
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("incrementing order id counter: %w", err)
	}
	return doc.Value, nil
}
