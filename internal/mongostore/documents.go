package mongostore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document shapes for the benchmark collections. Monetary values are stored
// as Decimal128 so totals stay exact across the wire.

type customerDoc struct {
	CustomerID int64     `bson:"customer_id"`
	FirstName  string    `bson:"first_name"`
	LastName   string    `bson:"last_name"`
	Email      string    `bson:"email"`
	CreatedAt  time.Time `bson:"created_at"`
}

type productDoc struct {
	ProductID int64                `bson:"product_id"`
	SKU       string               `bson:"sku"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	CreatedAt time.Time            `bson:"created_at"`
}

type orderDoc struct {
	OrderID     int64                `bson:"order_id"`
	CustomerID  int64                `bson:"customer_id"`
	Status      string               `bson:"status"`
	TotalAmount primitive.Decimal128 `bson:"total_amount"`
	CreatedAt   time.Time            `bson:"created_at"`
	Items       []orderItemDoc       `bson:"items"`
}

type orderItemDoc struct {
	ProductID int64                `bson:"product_id"`
	Quantity  int32                `bson:"quantity"`
	UnitPrice primitive.Decimal128 `bson:"unit_price"`
}

type counterDoc struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// money converts an exact decimal to Decimal128 for storage. Decimal output
// is always a parseable literal, so the error path is unreachable in
// practice.
func money(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}
	}
	return v
}

// moneyBack converts a stored Decimal128 back into an exact decimal.
func moneyBack(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decoding stored decimal %q: %w", v.String(), err)
	}
	return d, nil
}
