package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the lifecycle states an order can be in.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Customer is an engine-neutral customer record. Customers are created by the
// dataset generator and immutable afterwards within a benchmark run.
type Customer struct {
	CustomerID int64     `json:"customer_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// Product is an engine-neutral product record, immutable after generation.
type Product struct {
	ProductID int64           `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// Order is the order aggregate: header plus an ordered list of items.
// TotalAmount is always derived from the items, never set independently.
type Order struct {
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items"`
}

// OrderItem records a product reference with the unit price captured at order
// time. The snapshot price is deliberately decoupled from the product's
// current price so historical orders do not change when prices do.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ItemTotal returns the sum of quantity * unit price over the order's items.
func (o *Order) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
