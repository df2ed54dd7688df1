// Package ports defines the narrow, storage-agnostic capability contracts a
// storage engine must implement to participate in the benchmark use cases,
// together with the read-model shapes those contracts produce.
package ports

import (
	"context"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/shopspring/decimal"
)

// Unknown is the placeholder value adapters substitute when an order
// references a customer or product that no longer exists. Dangling
// references are tolerated, not failed, so benchmark timing stays
// comparable even if the dataset is mutated between seeding and a read.
const Unknown = "(unknown)"

// CustomerRead answers existence checks. Unknown ids report false, never an
// error.
type CustomerRead interface {
	Exists(ctx context.Context, customerID int64) (bool, error)
}

// ProductSnapshot carries the price of a product as read at a point in time.
type ProductSnapshot struct {
	ProductID int64           `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
}

// ProductRead resolves product ids to price snapshots in one batch. The
// result carries no guaranteed ordering; callers compare result size against
// the distinct input size to detect missing products.
type ProductRead interface {
	ByIDs(ctx context.Context, productIDs []int64) ([]ProductSnapshot, error)
}

// OrderWrite persists an order aggregate. When the order's id is unset the
// engine assigns one; items are persisted atomically with the header.
type OrderWrite interface {
	Create(ctx context.Context, order *domain.Order) (int64, error)
}

// OrderRead composes the full order-details read model. A missing order
// resolves to (nil, nil).
type OrderRead interface {
	DetailsByID(ctx context.Context, orderID int64) (*OrderDetails, error)
}

// OrderHistoryRead returns one page of a customer's order history, ordered
// by creation time descending with order id descending as the tie-break.
// The total ordering keeps pagination deterministic across repeated runs.
type OrderHistoryRead interface {
	Page(ctx context.Context, customerID int64, pageNumber, pageSize int) (*OrderHistoryPage, error)
}

// TopProductsRead ranks products by summed quantity sold inside the
// half-open window [fromUTC, toUTC). Rank ties keep whatever stable order
// the underlying aggregation yields.
type TopProductsRead interface {
	TopSelling(ctx context.Context, fromUTC, toUTC time.Time, limit int) (*TopProductsResult, error)
}

// CustomerSummary is the customer portion of the order-details read model.
type CustomerSummary struct {
	CustomerID int64  `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
}

// OrderItemDetails is one line item enriched with product SKU and name.
type OrderItemDetails struct {
	ProductID int64           `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderDetails is the composed order header, customer summary, and items.
type OrderDetails struct {
	OrderID     int64              `json:"order_id"`
	CustomerID  int64              `json:"customer_id"`
	Status      string             `json:"status"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
	Customer    CustomerSummary    `json:"customer"`
	Items       []OrderItemDetails `json:"items"`
}

// OrderHistoryItem is one row of a customer's paged order history.
type OrderHistoryItem struct {
	OrderID     int64           `json:"order_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderHistoryPage is one page of order history plus its paging inputs.
type OrderHistoryPage struct {
	CustomerID int64              `json:"customer_id"`
	PageNumber int                `json:"page_number"`
	PageSize   int                `json:"page_size"`
	Orders     []OrderHistoryItem `json:"orders"`
}

// TopProductItem is one ranked product with its total units sold.
type TopProductItem struct {
	ProductID    int64  `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	QuantitySold int64  `json:"quantity_sold"`
}

// TopProductsResult is the ranked aggregation output plus its window inputs.
type TopProductsResult struct {
	FromUTC time.Time        `json:"from_utc"`
	ToUTC   time.Time        `json:"to_utc"`
	Limit   int              `json:"limit"`
	Items   []TopProductItem `json:"items"`
}
