package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
)

// OrderItemRequest is one requested line item of a new order.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// PlaceOrderRequest is the input to the place-order use case.
type PlaceOrderRequest struct {
	CustomerID int64              `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// PlaceOrder orchestrates the only write path: it validates the request,
// verifies the customer, resolves all product prices in one batch, builds
// the order aggregate with a recomputed total, and delegates persistence.
type PlaceOrder struct {
	customers ports.CustomerRead
	products  ports.ProductRead
	orders    ports.OrderWrite
}

func NewPlaceOrder(customers ports.CustomerRead, products ports.ProductRead, orders ports.OrderWrite) *PlaceOrder {
	return &PlaceOrder{customers: customers, products: products, orders: orders}
}

// Execute places the order and returns the assigned order id.
func (uc *PlaceOrder) Execute(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidInput)
		}
	}

	exists, err := uc.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return 0, fmt.Errorf("checking customer %d: %w", req.CustomerID, err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: customer %d does not exist", ErrDomainViolation, req.CustomerID)
	}

	productIDs := distinctProductIDs(req.Items)

	snapshots, err := uc.products.ByIDs(ctx, productIDs)
	if err != nil {
		return 0, fmt.Errorf("fetching product snapshots: %w", err)
	}
	if len(snapshots) != len(productIDs) {
		return 0, fmt.Errorf("%w: one or more products do not exist", ErrDomainViolation)
	}

	priceByID := make(map[int64]ports.ProductSnapshot, len(snapshots))
	for _, snap := range snapshots {
		priceByID[snap.ProductID] = snap
	}

	order := &domain.Order{
		CustomerID: req.CustomerID,
		Status:     domain.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
		Items:      make([]domain.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: priceByID[item.ProductID].Price,
		})
	}
	order.TotalAmount = order.ItemTotal()

	return uc.orders.Create(ctx, order)
}

// distinctProductIDs keeps first-occurrence order so the batch read is
// deterministic for a given request.
func distinctProductIDs(items []OrderItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
