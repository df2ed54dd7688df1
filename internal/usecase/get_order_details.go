package usecase

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
)

// GetOrderDetails loads everything an order-details page needs: the order
// header, a customer summary, and the line items with product SKUs/names.
type GetOrderDetails struct {
	orders ports.OrderRead
}

func NewGetOrderDetails(orders ports.OrderRead) *GetOrderDetails {
	return &GetOrderDetails{orders: orders}
}

func (uc *GetOrderDetails) Execute(ctx context.Context, orderID int64) (*ports.OrderDetails, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order id must be greater than 0", ErrInvalidInput)
	}

	details, err := uc.orders.DetailsByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("loading order %d: %w", orderID, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	return details, nil
}
