package usecase

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
)

// Paging bounds for the order-history use case.
const (
	MinPageSize = 1
	MaxPageSize = 200
)

// GetCustomerOrderHistory loads one page of a customer's order history,
// latest first.
type GetCustomerOrderHistory struct {
	history ports.OrderHistoryRead
}

func NewGetCustomerOrderHistory(history ports.OrderHistoryRead) *GetCustomerOrderHistory {
	return &GetCustomerOrderHistory{history: history}
}

func (uc *GetCustomerOrderHistory) Execute(ctx context.Context, customerID int64, pageNumber, pageSize int) (*ports.OrderHistoryPage, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer id must be greater than 0", ErrInvalidInput)
	}
	if pageNumber < 1 {
		return nil, fmt.Errorf("%w: page number must be >= 1", ErrInvalidInput)
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: page size must be %d..%d", ErrInvalidInput, MinPageSize, MaxPageSize)
	}

	return uc.history.Page(ctx, customerID, pageNumber, pageSize)
}
