package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
)

// Bounds for the top-selling-products use case.
const (
	MaxLastDays = 3650
	MaxTopLimit = 1000
)

// GetTopSellingProducts ranks products by units sold over a trailing window
// of whole days, computed as the half-open interval [now-lastDays, now).
type GetTopSellingProducts struct {
	topProducts ports.TopProductsRead
}

func NewGetTopSellingProducts(topProducts ports.TopProductsRead) *GetTopSellingProducts {
	return &GetTopSellingProducts{topProducts: topProducts}
}

func (uc *GetTopSellingProducts) Execute(ctx context.Context, lastDays, limit int) (*ports.TopProductsResult, error) {
	if lastDays < 1 || lastDays > MaxLastDays {
		return nil, fmt.Errorf("%w: last days must be 1..%d", ErrInvalidInput, MaxLastDays)
	}
	if limit < 1 || limit > MaxTopLimit {
		return nil, fmt.Errorf("%w: limit must be 1..%d", ErrInvalidInput, MaxTopLimit)
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -lastDays)

	return uc.topProducts.TopSelling(ctx, from, to, limit)
}
