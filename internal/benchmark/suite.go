package benchmark

import (
	"context"
	"fmt"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/usecase"
)

// Suite bundles the four use cases of one storage engine and runs the full
// fixed benchmark sequence against them.
type Suite struct {
	placeOrder   *usecase.PlaceOrder
	orderDetails *usecase.GetOrderDetails
	orderHistory *usecase.GetCustomerOrderHistory
	topProducts  *usecase.GetTopSellingProducts
}

func NewSuite(placeOrder *usecase.PlaceOrder, orderDetails *usecase.GetOrderDetails, orderHistory *usecase.GetCustomerOrderHistory, topProducts *usecase.GetTopSellingProducts) *Suite {
	return &Suite{
		placeOrder:   placeOrder,
		orderDetails: orderDetails,
		orderHistory: orderHistory,
		topProducts:  topProducts,
	}
}

// Params are the benchmark inputs for a full suite run.
type Params struct {
	Iterations int   `json:"iterations"`
	OrderID    int64 `json:"order_id"`
	CustomerID int64 `json:"customer_id"`
	PageSize   int   `json:"page_size"`
	Page1      int   `json:"page1"`
	Page10     int   `json:"page10"`
	LastDays   int   `json:"last_days"`
	TopLimit   int   `json:"top_limit"`
}

// DefaultParams mirror the original benchmark inputs.
func DefaultParams() Params {
	return Params{
		Iterations: 20,
		OrderID:    1,
		CustomerID: 1,
		PageSize:   20,
		Page1:      1,
		Page10:     10,
		LastDays:   30,
		TopLimit:   10,
	}
}

// RunAll executes the seven benchmarks in the fixed sequence: the read use
// cases first (order details, history page 1 and page 10, top products) so
// the dataset stays stable for read measurements, then the write use case
// with 1, 3, and 10 items per order to characterize write-cost scaling.
func (s *Suite) RunAll(ctx context.Context, p Params) ([]Summary, error) {
	results := make([]Summary, 0, 7)

	uc2, err := Run(ctx, "UC2.GetOrderDetails", p.Iterations, func(ctx context.Context) error {
		_, err := s.orderDetails.Execute(ctx, p.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	results = append(results, uc2)

	for _, page := range []int{p.Page1, p.Page10} {
		page := page
		uc3, err := Run(ctx, fmt.Sprintf("UC3.OrderHistory.Page%d", page), p.Iterations, func(ctx context.Context) error {
			_, err := s.orderHistory.Execute(ctx, p.CustomerID, page, p.PageSize)
			return err
		})
		if err != nil {
			return nil, err
		}
		results = append(results, uc3)
	}

	uc4, err := Run(ctx, "UC4.TopSellingProducts", p.Iterations, func(ctx context.Context) error {
		_, err := s.topProducts.Execute(ctx, p.LastDays, p.TopLimit)
		return err
	})
	if err != nil {
		return nil, err
	}
	results = append(results, uc4)

	for _, itemCount := range []int{1, 3, 10} {
		req := placeOrderRequest(p.CustomerID, itemCount)
		uc1, err := Run(ctx, fmt.Sprintf("UC1.PlaceOrder.Items%d", itemCount), p.Iterations, func(ctx context.Context) error {
			_, err := s.placeOrder.Execute(ctx, req)
			return err
		})
		if err != nil {
			return nil, err
		}
		results = append(results, uc1)
	}

	return results, nil
}

// placeOrderRequest builds a deterministic write request: product ids 1..n
// with a simple quantity pattern, so inputs are repeatable across runs and
// engines.
func placeOrderRequest(customerID int64, itemCount int) usecase.PlaceOrderRequest {
	items := make([]usecase.OrderItemRequest, 0, itemCount)
	for i := 1; i <= itemCount; i++ {
		items = append(items, usecase.OrderItemRequest{
			ProductID: int64(i),
			Quantity:  1 + i%3,
		})
	}
	return usecase.PlaceOrderRequest{CustomerID: customerID, Items: items}
}
