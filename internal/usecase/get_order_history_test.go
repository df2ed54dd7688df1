package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryHistoryRead pages over an in-memory order set with the same total
// ordering the storage adapters apply: created_at descending, order id
// descending as the tie-break.
type memoryHistoryRead struct {
	orders map[int64][]ports.OrderHistoryItem
}

func (m *memoryHistoryRead) Page(ctx context.Context, customerID int64, pageNumber, pageSize int) (*ports.OrderHistoryPage, error) {
	items := append([]ports.OrderHistoryItem(nil), m.orders[customerID]...)
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].OrderID > items[j].OrderID
	})

	offset := (pageNumber - 1) * pageSize
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}

	return &ports.OrderHistoryPage{
		CustomerID: customerID,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Orders:     items[offset:end],
	}, nil
}

func historyFixture() *memoryHistoryRead {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// 25 orders; every fifth pair shares a timestamp so the id tie-break
	// actually decides.
	items := make([]ports.OrderHistoryItem, 0, 25)
	for i := 1; i <= 25; i++ {
		items = append(items, ports.OrderHistoryItem{
			OrderID:     int64(i),
			CreatedAt:   base.Add(time.Duration(i/2) * time.Hour),
			Status:      "shipped",
			TotalAmount: decimal.NewFromInt(int64(i)),
		})
	}
	return &memoryHistoryRead{orders: map[int64][]ports.OrderHistoryItem{7: items}}
}

func TestGetCustomerOrderHistoryValidation(t *testing.T) {
	uc := NewGetCustomerOrderHistory(historyFixture())

	tests := []struct {
		name       string
		customerID int64
		pageNumber int
		pageSize   int
	}{
		{name: "zero customer id", customerID: 0, pageNumber: 1, pageSize: 20},
		{name: "negative customer id", customerID: -3, pageNumber: 1, pageSize: 20},
		{name: "zero page number", customerID: 7, pageNumber: 0, pageSize: 20},
		{name: "zero page size", customerID: 7, pageNumber: 1, pageSize: 0},
		{name: "oversized page", customerID: 7, pageNumber: 1, pageSize: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.customerID, tt.pageNumber, tt.pageSize)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetCustomerOrderHistoryPagination(t *testing.T) {
	uc := NewGetCustomerOrderHistory(historyFixture())

	page1, err := uc.Execute(context.Background(), 7, 1, 10)
	require.NoError(t, err)
	page2, err := uc.Execute(context.Background(), 7, 2, 10)
	require.NoError(t, err)
	page3, err := uc.Execute(context.Background(), 7, 3, 10)
	require.NoError(t, err)

	require.Len(t, page1.Orders, 10)
	require.Len(t, page2.Orders, 10)
	require.Len(t, page3.Orders, 5)

	// Pages are disjoint and contiguous: stitched together they cover all
	// 25 orders exactly once, newest first.
	all := append(append(append([]ports.OrderHistoryItem(nil), page1.Orders...), page2.Orders...), page3.Orders...)
	seen := make(map[int64]bool, len(all))
	for i, item := range all {
		assert.False(t, seen[item.OrderID], "order %d appears twice", item.OrderID)
		seen[item.OrderID] = true

		if i > 0 {
			prev := all[i-1]
			ordered := prev.CreatedAt.After(item.CreatedAt) ||
				(prev.CreatedAt.Equal(item.CreatedAt) && prev.OrderID > item.OrderID)
			assert.True(t, ordered, "row %d out of order: %d before %d", i, prev.OrderID, item.OrderID)
		}
	}
	assert.Len(t, seen, 25)
}

func TestGetCustomerOrderHistoryTieBreakByID(t *testing.T) {
	uc := NewGetCustomerOrderHistory(historyFixture())

	page, err := uc.Execute(context.Background(), 7, 1, 5)
	require.NoError(t, err)

	// Orders 24 and 25 share a timestamp; the higher id comes first.
	require.NotEmpty(t, page.Orders)
	assert.Equal(t, int64(25), page.Orders[0].OrderID)
	assert.Equal(t, int64(24), page.Orders[1].OrderID)
}

func TestGetCustomerOrderHistoryPastLastPageIsEmpty(t *testing.T) {
	uc := NewGetCustomerOrderHistory(historyFixture())

	page, err := uc.Execute(context.Background(), 7, 9, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Orders)
	assert.Equal(t, 9, page.PageNumber)
}
