package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTopProductsRead struct {
	from, to time.Time
	limit    int
}

func (f *fakeTopProductsRead) TopSelling(ctx context.Context, fromUTC, toUTC time.Time, limit int) (*ports.TopProductsResult, error) {
	f.from, f.to, f.limit = fromUTC, toUTC, limit
	return &ports.TopProductsResult{FromUTC: fromUTC, ToUTC: toUTC, Limit: limit}, nil
}

func TestGetTopSellingProductsWindow(t *testing.T) {
	fake := &fakeTopProductsRead{}
	uc := NewGetTopSellingProducts(fake)

	before := time.Now().UTC()
	result, err := uc.Execute(context.Background(), 30, 10)
	after := time.Now().UTC()
	require.NoError(t, err)

	assert.Equal(t, 10, fake.limit)
	assert.False(t, fake.to.Before(before))
	assert.False(t, fake.to.After(after))
	assert.Equal(t, fake.to.AddDate(0, 0, -30), fake.from, "window spans exactly 30 trailing days")
	assert.Equal(t, fake.from, result.FromUTC)
}

func TestGetTopSellingProductsValidation(t *testing.T) {
	uc := NewGetTopSellingProducts(&fakeTopProductsRead{})

	tests := []struct {
		name     string
		lastDays int
		limit    int
	}{
		{name: "zero days", lastDays: 0, limit: 10},
		{name: "negative days", lastDays: -5, limit: 10},
		{name: "days beyond cap", lastDays: 3651, limit: 10},
		{name: "zero limit", lastDays: 30, limit: 0},
		{name: "limit beyond cap", lastDays: 30, limit: 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.lastDays, tt.limit)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
