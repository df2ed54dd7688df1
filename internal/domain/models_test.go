package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemTotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
			{ProductID: 2, Quantity: 3, UnitPrice: decimal.RequireFromString("5.50")},
			{ProductID: 3, Quantity: 1, UnitPrice: decimal.RequireFromString("0.01")},
		},
	}

	assert.True(t, order.ItemTotal().Equal(decimal.RequireFromString("56.49")),
		"got %s", order.ItemTotal())
}

func TestItemTotalEmptyOrder(t *testing.T) {
	var order Order
	assert.True(t, order.ItemTotal().IsZero())
}
