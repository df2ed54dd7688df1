// Package generator produces deterministic synthetic benchmark datasets.
//
// All entities derive from sequential draws against a single seeded PRNG
// stream, in the fixed order customers -> products -> orders, so a full
// dataset is reproducible end-to-end for a given seed. The stream is owned
// by the Generator instance, never a package-level source, so independently
// seeded generations can run concurrently without interference.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidProfile signals a dataset configuration that cannot produce
// orders (zero customers or zero products).
var ErrInvalidProfile = errors.New("invalid profile configuration")

// Dataset is the generator output: the three entity sequences plus the id
// of the customer that ended up owning the most orders, which callers use
// to pick a meaningful customer for the order-history benchmarks.
type Dataset struct {
	Customers          []domain.Customer
	Products           []domain.Product
	Orders             []domain.Order
	HeaviestCustomerID int64
}

// Generator holds the seeded PRNG stream and the reference time used for
// backdating creation timestamps.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a generator with its own PRNG stream seeded once.
func New(seed int64) *Generator {
	return NewAt(seed, time.Now().UTC())
}

// NewAt creates a generator with an explicit reference time, so two
// generations can be compared for byte-identical output.
func NewAt(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate produces the full dataset for a profile.
func (g *Generator) Generate(p Profile) (*Dataset, error) {
	customers := g.GenerateCustomers(p.Customers)
	products := g.GenerateProducts(p.Products)

	orders, err := g.GenerateOrders(customers, products, p.Orders, p.MaxItemsPerOrder)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Customers:          customers,
		Products:           products,
		Orders:             orders,
		HeaviestCustomerID: heaviestCustomer(orders),
	}, nil
}

// GenerateCustomers produces count customers with sequential 1-based ids,
// templated names/emails, and creation dates 30-900 days in the past.
func (g *Generator) GenerateCustomers(count int) []domain.Customer {
	customers := make([]domain.Customer, 0, count)
	for i := 1; i <= count; i++ {
		customers = append(customers, domain.Customer{
			CustomerID: int64(i),
			FirstName:  fmt.Sprintf("First%d", i),
			LastName:   fmt.Sprintf("Last%d", i),
			Email:      fmt.Sprintf("customer%d@benchmark.local", i),
			CreatedAt:  g.daysAgo(30, 900),
		})
	}
	return customers
}

// GenerateProducts produces count products with sequential 1-based ids,
// zero-padded SKUs, prices uniform in [5.00, 500.00] rounded to two
// decimals, and creation dates 30-900 days in the past.
func (g *Generator) GenerateProducts(count int) []domain.Product {
	products := make([]domain.Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, domain.Product{
			ProductID: int64(i),
			SKU:       fmt.Sprintf("SKU-%06d", i),
			Name:      fmt.Sprintf("Product %d", i),
			Price:     g.price(),
			CreatedAt: g.daysAgo(30, 900),
		})
	}
	return products
}

// GenerateOrders produces orderCount orders against the given customers and
// products. Order ids are pre-assigned sequentially for seeding; the write
// use case assigns ids itself.
func (g *Generator) GenerateOrders(customers []domain.Customer, products []domain.Product, orderCount, maxItemsPerOrder int) ([]domain.Order, error) {
	if len(customers) == 0 {
		return nil, fmt.Errorf("%w: at least one customer is required", ErrInvalidProfile)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: at least one product is required", ErrInvalidProfile)
	}

	orders := make([]domain.Order, 0, orderCount)
	for i := 1; i <= orderCount; i++ {
		orders = append(orders, g.generateOrder(int64(i), customers, products, maxItemsPerOrder))
	}
	return orders, nil
}

func (g *Generator) generateOrder(orderID int64, customers []domain.Customer, products []domain.Product, maxItemsPerOrder int) domain.Order {
	customer := g.pickCustomer(customers)

	itemCount := g.rng.Intn(maxItemsPerOrder) + 1
	if itemCount > len(products) {
		itemCount = len(products)
	}

	// Shuffle the full product set and take a prefix, so no order ever
	// repeats a product.
	selected := g.rng.Perm(len(products))[:itemCount]

	items := make([]domain.OrderItem, 0, itemCount)
	for _, idx := range selected {
		items = append(items, domain.OrderItem{
			ProductID: products[idx].ProductID,
			Quantity:  g.rng.Intn(5) + 1,
			UnitPrice: products[idx].Price,
		})
	}

	order := domain.Order{
		OrderID:    orderID,
		CustomerID: customer.CustomerID,
		Status:     domain.OrderStatusShipped,
		CreatedAt:  g.daysAgo(0, 365),
		Items:      items,
	}
	order.TotalAmount = order.ItemTotal()
	return order
}

// pickCustomer selects an order's owner with a deliberate 80/20-style skew:
// with probability 0.8 the pick lands in the heavy-buyer pool (the top fifth
// of customers by generation order), otherwise anywhere. The concentration
// gives the pagination and history benchmarks a customer with many orders.
func (g *Generator) pickCustomer(customers []domain.Customer) domain.Customer {
	if g.rng.Float64() < 0.8 {
		heavy := (len(customers) + 4) / 5
		return customers[g.rng.Intn(heavy)]
	}
	return customers[g.rng.Intn(len(customers))]
}

// price draws a uniform price in [5.00, 500.00] rounded to two decimals.
func (g *Generator) price() decimal.Decimal {
	return decimal.NewFromFloat(g.rng.Float64()*495 + 5).Round(2)
}

// daysAgo returns the reference time offset uniformly between minDays
// (inclusive) and maxDays (exclusive) days into the past.
func (g *Generator) daysAgo(minDays, maxDays int) time.Time {
	return g.now.AddDate(0, 0, -(g.rng.Intn(maxDays-minDays) + minDays))
}

// heaviestCustomer reduces the orders to the customer id owning the most of
// them. Ties keep whichever id was encountered first in order sequence.
func heaviestCustomer(orders []domain.Order) int64 {
	if len(orders) == 0 {
		return 0
	}

	counts := make(map[int64]int, len(orders))
	seen := make([]int64, 0, len(orders))
	for _, o := range orders {
		if counts[o.CustomerID] == 0 {
			seen = append(seen, o.CustomerID)
		}
		counts[o.CustomerID]++
	}

	best := seen[0]
	for _, id := range seen[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best
}
