package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/domain"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/generator"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/ports"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryEngine is a full in-memory backend so the handlers can be exercised
// end to end without a database.
type memoryEngine struct {
	customers map[int64]domain.Customer
	products  map[int64]domain.Product
	orders    map[int64]domain.Order
	nextID    int64

	pingErr error
	seedErr error
}

func newMemoryEngine() *memoryEngine {
	return &memoryEngine{
		customers: make(map[int64]domain.Customer),
		products:  make(map[int64]domain.Product),
		orders:    make(map[int64]domain.Order),
	}
}

func (m *memoryEngine) Exists(ctx context.Context, customerID int64) (bool, error) {
	_, ok := m.customers[customerID]
	return ok, nil
}

func (m *memoryEngine) ByIDs(ctx context.Context, productIDs []int64) ([]ports.ProductSnapshot, error) {
	snaps := make([]ports.ProductSnapshot, 0, len(productIDs))
	for _, id := range productIDs {
		if p, ok := m.products[id]; ok {
			snaps = append(snaps, ports.ProductSnapshot{ProductID: p.ProductID, Price: p.Price})
		}
	}
	return snaps, nil
}

func (m *memoryEngine) Create(ctx context.Context, order *domain.Order) (int64, error) {
	m.nextID++
	order.OrderID = m.nextID
	m.orders[order.OrderID] = *order
	return order.OrderID, nil
}

func (m *memoryEngine) DetailsByID(ctx context.Context, orderID int64) (*ports.OrderDetails, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	details := &ports.OrderDetails{
		OrderID:     o.OrderID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	}
	if c, ok := m.customers[o.CustomerID]; ok {
		details.Customer = ports.CustomerSummary{
			CustomerID: c.CustomerID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			Email:      c.Email,
		}
	}
	for _, item := range o.Items {
		d := ports.OrderItemDetails{
			ProductID: item.ProductID,
			SKU:       ports.Unknown,
			Name:      ports.Unknown,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		if p, ok := m.products[item.ProductID]; ok {
			d.SKU, d.Name = p.SKU, p.Name
		}
		details.Items = append(details.Items, d)
	}
	return details, nil
}

func (m *memoryEngine) Page(ctx context.Context, customerID int64, pageNumber, pageSize int) (*ports.OrderHistoryPage, error) {
	return &ports.OrderHistoryPage{CustomerID: customerID, PageNumber: pageNumber, PageSize: pageSize}, nil
}

func (m *memoryEngine) TopSelling(ctx context.Context, fromUTC, toUTC time.Time, limit int) (*ports.TopProductsResult, error) {
	return &ports.TopProductsResult{FromUTC: fromUTC, ToUTC: toUTC, Limit: limit}, nil
}

func (m *memoryEngine) Clear(ctx context.Context) error {
	if m.seedErr != nil {
		return m.seedErr
	}
	m.customers = make(map[int64]domain.Customer)
	m.products = make(map[int64]domain.Product)
	m.orders = make(map[int64]domain.Order)
	m.nextID = 0
	return nil
}

func (m *memoryEngine) Seed(ctx context.Context, customers []domain.Customer, products []domain.Product, orders []domain.Order) error {
	if m.seedErr != nil {
		return m.seedErr
	}
	for _, c := range customers {
		m.customers[c.CustomerID] = c
	}
	for _, p := range products {
		m.products[p.ProductID] = p
	}
	for _, o := range orders {
		m.orders[o.OrderID] = o
		if o.OrderID > m.nextID {
			m.nextID = o.OrderID
		}
	}
	return nil
}

func (m *memoryEngine) backend(name engine.Engine) *engine.Backend {
	return &engine.Backend{
		Name:        name,
		Customers:   m,
		Products:    m,
		OrderWrite:  m,
		OrderRead:   m,
		History:     m,
		TopProducts: m,
		Seeder:      m,
		Ping:        func(ctx context.Context) error { return m.pingErr },
	}
}

func newTestServer() (*Server, *memoryEngine, *memoryEngine) {
	sqlEngine := newMemoryEngine()
	mongoEngine := newMemoryEngine()
	srv := NewServer(&engine.Set{
		SQL:   sqlEngine.backend(engine.SQL),
		Mongo: mongoEngine.backend(engine.Mongo),
	})
	return srv, sqlEngine, mongoEngine
}

func doRequest(srv *Server, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _, _ := newTestServer()

	w := doRequest(srv, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthCheckReportsUnreachableEngine(t *testing.T) {
	srv, _, mongoEngine := newTestServer()
	mongoEngine.pingErr = errors.New("no reachable servers")

	w := doRequest(srv, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"engine":"mongo"`)
}

func TestSeedEndpoint(t *testing.T) {
	srv, sqlEngine, _ := newTestServer()

	w := doRequest(srv, http.MethodPost, "/benchmark/seed?engine=sql&profile=small&seed=42")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sql", resp.Engine)
	assert.Equal(t, "small", resp.Profile)
	assert.Equal(t, int64(42), resp.Seed)
	assert.Equal(t, 100, resp.Customers)
	assert.Equal(t, 1000, resp.Orders)
	assert.Equal(t, int64(1), resp.SuggestedOrderID)
	assert.NotZero(t, resp.SuggestedCustomerID)

	assert.Len(t, sqlEngine.customers, 100)
	assert.Len(t, sqlEngine.products, 100)
	assert.Len(t, sqlEngine.orders, 1000)
}

func TestSeedEndpointRejectsBadInputs(t *testing.T) {
	srv, _, _ := newTestServer()

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing engine", target: "/benchmark/seed"},
		{name: "unknown engine", target: "/benchmark/seed?engine=postgres"},
		{name: "unknown profile", target: "/benchmark/seed?engine=sql&profile=huge"},
		{name: "non-numeric seed", target: "/benchmark/seed?engine=sql&seed=forty-two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(srv, http.MethodPost, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRunEndpoint(t *testing.T) {
	srv, sqlEngine, _ := newTestServer()

	// Seed in-memory data directly so the suite has something to read.
	dataset, err := generator.New(42).Generate(mustProfile(t, "small"))
	require.NoError(t, err)
	require.NoError(t, sqlEngine.Seed(context.Background(), dataset.Customers, dataset.Products, dataset.Orders))

	target := fmt.Sprintf("/benchmark/run?engine=sql&iterations=2&customerId=%d", dataset.HeaviestCustomerID)
	w := doRequest(srv, http.MethodPost, target)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sql", resp.Engine)
	assert.Equal(t, 2, resp.Inputs.Iterations)
	require.Len(t, resp.Results, 7)
	assert.Equal(t, "UC2.GetOrderDetails", resp.Results[0].UseCase)
	assert.Equal(t, "UC1.PlaceOrder.Items10", resp.Results[6].UseCase)
}

func TestRunEndpointRejectsBadInputs(t *testing.T) {
	srv, _, _ := newTestServer()

	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown engine", target: "/benchmark/run?engine=oracle"},
		{name: "non-numeric iterations", target: "/benchmark/run?engine=sql&iterations=lots"},
		{name: "iterations out of bounds", target: "/benchmark/run?engine=sql&iterations=500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(srv, http.MethodPost, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPlaceOrderThenReadDetailsRoundTrip(t *testing.T) {
	_, sqlEngine, _ := newTestServer()

	dataset, err := generator.New(42).Generate(mustProfile(t, "small"))
	require.NoError(t, err)
	require.NoError(t, sqlEngine.Seed(context.Background(), dataset.Customers, dataset.Products, dataset.Orders))

	backend := sqlEngine.backend(engine.SQL)
	placeOrder := usecase.NewPlaceOrder(backend.Customers, backend.Products, backend.OrderWrite)
	getDetails := usecase.NewGetOrderDetails(backend.OrderRead)

	orderID, err := placeOrder.Execute(context.Background(), usecase.PlaceOrderRequest{
		CustomerID: 1,
		Items: []usecase.OrderItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
			{ProductID: 3, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), orderID, "id continues after the 1000 seeded orders")

	details, err := getDetails.Execute(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, details.Items, 3)
	assert.Equal(t, string(domain.OrderStatusPending), details.Status)

	expected := dataset.Products[0].Price.Mul(decimal.NewFromInt(2)).
		Add(dataset.Products[1].Price).
		Add(dataset.Products[2].Price.Mul(decimal.NewFromInt(3)))
	assert.True(t, details.TotalAmount.Equal(expected),
		"total %s != snapshot sum %s", details.TotalAmount, expected)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: usecase.ErrInvalidInput, want: http.StatusBadRequest},
		{err: fmt.Errorf("wrapped: %w", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{err: engine.ErrUnknownEngine, want: http.StatusBadRequest},
		{err: generator.ErrUnknownProfile, want: http.StatusBadRequest},
		{err: generator.ErrInvalidProfile, want: http.StatusBadRequest},
		{err: usecase.ErrNotFound, want: http.StatusNotFound},
		{err: usecase.ErrDomainViolation, want: http.StatusUnprocessableEntity},
		{err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), "error %v", tt.err)
	}
}

func mustProfile(t *testing.T, name string) generator.Profile {
	t.Helper()
	p, err := generator.ProfileByName(name)
	require.NoError(t, err)
	return p
}
