package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/benchmark"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/generator"
)

// SeedResponse reports what was generated and persisted, plus suggested
// benchmark inputs: order id 1 for the details benchmark and the heaviest
// customer for the history benchmark.
type SeedResponse struct {
	Engine              string `json:"engine"`
	Profile             string `json:"profile"`
	Seed                int64  `json:"seed"`
	Customers           int    `json:"customers"`
	Products            int    `json:"products"`
	Orders              int    `json:"orders"`
	MaxItemsPerOrder    int    `json:"max_items_per_order"`
	SuggestedCustomerID int64  `json:"suggested_customer_id"`
	SuggestedOrderID    int64  `json:"suggested_order_id"`
}

// RunResponse carries the seven summaries of a full benchmark run together
// with the inputs that produced them.
type RunResponse struct {
	Engine  string              `json:"engine"`
	Inputs  benchmark.Params    `json:"inputs"`
	Results []benchmark.Summary `json:"results"`
}

// seed handles POST /benchmark/seed?engine=sql&profile=small&seed=42.
// The same domain data is generated regardless of engine, to keep the
// benchmarks fair and comparable.
func (s *Server) seed(c *gin.Context) {
	eng, err := engine.Parse(c.Query("engine"))
	if err != nil {
		s.fail(c, err)
		return
	}
	backend, err := s.backends.Get(eng)
	if err != nil {
		s.fail(c, err)
		return
	}

	profile, err := generator.ProfileByName(c.DefaultQuery("profile", "small"))
	if err != nil {
		s.fail(c, err)
		return
	}

	seed, err := strconv.ParseInt(c.DefaultQuery("seed", "42"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
		return
	}

	dataset, err := generator.New(seed).Generate(profile)
	if err != nil {
		s.fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := backend.Seeder.Clear(ctx); err != nil {
		s.fail(c, err)
		return
	}
	if err := backend.Seeder.Seed(ctx, dataset.Customers, dataset.Products, dataset.Orders); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, SeedResponse{
		Engine:              string(eng),
		Profile:             profile.Name,
		Seed:                seed,
		Customers:           profile.Customers,
		Products:            profile.Products,
		Orders:              profile.Orders,
		MaxItemsPerOrder:    profile.MaxItemsPerOrder,
		SuggestedCustomerID: dataset.HeaviestCustomerID,
		SuggestedOrderID:    1,
	})
}

// run handles POST /benchmark/run?engine=sql&iterations=30&customerId=195.
func (s *Server) run(c *gin.Context) {
	eng, err := engine.Parse(c.Query("engine"))
	if err != nil {
		s.fail(c, err)
		return
	}
	backend, err := s.backends.Get(eng)
	if err != nil {
		s.fail(c, err)
		return
	}

	params, err := runParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := backend.NewSuite().RunAll(c.Request.Context(), params)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, RunResponse{
		Engine:  string(eng),
		Inputs:  params,
		Results: results,
	})
}

// runParams reads the suite inputs from query parameters, falling back to
// the defaults the original inputs used.
func runParams(c *gin.Context) (benchmark.Params, error) {
	params := benchmark.DefaultParams()

	queries := []struct {
		name string
		dst  *int
	}{
		{"iterations", &params.Iterations},
		{"pageSize", &params.PageSize},
		{"page1", &params.Page1},
		{"page10", &params.Page10},
		{"lastDays", &params.LastDays},
		{"topLimit", &params.TopLimit},
	}
	for _, q := range queries {
		raw, ok := c.GetQuery(q.name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return benchmark.Params{}, errInvalidQuery(q.name)
		}
		*q.dst = v
	}

	ids := []struct {
		name string
		dst  *int64
	}{
		{"customerId", &params.CustomerID},
		{"orderId", &params.OrderID},
	}
	for _, q := range ids {
		raw, ok := c.GetQuery(q.name)
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return benchmark.Params{}, errInvalidQuery(q.name)
		}
		*q.dst = v
	}

	return params, nil
}

type errInvalidQuery string

func (e errInvalidQuery) Error() string {
	return string(e) + " must be an integer"
}
