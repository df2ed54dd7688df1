package generator

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	smallProfile, err := ProfileByName("small")
	if err != nil {
		t.Fatalf("small profile: %v", err)
	}

	properties.Property("heavy-buyer pool owns roughly 84% of orders", prop.ForAll(
		func(seed int64) bool {
			dataset, err := NewAt(seed, testNow).Generate(smallProfile)
			if err != nil {
				return false
			}

			// The pool is the top fifth of customers by id. An order lands
			// there with probability 0.8 directly plus 0.2*0.2 via the
			// uniform fallback, so the expected share is 0.84. With 1000
			// orders that share stays well inside [0.78, 0.90].
			heavy := int64((len(dataset.Customers) + 4) / 5)
			inPool := 0
			for _, o := range dataset.Orders {
				if o.CustomerID <= heavy {
					inPool++
				}
			}
			share := float64(inPool) / float64(len(dataset.Orders))
			return share > 0.78 && share < 0.90
		},
		gen.Int64(),
	))

	properties.Property("same seed reproduces the same dataset", prop.ForAll(
		func(seed int64) bool {
			first, err := NewAt(seed, testNow).Generate(smallProfile)
			if err != nil {
				return false
			}
			second, err := NewAt(seed, testNow).Generate(smallProfile)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		gen.Int64(),
	))

	properties.Property("every order total equals the sum of its items", prop.ForAll(
		func(seed int64) bool {
			dataset, err := NewAt(seed, testNow).Generate(smallProfile)
			if err != nil {
				return false
			}
			for _, o := range dataset.Orders {
				if !o.TotalAmount.Equal(o.ItemTotal()) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
