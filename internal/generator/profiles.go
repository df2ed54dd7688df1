package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProfile is returned when a profile name has no registered sizing.
var ErrUnknownProfile = errors.New("unknown benchmark profile")

// Profile defines the dataset cardinalities for one named size class.
type Profile struct {
	Name             string
	Customers        int
	Products         int
	Orders           int
	MaxItemsPerOrder int
}

// Built-in profiles. Sizing lives in one place so benchmarks stay
// repeatable and comparable across engines.
var profiles = map[string]Profile{
	"small":  {Name: "small", Customers: 100, Products: 100, Orders: 1000, MaxItemsPerOrder: 10},
	"medium": {Name: "medium", Customers: 1000, Products: 1000, Orders: 10000, MaxItemsPerOrder: 10},
}

// ProfileByName resolves a named size class, case-insensitively.
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames lists the registered profile names, for CLI help output.
func ProfileNames() []string {
	return []string{"small", "medium"}
}
