package services

import (
	"fmt"
	"math/rand"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// namePool is the built-in first-name vocabulary people are drawn from.
var namePool = []string{
	"Alex", "Sam", "Jordan", "Taylor", "Casey", "Riley", "Avery", "Morgan", "Quinn", "Reese",
	"Chris", "Jamie", "Cameron", "Drew", "Logan", "Devon", "Shawn", "Dana", "Frankie", "Jesse",
	"Robin", "Kelly", "Leslie", "Skyler", "Rowan", "Sawyer", "Parker", "Elliot", "Harley", "Remy",
}

// pickNames draws n unique names from the pool using the seeded stream.
// The result is reproducible for a fixed seed and count.
func pickNames(rng *rand.Rand, n int) ([]entities.Person, error) {
	if n > len(namePool) {
		return nil, fmt.Errorf("%w: %d people requested, %d names available",
			entities.ErrNamePoolExhausted, n, len(namePool))
	}
	perm := rng.Perm(len(namePool))
	people := make([]entities.Person, n)
	for i := 0; i < n; i++ {
		people[i] = entities.Person(namePool[perm[i]])
	}
	return people, nil
}
