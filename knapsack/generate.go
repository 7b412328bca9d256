package knapsack

import "math/rand"

// Generate builds a random Instance of n items. Each weight is drawn
// uniformly from weights and each value uniformly from values, both
// inclusive and independent of each other.
//
// Errors:
//   - ErrTooManyItems - n < 0 or n > bitstring.Width.
//   - ErrInvalidRange - a range with Min > Max.
//   - ErrNilRNG       - rng == nil.
//
// Complexity: O(n).
func Generate(n int, weights, values Range, rng *rand.Rand) (Instance, error) {
	if err := validateSize(n); err != nil {
		return Instance{}, err
	}
	if err := validateRange("weight", weights); err != nil {
		return Instance{}, err
	}
	if err := validateRange("value", values); err != nil {
		return Instance{}, err
	}
	if rng == nil {
		return Instance{}, ErrNilRNG
	}

	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Weight: uniform(rng, weights),
			Value:  uniform(rng, values),
		}
	}
	return Instance{Items: items}, nil
}
