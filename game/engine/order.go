package engine

import "math/rand"

// products is the fixed cargo label set orders are drawn from.
var products = []string{
	"Chicken Toes",
	"Mystery Meatballs",
	"Lumpy Lemonade",
	"Egg Slushies",
	"Fish Heads",
	"Soggy Spuds",
	"Mayo Milkshakes",
	"Sardine Smoothie",
	"Minty Meatloaf",
	"Shrimp Sorbet",
	"Bologna Pops",
	"Sour Cream Soda",
}

const (
	orderDurationSpread = 30 - 15 + 1
	orderDurationBase   = 5
)

// GenerateOrder produces a randomized cargo order for the given sequence
// number. The dwell duration lands in [5,20]: the spread matches a 15-30
// range but the base added afterwards is 5, and that shipped behavior is
// kept until product says otherwise.
func GenerateOrder(rng *rand.Rand, number int) Order {
	return Order{
		Cargo:    products[rng.Intn(len(products))],
		Duration: rng.Intn(orderDurationSpread) + orderDurationBase,
		Number:   number,
	}
}

// Products returns the cargo label set, primarily for display layers.
func Products() []string {
	out := make([]string, len(products))
	copy(out, products)
	return out
}
