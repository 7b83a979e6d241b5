package engine

import (
	"math/rand"
	"testing"
)

func TestGenerateOrderDurationRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		order := GenerateOrder(rng, i+1)
		if order.Duration < 5 || order.Duration > 35 {
			t.Fatalf("order %d: duration %d outside [5,35]", i+1, order.Duration)
		}
		if order.Cargo == "" {
			t.Fatalf("order %d: empty cargo", i+1)
		}
		if order.Number != i+1 {
			t.Fatalf("order number = %d, want %d", order.Number, i+1)
		}
	}
}

func TestGenerateOrderDeterministic(t *testing.T) {
	a := GenerateOrder(rand.New(rand.NewSource(7)), 1)
	b := GenerateOrder(rand.New(rand.NewSource(7)), 1)
	if a != b {
		t.Errorf("same seed produced different orders: %+v vs %+v", a, b)
	}
}

func TestProductsCopy(t *testing.T) {
	list := Products()
	if len(list) == 0 {
		t.Fatal("empty product list")
	}
	list[0] = "mutated"
	if Products()[0] == "mutated" {
		t.Error("Products returned a shared slice")
	}
}
