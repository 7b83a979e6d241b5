package progress

import (
	"errors"
	"testing"
)

func TestCostFormula(t *testing.T) {
	yard, _ := Catalog(UpgradeYardLevel)

	tests := []struct {
		level int
		want  int
	}{
		{0, 50},
		{1, 150},  // 50 + 50*1*2
		{2, 250},  // 50 + 50*2*2
		{4, 450},
	}

	for _, tt := range tests {
		if got := Cost(yard, tt.level); got != tt.want {
			t.Errorf("Cost(yardLevel, %d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	worker, _ := Catalog(UpgradeWorkerSpeed)
	if got := Cost(worker, 1); got != 50 { // 20 + 20*1*1.5
		t.Errorf("Cost(workerSpeed, 1) = %d, want 50", got)
	}
}

func TestVisibilityGates(t *testing.T) {
	reg := NewRegistry()

	if !Visible(reg, UpgradeYardLevel) {
		t.Error("yard level should always be visible")
	}
	if Visible(reg, UpgradeTruckSpeed) {
		t.Error("truck speed visible before yard level 1")
	}

	reg.SetInt(string(UpgradeYardLevel), 1)
	if !Visible(reg, UpgradeTruckSpeed) {
		t.Error("truck speed hidden after yard level 1")
	}

	// Worker speed needs yard level 1 AND truck speed 2.
	if Visible(reg, UpgradeWorkerSpeed) {
		t.Error("worker speed visible with truck speed 0")
	}
	reg.SetInt(string(UpgradeTruckSpeed), 2)
	if !Visible(reg, UpgradeWorkerSpeed) {
		t.Error("worker speed hidden with prerequisites met")
	}
}

func TestPurchase(t *testing.T) {
	reg := NewRegistry()
	reg.AddCoins(120)

	status, err := Purchase(reg, UpgradeYardLevel)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if status.Level != 1 {
		t.Errorf("level = %d, want 1", status.Level)
	}
	if reg.Coins() != 70 {
		t.Errorf("coins = %d, want 70", reg.Coins())
	}
	if status.Cost != 150 {
		t.Errorf("next cost = %d, want 150", status.Cost)
	}
}

func TestPurchaseErrors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		reg := NewRegistry()
		if _, err := Purchase(reg, "teleporter"); !errors.Is(err, ErrUnknownUpgrade) {
			t.Errorf("err = %v, want ErrUnknownUpgrade", err)
		}
	})

	t.Run("hidden", func(t *testing.T) {
		reg := NewRegistry()
		reg.AddCoins(1000)
		if _, err := Purchase(reg, UpgradeDockSpaces); !errors.Is(err, ErrUpgradeHidden) {
			t.Errorf("err = %v, want ErrUpgradeHidden", err)
		}
	})

	t.Run("insufficient coins", func(t *testing.T) {
		reg := NewRegistry()
		reg.AddCoins(49)
		if _, err := Purchase(reg, UpgradeYardLevel); !errors.Is(err, ErrInsufficientCoins) {
			t.Errorf("err = %v, want ErrInsufficientCoins", err)
		}
		if reg.Coins() != 49 {
			t.Errorf("failed purchase touched the balance: %d", reg.Coins())
		}
	})

	t.Run("maxed", func(t *testing.T) {
		reg := NewRegistry()
		cfg, _ := Catalog(UpgradeYardLevel)
		reg.SetInt(string(UpgradeYardLevel), cfg.MaxLevel)
		reg.AddCoins(100000)
		if _, err := Purchase(reg, UpgradeYardLevel); !errors.Is(err, ErrUpgradeMaxed) {
			t.Errorf("err = %v, want ErrUpgradeMaxed", err)
		}
	})
}

func TestStatusListing(t *testing.T) {
	reg := NewRegistry()
	reg.AddCoins(60)

	listing := Status(reg)
	if len(listing) != len(Kinds()) {
		t.Fatalf("listing = %d entries, want %d", len(listing), len(Kinds()))
	}
	if listing[0].Kind != UpgradeYardLevel {
		t.Errorf("first entry = %q, want yard level", listing[0].Kind)
	}

	for _, entry := range listing {
		switch entry.Kind {
		case UpgradeYardLevel:
			if !entry.Visible || !entry.Affordable || entry.Cost != 50 {
				t.Errorf("yard level entry = %+v", entry)
			}
		default:
			if entry.Visible {
				t.Errorf("%s visible at level zero", entry.Kind)
			}
		}
	}
}
