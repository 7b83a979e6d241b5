package engine

import "testing"

func TestOrderAward(t *testing.T) {
	if got := OrderAward(Order{Duration: 20}); got != 25 {
		t.Errorf("OrderAward = %d, want 25", got)
	}
}

func TestIdleBonus(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		idle     int
		want     int
	}{
		{"no idle", 20, 0, 20},
		{"some idle", 20, 8, 12},
		{"idle equals duration", 20, 20, 0},
		{"idle exceeds duration floors at zero", 20, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IdleBonus(Order{Duration: tt.duration}, tt.idle); got != tt.want {
				t.Errorf("IdleBonus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTallyEarnings(t *testing.T) {
	// One 20-second order with 8 idle seconds: 25 award + 12 bonus = 37.
	records := map[string]CompletionRecord{
		"t1": {IdleSeconds: 8, Order: Order{Duration: 20, Number: 1}},
	}
	if got := TallyEarnings(records); got != 37 {
		t.Errorf("TallyEarnings = %d, want 37", got)
	}

	records["t2"] = CompletionRecord{IdleSeconds: 30, Order: Order{Duration: 10, Number: 2}}
	// Second order: 15 award + 0 bonus.
	if got := TallyEarnings(records); got != 52 {
		t.Errorf("TallyEarnings = %d, want 52", got)
	}

	if got := TallyEarnings(nil); got != 0 {
		t.Errorf("TallyEarnings(nil) = %d, want 0", got)
	}
}

func TestBuildDaySummary(t *testing.T) {
	records := map[string]CompletionRecord{
		"b": {IdleSeconds: 5, Order: Order{Cargo: "Fish Heads", Duration: 10, Number: 2}},
		"a": {IdleSeconds: 0, Order: Order{Cargo: "Egg Slushies", Duration: 20, Number: 1}},
	}

	summary := BuildDaySummary(3, records)

	if summary.Day != 3 {
		t.Errorf("day = %d, want 3", summary.Day)
	}
	if summary.Completed != 2 {
		t.Errorf("completed = %d, want 2", summary.Completed)
	}
	if summary.TotalIdleSeconds != 5 {
		t.Errorf("total idle = %d, want 5", summary.TotalIdleSeconds)
	}
	// (5+20)+20 for order 1, (5+10)+5 for order 2.
	if summary.Earnings != 65 {
		t.Errorf("earnings = %d, want 65", summary.Earnings)
	}
	if summary.Earnings != TallyEarnings(records) {
		t.Error("summary earnings disagree with TallyEarnings")
	}

	if len(summary.Orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(summary.Orders))
	}
	if summary.Orders[0].Order.Number != 1 || summary.Orders[1].Order.Number != 2 {
		t.Errorf("orders not sorted by number: %+v", summary.Orders)
	}
	if summary.Orders[0].Award != 25 || summary.Orders[0].Bonus != 20 {
		t.Errorf("order 1 line = %+v", summary.Orders[0])
	}
}
