package engine

import "sort"

// OrderAward is the coin award for one completed order: a flat base plus the
// order's dwell duration.
func OrderAward(o Order) int {
	return BaseOrderAward + o.Duration
}

// IdleBonus is the efficiency bonus for one completed order: the dwell
// duration minus the truck's accumulated idle seconds, floored at zero.
func IdleBonus(o Order, idleSeconds int) int {
	bonus := o.Duration - idleSeconds
	if bonus < 0 {
		return 0
	}
	return bonus
}

// TallyEarnings sums award plus bonus over a session's completion records.
func TallyEarnings(records map[string]CompletionRecord) int {
	total := 0
	for _, rec := range records {
		total += OrderAward(rec.Order) + IdleBonus(rec.Order, rec.IdleSeconds)
	}
	return total
}

// OrderResult is the per-order line of a day summary.
type OrderResult struct {
	TruckID     string `json:"truck_id"`
	Order       Order  `json:"order"`
	IdleSeconds int    `json:"idle_seconds"`
	Award       int    `json:"award"`
	Bonus       int    `json:"bonus"`
}

// DaySummary is the end-of-day tally handed to the overview screen.
type DaySummary struct {
	Day              int           `json:"day"`
	Completed        int           `json:"completed"`
	TotalIdleSeconds int           `json:"total_idle_seconds"`
	Earnings         int           `json:"earnings"`
	Orders           []OrderResult `json:"orders"`
}

// BuildDaySummary expands completion records into the day summary for the
// given (just finished) day.
func BuildDaySummary(day int, records map[string]CompletionRecord) *DaySummary {
	summary := &DaySummary{Day: day}
	for truckID, rec := range records {
		summary.Completed++
		summary.TotalIdleSeconds += rec.IdleSeconds
		summary.Earnings += OrderAward(rec.Order) + IdleBonus(rec.Order, rec.IdleSeconds)
		summary.Orders = append(summary.Orders, OrderResult{
			TruckID:     truckID,
			Order:       rec.Order,
			IdleSeconds: rec.IdleSeconds,
			Award:       OrderAward(rec.Order),
			Bonus:       IdleBonus(rec.Order, rec.IdleSeconds),
		})
	}
	sort.Slice(summary.Orders, func(i, j int) bool {
		return summary.Orders[i].Order.Number < summary.Orders[j].Order.Number
	})
	return summary
}
