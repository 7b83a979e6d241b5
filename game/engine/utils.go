package engine

// ContainedTruckCount counts admitted trucks currently parked in some slot.
func (y *Yard) ContainedTruckCount() int {
	count := 0
	for _, truck := range y.trucks {
		if y.spaceContaining(truck.ID) != nil {
			count++
		}
	}
	return count
}

// FulfilledTruckCount counts admitted trucks whose orders are complete but
// which have not yet departed.
func (y *Yard) FulfilledTruckCount() int {
	count := 0
	for _, truck := range y.trucks {
		if truck.Fulfilled {
			count++
		}
	}
	return count
}

// EnabledSlotCount returns how many slots of the given kind are interactive
// this session.
func (y *Yard) EnabledSlotCount(kind SlotKind) int {
	count := 0
	for _, space := range y.spaces {
		if space.Kind == kind && space.Enabled {
			count++
		}
	}
	return count
}

// ManhattanDistance is the grid distance between two positions.
func ManhattanDistance(a, b Position) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
