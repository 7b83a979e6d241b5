package engine

// ExitGate is the departure zone at the yard entrance. It runs the same
// padded containment test as a space, edge-triggered, but keeps no occupancy:
// the single containment boolean exists purely for edge detection, and only
// fulfilled trucks trigger the departure callback. Unfulfilled trucks may sit
// in the gate region with no effect.
type ExitGate struct {
	Bounds Rect `json:"bounds"`

	contained   bool
	onDeparture func(truckID string)
}

// NewExitGate creates the gate over the given zone. onDeparture is optional.
func NewExitGate(bounds Rect, onDeparture func(truckID string)) *ExitGate {
	return &ExitGate{Bounds: bounds, onDeparture: onDeparture}
}

// EvaluateDeparture runs the containment edge-detect for one truck. On the
// enter edge, the departure callback fires only when the truck is fulfilled.
func (g *ExitGate) EvaluateDeparture(t *Truck) {
	contained := g.Bounds.Padded(ContainmentPadding).ContainsRect(t.Body())

	switch {
	case contained && !g.contained:
		g.contained = true
		if t.Fulfilled && g.onDeparture != nil {
			g.onDeparture(t.ID)
		}
	case !contained && g.contained:
		g.contained = false
	}
}
