package engine

import "github.com/google/uuid"

// truckBodyRatio narrows the truck's collision body along the axis
// perpendicular to travel, mirroring the trailer sprite's footprint.
const truckBodyRatio = 0.60

// Truck is one vehicle admitted to the yard. Its order and velocity are fixed
// at spawn; everything else evolves through docking, possession, and
// departure.
type Truck struct {
	ID       string    `json:"id"`
	Order    Order     `json:"order"`
	Position Position  `json:"position"`
	Facing   Direction `json:"facing"`

	// Fulfilled flips once the truck's dock dwell completes and never
	// reverts for the truck's lifetime.
	Fulfilled bool `json:"fulfilled"`

	// SpaceID is the slot currently (or most recently) docking the truck.
	SpaceID string `json:"space_id,omitempty"`

	// Idle accrual: IdleSeconds grows by one per second while Idle is set.
	Idle        bool `json:"idle"`
	IdleSeconds int  `json:"idle_seconds"`

	// Active marks the truck currently possessed by the driver (the shell
	// renders this as a highlight tint).
	Active bool `json:"active"`

	velocity  float64
	width     float64
	height    float64
	idleAccum float64
}

// NewTruck spawns a truck at the given position with its order and a velocity
// that stays constant for the truck's lifetime. Trucks spawn idle, facing up.
func NewTruck(pos Position, order Order, velocity, width, height float64) *Truck {
	return &Truck{
		ID:       uuid.NewString(),
		Order:    order,
		Position: pos,
		Facing:   DirUp,
		Idle:     true,
		velocity: velocity,
		width:    width,
		height:   height,
	}
}

// Velocity returns the truck's movement speed in units per second.
func (t *Truck) Velocity() float64 { return t.velocity }

// Body returns the truck's collision rectangle. The body narrows along the
// axis perpendicular to the current facing.
func (t *Truck) Body() Rect {
	w, h := t.width*truckBodyRatio, t.height
	if t.Facing == DirLeft || t.Facing == DirRight {
		w, h = t.width, t.height*truckBodyRatio
	}
	return Rect{X: t.Position.X, Y: t.Position.Y, W: w, H: h}
}

// SetActive toggles the possession highlight.
func (t *Truck) SetActive(active bool) { t.Active = active }

// SetIdle starts or stops idle accrual. Starting resets the partial-second
// accumulator so a fresh second must elapse before the counter advances.
func (t *Truck) SetIdle(idle bool) {
	if idle && !t.Idle {
		t.idleAccum = 0
	}
	t.Idle = idle
}

// TickIdle advances the idle accrual countdown by dt seconds. It is a no-op
// unless the truck is idle.
func (t *Truck) TickIdle(dt float64) {
	if !t.Idle {
		return
	}
	t.idleAccum += dt
	for t.idleAccum >= 1 {
		t.idleAccum -= 1
		t.IdleSeconds++
	}
}

// AssignSpace records the slot that most recently contained the truck. Used
// for slot cleanup after the truck departs.
func (t *Truck) AssignSpace(spaceID string) {
	t.SpaceID = spaceID
}

// MarkFulfilled flips the truck to fulfilled. One-way.
func (t *Truck) MarkFulfilled() {
	t.Fulfilled = true
}

// Step applies one frame of player-driven movement. Exactly one direction
// applies per frame, priority left > right > up > down; the facing follows
// the applied direction. The resulting position is clamped to bounds.
func (t *Truck) Step(in InputState, dt float64, bounds Rect) {
	switch {
	case in.Left:
		t.Position.X -= t.velocity * dt
		t.Facing = DirLeft
	case in.Right:
		t.Position.X += t.velocity * dt
		t.Facing = DirRight
	case in.Up:
		t.Position.Y -= t.velocity * dt
		t.Facing = DirUp
	case in.Down:
		t.Position.Y += t.velocity * dt
		t.Facing = DirDown
	}

	body := t.Body()
	t.Position = bounds.ClampCenter(t.Position, body.W, body.H)
}
