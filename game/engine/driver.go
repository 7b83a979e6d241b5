package engine

// driverExitGap is the clearance between a truck's body and the spot the
// driver reappears at when stepping out.
const driverExitGap = 15

// DriverMode is the worker's movement mode.
type DriverMode string

const (
	ModeWalking DriverMode = "walking"
	ModeDriving DriverMode = "driving"
)

// Driver is the player-controlled worker. While walking it moves freely and
// tracks which truck it is touching (the candidate the orchestrator may hand
// it when the action key fires). While driving, movement is delegated
// entirely to the possessed truck and the driver is hidden and inert.
type Driver struct {
	Position Position   `json:"position"`
	Mode     DriverMode `json:"mode"`

	width    float64
	height   float64
	velocity float64

	candidate *Truck
}

// NewDriver creates the worker at the given position. The velocity is fixed
// at construction from the worker-speed upgrade level.
func NewDriver(pos Position, width, height, velocity float64) *Driver {
	return &Driver{
		Position: pos,
		Mode:     ModeWalking,
		width:    width,
		height:   height,
		velocity: velocity,
	}
}

// Velocity returns the walking speed in units per second.
func (d *Driver) Velocity() float64 { return d.velocity }

// Driving reports whether the driver currently possesses a truck.
func (d *Driver) Driving() bool { return d.Mode == ModeDriving }

// Body returns the worker's collision rectangle.
func (d *Driver) Body() Rect {
	return Rect{X: d.Position.X, Y: d.Position.Y, W: d.width, H: d.height}
}

// Candidate returns the truck the driver is touching (or possessing), if any.
func (d *Driver) Candidate() *Truck { return d.candidate }

// SetCandidate records the truck the driver is currently in contact with.
// The orchestrator calls this from its per-frame contact pass.
func (d *Driver) SetCandidate(t *Truck) { d.candidate = t }

// EnterVehicle switches the driver to driving mode. The driver keeps a
// reference to the possessed truck but is otherwise inert until exit.
func (d *Driver) EnterVehicle(t *Truck) {
	d.Mode = ModeDriving
	d.candidate = t
}

// ExitVehicle switches the driver back to walking and repositions it beside
// the vehicle it was possessing, on the side matching the truck's facing.
// The candidate reference is dropped; contact detection will repopulate it.
func (d *Driver) ExitVehicle() {
	if t := d.candidate; t != nil {
		body := t.Body()
		switch t.Facing {
		case DirUp:
			d.Position.X = body.X - body.W/2 - d.width/2 - driverExitGap
			d.Position.Y = body.Y - body.H/2 + d.height/2
		case DirDown:
			d.Position.X = body.X - body.W/2 - d.width/2 - driverExitGap
			d.Position.Y = body.Y + body.H/2 - d.height/2
		case DirRight:
			d.Position.X = body.X + body.W/2 + d.width/2 + driverExitGap
			d.Position.Y = body.Y - body.H/2 + d.height/2
		case DirLeft:
			d.Position.X = body.X - body.W/2 - d.width/2 - driverExitGap
			d.Position.Y = body.Y - body.H/2 + d.height/2
		}
	}
	d.Mode = ModeWalking
	d.candidate = nil
}

// Step applies one frame of walking movement, axis-exclusive with priority
// left > right > up > down. No-op while driving.
func (d *Driver) Step(in InputState, dt float64, bounds Rect) {
	if d.Driving() {
		return
	}

	switch {
	case in.Left:
		d.Position.X -= d.velocity * dt
	case in.Right:
		d.Position.X += d.velocity * dt
	case in.Up:
		d.Position.Y -= d.velocity * dt
	case in.Down:
		d.Position.Y += d.velocity * dt
	}

	d.Position = bounds.ClampCenter(d.Position, d.width, d.height)
}
