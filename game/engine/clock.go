package engine

import "fmt"

// ClockPhase is the warning state of the day clock.
type ClockPhase string

const (
	ClockNormal   ClockPhase = "normal"
	ClockWarning  ClockPhase = "warning"
	ClockCritical ClockPhase = "critical"
)

// DayClock advances simulated minutes on a fixed real-time period. Each tick
// adds MinutesPerTick; when the hour reaches the end hour the day is done and
// the clock stops.
type DayClock struct {
	Hour int `json:"hour"`
	Min  int `json:"min"`

	endHour        int
	minutesPerTick int
	tickSeconds    float64
	accum          float64
	done           bool
}

// NewDayClock starts a clock at startHour:00 running until endHour.
func NewDayClock(startHour, endHour, minutesPerTick int, tickSeconds float64) *DayClock {
	return &DayClock{
		Hour:           startHour,
		endHour:        endHour,
		minutesPerTick: minutesPerTick,
		tickSeconds:    tickSeconds,
	}
}

// Done reports whether the working day has elapsed.
func (c *DayClock) Done() bool { return c.done }

// Tick advances the clock by dt seconds of real time. It returns true on the
// tick that ends the day; afterwards the clock stays done and inert.
func (c *DayClock) Tick(dt float64) bool {
	if c.done {
		return false
	}
	c.accum += dt
	for c.accum >= c.tickSeconds {
		c.accum -= c.tickSeconds
		if c.Hour >= c.endHour {
			c.done = true
			return true
		}
		c.Min += c.minutesPerTick
		if c.Min >= 60 {
			c.Min = 0
			c.Hour++
		}
	}
	return false
}

// Phase returns the warning state: warning with two hours left, critical with
// one or less.
func (c *DayClock) Phase() ClockPhase {
	switch remaining := c.endHour - c.Hour; {
	case remaining <= 1:
		return ClockCritical
	case remaining == 2:
		return ClockWarning
	default:
		return ClockNormal
	}
}

// String formats the clock as H:MM for display.
func (c *DayClock) String() string {
	return fmt.Sprintf("%d:%02d", c.Hour, c.Min)
}
