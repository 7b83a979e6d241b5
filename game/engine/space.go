package engine

import "github.com/google/uuid"

// SpaceHandlers are the callbacks a space raises back into its orchestrator.
// Both are optional.
type SpaceHandlers struct {
	// OnDocked fires when a truck first becomes contained by the space.
	OnDocked func(truckID, spaceID string)
	// OnFulfilled fires once, when the occupant's dwell timer completes.
	// Dock spaces only.
	OnFulfilled func(truckID string)
}

// ContainmentTransition is the edge reported by EvaluateContainment.
type ContainmentTransition string

const (
	ContainmentEntered ContainmentTransition = "entered"
	ContainmentExited  ContainmentTransition = "exited"
)

// ContainmentEvent reports a containment edge for one (space, truck) pair.
type ContainmentEvent struct {
	Transition ContainmentTransition
	TruckID    string
	SpaceID    string
}

// SlotVisual is the presentation state derived from a space. It carries no
// independent state: it is a pure function of {fulfilled, contained, kind}.
type SlotVisual struct {
	Filled   bool   `json:"filled"`
	Color    string `json:"color,omitempty"`
	DoorOpen bool   `json:"door_open"`
}

// Space is a single parking or dock location. A dock runs a one-second-period
// dwell timer while occupied and fulfills its occupant once the timer reaches
// the occupant's order duration. Plain yard spaces only track containment.
//
// At most one truck is ever recorded as the occupant; see the exclusivity
// gate in EvaluateContainment.
type Space struct {
	ID      string   `json:"id"`
	Kind    SlotKind `json:"kind"`
	Enabled bool     `json:"enabled"`
	Bounds  Rect     `json:"bounds"`

	Contained        bool   `json:"contained"`
	OccupantID       string `json:"occupant_id,omitempty"`
	ContainedSeconds int    `json:"contained_seconds"`
	Fulfilled        bool   `json:"fulfilled"`

	handlers        SpaceHandlers
	requiredSeconds int
	timerActive     bool
	timerAccum      float64
}

// NewSpace creates a space of the given kind at fixed bounds.
func NewSpace(kind SlotKind, bounds Rect, enabled bool, handlers SpaceHandlers) *Space {
	return &Space{
		ID:       uuid.NewString(),
		Kind:     kind,
		Enabled:  enabled,
		Bounds:   bounds,
		handlers: handlers,
	}
}

// IsDock reports whether the space runs a fulfillment timer.
func (s *Space) IsDock() bool { return s.Kind == DockSlot }

// ContainsTruck reports whether the given truck is the current occupant.
func (s *Space) ContainsTruck(truckID string) bool {
	return s.Contained && s.OccupantID == truckID
}

// RemainingSeconds returns the dwell seconds left before fulfillment, for the
// shell's countdown display. Zero for non-docks and unoccupied docks.
func (s *Space) RemainingSeconds() int {
	if !s.IsDock() || !s.Contained || s.requiredSeconds == 0 {
		return 0
	}
	remaining := s.requiredSeconds - s.ContainedSeconds
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EvaluateContainment runs the padded box-within-box test for one truck and
// reports the edge, if any. Call it once per physics step per (space, truck)
// pair.
//
// The exclusivity gate suppresses evaluation entirely when the slot already
// holds a different truck, or when the slot is empty but the truck is already
// fulfilled, or already assigned to some other slot. Those are silent no-ops,
// not errors: they keep double-assignment structurally impossible.
func (s *Space) EvaluateContainment(t *Truck) *ContainmentEvent {
	if !s.Enabled {
		return nil
	}
	if s.OccupantID != "" && s.OccupantID != t.ID {
		return nil
	}
	if s.OccupantID == "" && t.Fulfilled {
		return nil
	}
	if s.OccupantID == "" && t.SpaceID != "" && t.SpaceID != s.ID {
		return nil
	}

	contained := s.Bounds.Padded(ContainmentPadding).ContainsRect(t.Body())

	switch {
	case contained && !s.Contained:
		s.Contained = true
		s.OccupantID = t.ID
		if s.handlers.OnDocked != nil {
			s.handlers.OnDocked(t.ID, s.ID)
		}
		if s.IsDock() {
			s.startTimer(t.Order.Duration)
		}
		return &ContainmentEvent{Transition: ContainmentEntered, TruckID: t.ID, SpaceID: s.ID}

	case !contained && s.Contained:
		s.Contained = false
		s.OccupantID = ""
		if s.IsDock() {
			s.clearTimer()
			if !s.Fulfilled {
				// Leaving early forfeits dwell progress.
				s.ContainedSeconds = 0
			}
		}
		return &ContainmentEvent{Transition: ContainmentExited, TruckID: t.ID, SpaceID: s.ID}
	}

	return nil
}

// TickTimer advances the dwell countdown by dt seconds. Each full second of
// occupancy increments ContainedSeconds up to the required duration; reaching
// it fulfills the occupant exactly once and stops the timer.
func (s *Space) TickTimer(dt float64) {
	if !s.timerActive {
		return
	}
	s.timerAccum += dt
	for s.timerAccum >= 1 && s.timerActive {
		s.timerAccum -= 1
		s.countUp()
	}
}

func (s *Space) countUp() {
	if s.ContainedSeconds < s.requiredSeconds {
		s.ContainedSeconds++
	}
	s.checkFulfillment()
}

func (s *Space) checkFulfillment() {
	if s.Fulfilled || s.requiredSeconds == 0 || s.ContainedSeconds < s.requiredSeconds {
		return
	}
	s.Fulfilled = true
	occupant := s.OccupantID
	s.clearTimer()
	if s.handlers.OnFulfilled != nil {
		s.handlers.OnFulfilled(occupant)
	}
}

// startTimer arms the dwell countdown. Any previous timer is cleared first so
// a re-dock never double-counts.
func (s *Space) startTimer(requiredSeconds int) {
	s.clearTimer()
	s.requiredSeconds = requiredSeconds
	s.timerActive = true
}

func (s *Space) clearTimer() {
	s.timerActive = false
	s.timerAccum = 0
}

// Reset forcibly returns the space to empty: no occupant, no timer, no dwell
// progress, not fulfilled. The orchestrator calls this after the occupant
// departs the yard.
func (s *Space) Reset() {
	s.Contained = false
	s.OccupantID = ""
	s.ContainedSeconds = 0
	s.Fulfilled = false
	s.requiredSeconds = 0
	s.clearTimer()
}

// Visual derives the presentation state for the space.
func (s *Space) Visual() SlotVisual {
	switch {
	case s.Fulfilled:
		return SlotVisual{Filled: true, Color: "gray", DoorOpen: false}
	case s.Contained:
		return SlotVisual{Filled: true, Color: "red", DoorOpen: s.IsDock()}
	default:
		return SlotVisual{DoorOpen: false}
	}
}
