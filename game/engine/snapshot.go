package engine

// SpaceSnapshot is the serializable view of one slot.
type SpaceSnapshot struct {
	ID               string     `json:"id"`
	Kind             SlotKind   `json:"kind"`
	Enabled          bool       `json:"enabled"`
	Bounds           Rect       `json:"bounds"`
	Contained        bool       `json:"contained"`
	OccupantID       string     `json:"occupant_id,omitempty"`
	ContainedSeconds int        `json:"contained_seconds"`
	RemainingSeconds int        `json:"remaining_seconds"`
	Fulfilled        bool       `json:"fulfilled"`
	Visual           SlotVisual `json:"visual"`
}

// DriverSnapshot is the serializable view of the worker.
type DriverSnapshot struct {
	Position Position   `json:"position"`
	Mode     DriverMode `json:"mode"`
	// CandidateID is the truck the driver is touching or possessing.
	CandidateID string `json:"candidate_id,omitempty"`
}

// ClockSnapshot is the serializable view of the day clock.
type ClockSnapshot struct {
	Hour    int        `json:"hour"`
	Min     int        `json:"min"`
	Display string     `json:"display"`
	Phase   ClockPhase `json:"phase"`
	Done    bool       `json:"done"`
}

// Snapshot is the complete observable state of a yard session, built fresh on
// demand. The presentation shell renders exclusively from snapshots.
type Snapshot struct {
	Phase          Phase           `json:"phase"`
	Day            int             `json:"day"`
	Coins          int             `json:"coins"`
	SequenceTarget int             `json:"sequence_target"`
	ActiveTruckID  string          `json:"active_truck_id,omitempty"`
	Clock          ClockSnapshot   `json:"clock"`
	Driver         DriverSnapshot  `json:"driver"`
	Trucks         []*Truck        `json:"trucks"`
	Spaces         []SpaceSnapshot `json:"spaces"`
	CompletedCount int             `json:"completed_count"`
	Summary        *DaySummary     `json:"summary,omitempty"`
}

// Snapshot captures the current observable state.
func (y *Yard) Snapshot() *Snapshot {
	snap := &Snapshot{
		Phase:          y.phase,
		Day:            y.ledger.Day(),
		Coins:          y.ledger.Coins(),
		SequenceTarget: y.sequenceTarget,
		CompletedCount: len(y.completion),
		Summary:        y.summary,
		Clock: ClockSnapshot{
			Hour:    y.clock.Hour,
			Min:     y.clock.Min,
			Display: y.clock.String(),
			Phase:   y.clock.Phase(),
			Done:    y.clock.Done(),
		},
		Driver: DriverSnapshot{
			Position: y.driver.Position,
			Mode:     y.driver.Mode,
		},
	}

	if y.activeTruck != nil {
		snap.ActiveTruckID = y.activeTruck.ID
	}
	if candidate := y.driver.Candidate(); candidate != nil {
		snap.Driver.CandidateID = candidate.ID
	}

	snap.Trucks = make([]*Truck, len(y.trucks))
	copy(snap.Trucks, y.trucks)

	snap.Spaces = make([]SpaceSnapshot, 0, len(y.spaces))
	for _, s := range y.spaces {
		snap.Spaces = append(snap.Spaces, SpaceSnapshot{
			ID:               s.ID,
			Kind:             s.Kind,
			Enabled:          s.Enabled,
			Bounds:           s.Bounds,
			Contained:        s.Contained,
			OccupantID:       s.OccupantID,
			ContainedSeconds: s.ContainedSeconds,
			RemainingSeconds: s.RemainingSeconds(),
			Fulfilled:        s.Fulfilled,
			Visual:           s.Visual(),
		})
	}

	return snap
}
