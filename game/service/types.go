package service

import (
	"time"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
)

// DefaultFrameSeconds is the frame delta used when a request omits one,
// matching a 60 Hz presentation loop.
const DefaultFrameSeconds = 1.0 / 60

// MaxAdvanceFrames caps a single Advance call. Larger batches must be split
// by the caller; the cap keeps one request from holding the session lock for
// a whole simulated day.
const MaxAdvanceFrames = 1200

// SessionInfo provides information about a yard session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	State          *engine.Snapshot   `json:"state"`
	Config         *engine.YardConfig `json:"config,omitempty"`
}

// StepRequest advances the session by a single frame.
type StepRequest struct {
	Input engine.InputState `json:"input"`
	// DT is the frame delta in seconds; zero means DefaultFrameSeconds.
	DT float64 `json:"dt,omitempty"`
}

// AdvanceRequest advances the session by several frames with the input held.
type AdvanceRequest struct {
	Input  engine.InputState `json:"input"`
	Frames int               `json:"frames"`
	DT     float64           `json:"dt,omitempty"`
}

// StepResult is the outcome of a Step or Advance call.
type StepResult struct {
	State          *engine.Snapshot `json:"state"`
	Events         []engine.Event   `json:"events,omitempty"`
	FramesExecuted int              `json:"frames_executed"`
	DayEnded       bool             `json:"day_ended"`
	Message        string           `json:"message,omitempty"`
}

// ProgressInfo is the session's progression view: the slow state that
// survives across days.
type ProgressInfo struct {
	Day      int                   `json:"day"`
	Coins    int                   `json:"coins"`
	Levels   map[string]int        `json:"levels"`
	Sequence engine.SequenceConfig `json:"sequence"`
}

// PurchaseResult is the outcome of an upgrade purchase.
type PurchaseResult struct {
	Status progress.UpgradeStatus `json:"status"`
	Coins  int                    `json:"coins"`
}

// ConfigInfo provides information about a yard layout configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	DockSlots   int    `json:"dock_slots"`
	YardSlots   int    `json:"yard_slots"`
	// TotalTrucks is the pinned admission target, zero when derived from
	// the yard level instead.
	TotalTrucks int `json:"total_trucks,omitempty"`
}
