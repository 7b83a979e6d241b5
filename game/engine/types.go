package engine

// Direction identifies one of the four movement directions.
type Direction string

const (
	DirNone  Direction = ""
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// SlotKind distinguishes dock spaces (which have a fulfillment timer) from
// plain yard parking spaces (which do not).
type SlotKind string

const (
	DockSlot SlotKind = "dock"
	YardSlot SlotKind = "yard"
)

// Phase is the lifecycle state of a yard session.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhaseRunning Phase = "running"
	PhaseEnding  Phase = "ending"
)

// Upgrade level keys read from the progression ledger.
const (
	LevelYard        = "yardLevel"
	LevelTruckSpeed  = "truckSpeed"
	LevelWorkerSpeed = "workerSpeed"
	LevelDockSpaces  = "dockSpaces"
	LevelYardSpaces  = "yardSpaces"
)

const (
	// Padding added to a zone's bounding box on each axis before the
	// containment test.
	ContainmentPadding = 10

	// BaseOrderAward is the flat coin award for every completed order; the
	// order's dwell duration is added on top.
	BaseOrderAward = 5

	// Validation constants.
	MinWorldSize   = 200
	MaxWorldSize   = 8192
	MinSlotCount   = 1
	MinDayHours    = 1
	MaxOrderNumber = 1 << 20
)

// Position is a point in yard coordinates. Entities track their center.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Order is the cargo assignment a truck carries for its whole lifetime.
// Duration is the dwell time in seconds required at a dock space.
type Order struct {
	Cargo    string `json:"cargo"`
	Duration int    `json:"duration"`
	Number   int    `json:"number"`
}

// InputState is the sampled input for one frame: four independent direction
// signals plus the single action key. Direction application is axis-exclusive
// with priority left > right > up > down.
type InputState struct {
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Up     bool `json:"up"`
	Down   bool `json:"down"`
	Action bool `json:"action"`
}

// CompletionRecord is what the session remembers about a departed truck:
// its order and the idle seconds it accumulated while waiting.
type CompletionRecord struct {
	IdleSeconds int   `json:"idle_seconds"`
	Order       Order `json:"order"`
}

// SequenceConfig is the per-session admission target written back to the
// progression ledger so the shell can display it.
type SequenceConfig struct {
	TotalTrucks int `json:"total_trucks"`
}

// ProgressionLedger is the persistent key-value progression store the yard
// consults at setup and writes at day end. Implementations must be safe for
// use from the goroutine driving the engine.
type ProgressionLedger interface {
	Level(key string) int
	Day() int
	SetDay(day int)
	Coins() int
	AddCoins(delta int)
	SetCompletedOrders(orders map[string]CompletionRecord)
	SetSequence(seq SequenceConfig)
}

// EventType identifies a state transition raised during a Step.
type EventType string

const (
	EventTruckSpawned   EventType = "truck_spawned"
	EventTruckDocked    EventType = "truck_docked"
	EventTruckUndocked  EventType = "truck_undocked"
	EventTruckFulfilled EventType = "truck_fulfilled"
	EventTruckDeparted  EventType = "truck_departed"
	EventVehicleEntered EventType = "vehicle_entered"
	EventVehicleExited  EventType = "vehicle_exited"
	EventDayEnded       EventType = "day_ended"
)

// Event is one state transition observed during a Step. SpaceID is set only
// for dock/undock transitions.
type Event struct {
	Type    EventType `json:"type"`
	TruckID string    `json:"truck_id,omitempty"`
	SpaceID string    `json:"space_id,omitempty"`
}
