package engine

import (
	"fmt"
	"math"
	"math/rand"
)

// Yard is the orchestrator for one working day. It owns the spaces, trucks,
// driver, exit gate, and day clock, runs the per-frame control loop, applies
// the truck admission policy, and flushes the completion ledger to the
// progression ledger when the day ends.
//
// A Yard is not safe for concurrent use; drive it from a single goroutine.
type Yard struct {
	cfg    *YardConfig
	ledger ProgressionLedger
	rng    *rand.Rand

	phase  Phase
	clock  *DayClock
	driver *Driver
	spaces []*Space
	trucks []*Truck
	exit   *ExitGate

	activeTruck *Truck
	enterLock   bool

	sequenceTarget  int
	nextOrderNumber int
	completion      map[string]CompletionRecord
	summary         *DaySummary

	// Slots released this frame get a second reset at the top of the next
	// Step, so a still-moving truck cannot re-trigger containment against
	// half-cleared state in the same frame.
	pendingResets []*Space

	events []Event
}

// YardOption customizes yard construction.
type YardOption func(*Yard)

// WithRand injects the random source used for order generation. Tests use
// this for determinism.
func WithRand(rng *rand.Rand) YardOption {
	return func(y *Yard) { y.rng = rng }
}

// NewYard builds a session from the config and the player's progression:
// the admission target comes from the yard level, the unlocked spaces from
// the space-upgrade tier tables, and the driver speed from the worker level.
// The first truck is spawned immediately and the yard starts Running.
func NewYard(cfg *YardConfig, ledger ProgressionLedger, opts ...YardOption) (*Yard, error) {
	if cfg == nil {
		return nil, fmt.Errorf("yard: config cannot be nil")
	}
	if err := ValidateYardConfig(cfg); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("yard: progression ledger cannot be nil")
	}

	y := &Yard{
		cfg:        cfg,
		ledger:     ledger,
		phase:      PhaseSetup,
		completion: make(map[string]CompletionRecord),
	}
	for _, opt := range opts {
		opt(y)
	}
	if y.rng == nil {
		y.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	y.sequenceTarget = cfg.TotalTrucksOverride
	if y.sequenceTarget <= 0 {
		y.sequenceTarget = cfg.BaseTrucks + int(math.Floor(float64(ledger.Level(LevelYard))*cfg.TrucksPerYardLevel))
	}
	ledger.SetSequence(SequenceConfig{TotalTrucks: y.sequenceTarget})

	y.clock = NewDayClock(cfg.DayStartHour, cfg.DayEndHour, cfg.MinutesPerTick, cfg.ClockTickSecs)

	y.buildSpaces()

	workerVelocity := cfg.WorkerBaseSpeed + float64(ledger.Level(LevelWorkerSpeed))*cfg.WorkerSpeedIncrement
	y.driver = NewDriver(cfg.DriverStart, cfg.DriverWidth, cfg.DriverHeight, workerVelocity)

	y.exit = NewExitGate(cfg.ExitRect, y.onDeparture)

	y.phase = PhaseRunning
	y.spawnTruck()

	return y, nil
}

// buildSpaces constructs every slot in the layout. Slots outside the unlocked
// tiers exist but stay disabled: inert blockers that never evaluate
// containment.
func (y *Yard) buildSpaces() {
	dockUnlocked := indexSet(y.cfg.UnlockedDockIndexes(y.ledger.Level(LevelDockSpaces)))
	yardUnlocked := indexSet(y.cfg.UnlockedYardIndexes(y.ledger.Level(LevelYardSpaces)))

	handlers := SpaceHandlers{
		OnDocked:    y.onTruckDocked,
		OnFulfilled: y.onTruckFulfilled,
	}

	dockIdx, yardIdx := 0, 0
	for _, def := range y.cfg.Slots {
		var enabled bool
		if def.Kind == DockSlot {
			enabled = dockUnlocked[dockIdx]
			dockIdx++
		} else {
			enabled = yardUnlocked[yardIdx]
			yardIdx++
		}
		y.spaces = append(y.spaces, NewSpace(def.Kind, def.Rect, enabled, handlers))
	}
}

func indexSet(indexes []int) map[int]bool {
	set := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		set[i] = true
	}
	return set
}

// Phase returns the session lifecycle state.
func (y *Yard) Phase() Phase { return y.phase }

// SequenceTarget returns the total trucks this session will admit.
func (y *Yard) SequenceTarget() int { return y.sequenceTarget }

// Driver returns the worker entity.
func (y *Yard) Driver() *Driver { return y.driver }

// Clock returns the day clock.
func (y *Yard) Clock() *DayClock { return y.clock }

// Spaces returns the session's slots in layout order.
func (y *Yard) Spaces() []*Space { return y.spaces }

// Trucks returns the currently admitted trucks.
func (y *Yard) Trucks() []*Truck { return y.trucks }

// ActiveTruck returns the truck possessed by the driver, or nil.
func (y *Yard) ActiveTruck() *Truck { return y.activeTruck }

// Summary returns the day tally once the yard has reached Ending, else nil.
func (y *Yard) Summary() *DaySummary { return y.summary }

// CompletionLedger returns a copy of the session's completion records so far.
func (y *Yard) CompletionLedger() map[string]CompletionRecord {
	out := make(map[string]CompletionRecord, len(y.completion))
	for id, rec := range y.completion {
		out[id] = rec
	}
	return out
}

// bounds returns the world rectangle entities are clamped into.
func (y *Yard) bounds() Rect {
	return Rect{
		X: y.cfg.WorldWidth / 2,
		Y: y.cfg.WorldHeight / 2,
		W: y.cfg.WorldWidth,
		H: y.cfg.WorldHeight,
	}
}

// Step advances the simulation by one frame: action-key edge handling,
// movement, contact detection, containment and departure evaluation, then
// timers. It returns the state transitions raised during the frame. Step is
// a no-op once the yard reaches Ending.
func (y *Yard) Step(in InputState, dt float64) []Event {
	if y.phase != PhaseRunning || dt <= 0 {
		return nil
	}

	y.events = y.events[:0]
	y.applyPendingResets()

	y.handleAction(in)

	bounds := y.bounds()
	if y.activeTruck != nil {
		y.activeTruck.Step(in, dt, bounds)
	}
	y.driver.Step(in, dt, bounds)
	y.updateCandidate()

	// All overlap evaluation for the frame resolves before timers run;
	// handlers fire synchronously and may mutate state used below.
	for _, space := range y.spaces {
		if !space.Enabled {
			continue
		}
		for _, truck := range y.trucks {
			space.EvaluateContainment(truck)
		}
	}
	for i := len(y.trucks) - 1; i >= 0; i-- {
		y.exit.EvaluateDeparture(y.trucks[i])
	}
	if y.phase != PhaseRunning {
		return y.takeEvents()
	}

	for _, space := range y.spaces {
		space.TickTimer(dt)
	}
	for _, truck := range y.trucks {
		truck.TickIdle(dt)
	}
	if y.clock.Tick(dt) {
		y.endDay()
	}

	return y.takeEvents()
}

func (y *Yard) takeEvents() []Event {
	if len(y.events) == 0 {
		return nil
	}
	out := make([]Event, len(y.events))
	copy(out, y.events)
	return out
}

func (y *Yard) emit(typ EventType, truckID, spaceID string) {
	y.events = append(y.events, Event{Type: typ, TruckID: truckID, SpaceID: spaceID})
}

// handleAction edge-detects the action key. A trigger is consumed once per
// press; the lock re-arms only after the key is released.
func (y *Yard) handleAction(in InputState) {
	switch {
	case !y.enterLock && in.Action && y.driver.Candidate() != nil:
		if y.activeTruck != nil && y.spaceContaining(y.activeTruck.ID) != nil {
			y.triggerTruckExit()
			y.spawnTruck()
		} else if y.activeTruck == nil {
			y.triggerTruckStart()
		}
		y.enterLock = true
	case !in.Action && y.enterLock:
		y.enterLock = false
	}
}

// updateCandidate is the contact pass: while walking, the driver's candidate
// is whichever truck its body currently touches. While driving, the
// possessed truck is retained.
func (y *Yard) updateCandidate() {
	if y.driver.Driving() {
		return
	}
	body := y.driver.Body()
	for _, truck := range y.trucks {
		if body.Intersects(truck.Body()) {
			y.driver.SetCandidate(truck)
			return
		}
	}
	y.driver.SetCandidate(nil)
}

// spaceContaining returns the slot currently containing the truck, or nil.
func (y *Yard) spaceContaining(truckID string) *Space {
	for _, space := range y.spaces {
		if space.ContainsTruck(truckID) {
			return space
		}
	}
	return nil
}

// allTrucksContained reports whether every admitted truck occupies a slot.
func (y *Yard) allTrucksContained() bool {
	for _, truck := range y.trucks {
		if y.spaceContaining(truck.ID) == nil {
			return false
		}
	}
	return true
}

// spawnTruck admits the next truck when policy allows: never beyond the
// session target, and (after the first truck) only once every admitted truck
// is parked somewhere. This throttle is what paces arrivals one at a time.
// Disallowed spawns are silent no-ops.
func (y *Yard) spawnTruck() *Truck {
	if y.phase != PhaseRunning {
		return nil
	}
	if len(y.trucks) >= y.sequenceTarget {
		return nil
	}
	if len(y.trucks) > 0 && !y.allTrucksContained() {
		return nil
	}

	y.nextOrderNumber++
	order := GenerateOrder(y.rng, y.nextOrderNumber)
	velocity := y.cfg.TruckBaseSpeed + float64(y.ledger.Level(LevelTruckSpeed))*y.cfg.TruckSpeedIncrement

	truck := NewTruck(y.cfg.TruckSpawn, order, velocity, y.cfg.TruckWidth, y.cfg.TruckHeight)
	y.trucks = append(y.trucks, truck)
	y.emit(EventTruckSpawned, truck.ID, "")
	return truck
}

// triggerTruckStart hands the candidate truck to the driver.
func (y *Yard) triggerTruckStart() {
	truck := y.driver.Candidate()
	if truck == nil {
		return
	}
	y.activeTruck = truck
	truck.SetActive(true)
	truck.SetIdle(false)
	y.driver.EnterVehicle(truck)
	y.emit(EventVehicleEntered, truck.ID, "")
}

// triggerTruckExit returns the driver to walking beside the active truck.
func (y *Yard) triggerTruckExit() {
	truck := y.activeTruck
	if truck == nil {
		return
	}
	truck.SetActive(false)
	truck.SetIdle(true)
	y.driver.ExitVehicle()
	y.activeTruck = nil
	y.emit(EventVehicleExited, truck.ID, "")
}

// onTruckDocked records the slot assignment on the truck.
func (y *Yard) onTruckDocked(truckID, spaceID string) {
	if truck := y.truckByID(truckID); truck != nil {
		truck.AssignSpace(spaceID)
	}
	y.emit(EventTruckDocked, truckID, spaceID)
}

// onTruckFulfilled marks the truck fulfilled.
func (y *Yard) onTruckFulfilled(truckID string) {
	if truck := y.truckByID(truckID); truck != nil {
		truck.MarkFulfilled()
	}
	y.emit(EventTruckFulfilled, truckID, "")
}

// onDeparture removes a fulfilled truck from the yard: detach the driver if
// it was possessing it, record the completion, release the truck's slot, and
// end the day when the yard empties.
func (y *Yard) onDeparture(truckID string) {
	idx := -1
	for i, truck := range y.trucks {
		if truck.ID == truckID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	truck := y.trucks[idx]
	if !truck.Fulfilled {
		return
	}

	if y.activeTruck == truck {
		y.triggerTruckExit()
	}

	y.completion[truck.ID] = CompletionRecord{
		IdleSeconds: truck.IdleSeconds,
		Order:       truck.Order,
	}

	if space := y.spaceByID(truck.SpaceID); space != nil {
		space.Reset()
		y.pendingResets = append(y.pendingResets, space)
	}

	y.trucks = append(y.trucks[:idx], y.trucks[idx+1:]...)
	y.emit(EventTruckDeparted, truck.ID, "")

	if len(y.trucks) == 0 {
		y.endDay()
	}
}

// applyPendingResets re-resets slots released on the previous frame.
func (y *Yard) applyPendingResets() {
	for _, space := range y.pendingResets {
		space.Reset()
	}
	y.pendingResets = y.pendingResets[:0]
}

// endDay transitions to Ending and flushes the session's results to the
// progression ledger: day counter, completion records, and earned coins.
func (y *Yard) endDay() {
	if y.phase == PhaseEnding {
		return
	}
	y.phase = PhaseEnding

	day := y.ledger.Day()
	records := y.CompletionLedger()

	y.ledger.SetCompletedOrders(records)
	y.ledger.SetDay(day + 1)
	y.ledger.AddCoins(TallyEarnings(records))

	y.summary = BuildDaySummary(day, records)
	y.emit(EventDayEnded, "", "")
}

func (y *Yard) truckByID(id string) *Truck {
	for _, truck := range y.trucks {
		if truck.ID == id {
			return truck
		}
	}
	return nil
}

func (y *Yard) spaceByID(id string) *Space {
	if id == "" {
		return nil
	}
	for _, space := range y.spaces {
		if space.ID == id {
			return space
		}
	}
	return nil
}
