package progress

import (
	"sync"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

// Registry key names. Upgrade level keys are shared with the engine.
const (
	KeyCoins           = "coins"
	KeyDay             = "day"
	KeyCompletedOrders = "completedOrders"
	KeySequence        = "sequence"
)

// Observer receives the key that changed on every registry write. Observers
// run synchronously after the write, outside the registry lock.
type Observer func(key string)

// Registry is the persistent key-value progression store. It is shared
// process-wide state with defined read/write points: sessions read it at
// setup and write it at day end; the upgrade store writes it on purchases.
// All access is guarded, so the registry may be consulted from API handlers
// while a session runs.
type Registry struct {
	mu        sync.RWMutex
	ints      map[string]int
	completed map[string]engine.CompletionRecord
	sequence  engine.SequenceConfig
	observers []Observer
}

// NewRegistry creates a registry with all upgrade levels at zero, no coins,
// and the day counter at one.
func NewRegistry() *Registry {
	r := &Registry{
		ints: map[string]int{
			KeyCoins: 0,
			KeyDay:   1,
		},
	}
	for _, kind := range Kinds() {
		r.ints[string(kind)] = 0
	}
	return r
}

// Subscribe registers an observer for registry writes.
func (r *Registry) Subscribe(obs Observer) {
	r.mu.Lock()
	r.observers = append(r.observers, obs)
	r.mu.Unlock()
}

func (r *Registry) notify(key string) {
	r.mu.RLock()
	observers := make([]Observer, len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()

	for _, obs := range observers {
		obs(key)
	}
}

// GetInt returns the integer value stored at key; missing keys read as zero.
func (r *Registry) GetInt(key string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ints[key]
}

// SetInt stores an integer value and notifies observers.
func (r *Registry) SetInt(key string, value int) {
	r.mu.Lock()
	r.ints[key] = value
	r.mu.Unlock()
	r.notify(key)
}

// IncInt adds delta to the integer at key and returns the new value.
func (r *Registry) IncInt(key string, delta int) int {
	r.mu.Lock()
	r.ints[key] += delta
	value := r.ints[key]
	r.mu.Unlock()
	r.notify(key)
	return value
}

// Level implements engine.ProgressionLedger.
func (r *Registry) Level(key string) int { return r.GetInt(key) }

// Day implements engine.ProgressionLedger.
func (r *Registry) Day() int { return r.GetInt(KeyDay) }

// SetDay implements engine.ProgressionLedger.
func (r *Registry) SetDay(day int) { r.SetInt(KeyDay, day) }

// Coins implements engine.ProgressionLedger.
func (r *Registry) Coins() int { return r.GetInt(KeyCoins) }

// AddCoins implements engine.ProgressionLedger.
func (r *Registry) AddCoins(delta int) { r.IncInt(KeyCoins, delta) }

// CompletedOrders returns the records written at the last day end.
func (r *Registry) CompletedOrders() map[string]engine.CompletionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]engine.CompletionRecord, len(r.completed))
	for id, rec := range r.completed {
		out[id] = rec
	}
	return out
}

// SetCompletedOrders implements engine.ProgressionLedger.
func (r *Registry) SetCompletedOrders(orders map[string]engine.CompletionRecord) {
	r.mu.Lock()
	r.completed = make(map[string]engine.CompletionRecord, len(orders))
	for id, rec := range orders {
		r.completed[id] = rec
	}
	r.mu.Unlock()
	r.notify(KeyCompletedOrders)
}

// Sequence returns the current session admission target.
func (r *Registry) Sequence() engine.SequenceConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sequence
}

// SetSequence implements engine.ProgressionLedger.
func (r *Registry) SetSequence(seq engine.SequenceConfig) {
	r.mu.Lock()
	r.sequence = seq
	r.mu.Unlock()
	r.notify(KeySequence)
}

// Levels returns a copy of every upgrade level.
func (r *Registry) Levels() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(Kinds()))
	for _, kind := range Kinds() {
		out[string(kind)] = r.ints[string(kind)]
	}
	return out
}
