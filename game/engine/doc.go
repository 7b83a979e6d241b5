// Package engine implements the yard simulation state machine.
//
// A Yard owns the full state of one working day at the loading yard: the
// parking/dock spaces, the trucks admitted so far, the worker (driver), the
// exit gate, and the day clock. The engine is strictly single-threaded and
// tick-driven: callers advance it one frame at a time with Step, passing the
// current input state and the elapsed time. All per-second counters (dock
// dwell, truck idle time, the day clock) are ticked countdowns advanced from
// Step; there are no goroutines and no real timers inside the engine.
//
// Rendering, input polling, audio, and scene transitions are external
// collaborators. The engine exposes everything they need as plain data
// (facing directions, slot visual states, clock phases) and emits an event
// list from each Step for observability.
//
// Meta-progression (coins, upgrade levels, the day counter) lives outside a
// single yard session. The engine reads and writes it through the
// ProgressionLedger interface, which is injected at construction.
package engine
