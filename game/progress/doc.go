// Package progress holds the player's meta-progression: the key-value
// registry (coins, upgrade levels, day counter), the upgrade catalog with
// costs and prerequisites, and file persistence so progression outlives a
// single yard session.
//
// The registry implements engine.ProgressionLedger and is injected into each
// yard session: the engine reads levels at setup and writes coins, the day
// counter, and completed orders at day end. The upgrade store mutates the
// same registry through Purchase.
package progress
