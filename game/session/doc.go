// Package session provides session management for the yard simulator.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Day rollover (rebuilding the yard from persisted progression)
//   - Progression persistence hooks
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session pairs a live yard (the current day) with a progression
// registry (coins, upgrades, the day counter) that survives across days.
//
// Persistence:
//
// Only progression is persisted; a day in progress is deliberately
// ephemeral. When a manager is built with persistence, creating or fetching
// a session by a known ID restores its progression from storage and starts
// a fresh day against it.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs generated from cryptographic randomness,
// matched case-insensitively.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", engine.DefaultYardConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive the day...
//	sess.Yard.Step(input, dt)
//
//	// Once the day ends, roll over to the next one.
//	sess, err = manager.NextDay(sess.ID)
package session
