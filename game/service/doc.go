// Package service provides the business logic layer for the yard simulator.
//
// The service package implements:
//   - Multi-session yard management
//   - Frame stepping and batched advancement
//   - Day sequencing (summaries and next-day rollover)
//   - Upgrade store operations against each session's progression
//   - Yard layout configuration management
//
// Core Interfaces:
//
// YardService is the main service interface providing high-level operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages yard layout loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the simulation engine, providing session isolation, configuration
// management, and business logic orchestration. Each session holds its own
// yard instance for the current day plus a progression registry that
// survives across days.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	yardService := service.NewYardService(sessionMgr, configMgr)
//
//	// Create a new session
//	info, err := yardService.CreateSession(ctx, "standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive frames
//	result, err := yardService.Step(ctx, info.ID, service.StepRequest{
//		Input: engine.InputState{Up: true},
//		DT:    1.0 / 60,
//	})
//
// Sessions are identified by unique 4-character IDs. The yard engine itself
// is single-threaded; the service serializes access so transports may call
// in concurrently.
package service
