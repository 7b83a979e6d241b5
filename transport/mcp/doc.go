// Package mcp exposes the yard simulator to MCP-speaking agents.
//
// The client here is a thin proxy: every tool call is translated into a REST
// request against the API server, and the JSON response is rendered into a
// plain-text report an agent can read. No simulation state lives in this
// package; the API server owns the sessions.
//
// Tool surface:
//
//	create_session / get_session / list_sessions / list_configs
//	yard_state          current snapshot, formatted
//	drive               hold a direction for a batch of frames
//	press_action        tap the action key (enter/exit a truck)
//	wait                let the clock and dock timers run
//	day_summary         end-of-day tally
//	next_day            roll the session into the next working day
//	progress            coins, day, upgrade levels
//	list_upgrades       upgrade store listing
//	buy_upgrade         purchase one upgrade level
//	yard_instructions   full rules reference
//
// The drive/press_action/wait tools accept an optional "intent" string that
// asks the agent to explain its plan before acting; it is not interpreted.
package mcp
