// Package websocket provides real-time yard state streaming.
//
// The hub tracks clients per session and pushes a fresh engine snapshot to
// every client of a session whenever a transport advances that session's
// simulation. Clients never send gameplay input over the socket; frames are
// driven through the REST API and the socket is a one-way observation
// channel (plus keepalive pings).
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// After stepping a session:
//	hub.BroadcastToSession(sessionID, snapshot, events)
package websocket
