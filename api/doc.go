// Package api provides the REST interface to the yard simulator.
//
// The server exposes session management, frame stepping, day sequencing,
// the upgrade store, and layout configuration over HTTP, plus a WebSocket
// endpoint streaming engine snapshots to observers.
//
// Routes:
//
//	POST   /api/sessions                 create a session (optional config_id)
//	GET    /api/sessions                 list sessions (sort/order/limit)
//	GET    /api/sessions/{id}            session info including layout
//	DELETE /api/sessions/{id}            delete a session
//	GET    /api/sessions/{id}/state      current simulation snapshot
//	POST   /api/sessions/{id}/step       advance one frame
//	POST   /api/sessions/{id}/advance    advance a batch of frames
//	GET    /api/sessions/{id}/summary    end-of-day tally
//	POST   /api/sessions/{id}/next-day   roll over to the next day
//	GET    /api/sessions/{id}/progress   progression view
//	GET    /api/sessions/{id}/upgrades   upgrade store listing
//	POST   /api/sessions/{id}/upgrades   purchase an upgrade
//	GET    /api/configs                  list layouts
//	POST   /api/configs                  save a layout
//	GET    /api/configs/{name}           fetch a layout
//	GET    /api/health                   health check
//	GET    /ws?session={id}              snapshot stream
//
// All responses are JSON. Errors use {"error": "..."} with a matching HTTP
// status.
package api
