package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

func newTestClient(h *Hub, sessionID string) *Client {
	return &Client{
		hub:       h,
		send:      make(chan []byte, 8),
		sessionID: sessionID,
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	h := NewHub()

	a := newTestClient(h, "ab12")
	b := newTestClient(h, "ab12")
	other := newTestClient(h, "cd34")

	h.registerClient(a)
	h.registerClient(b)
	h.registerClient(other)

	if len(h.sessions["ab12"]) != 2 {
		t.Errorf("session ab12 clients = %d, want 2", len(h.sessions["ab12"]))
	}
	if len(h.sessions["cd34"]) != 1 {
		t.Errorf("session cd34 clients = %d, want 1", len(h.sessions["cd34"]))
	}

	h.unregisterClient(a)
	if len(h.sessions["ab12"]) != 1 {
		t.Errorf("session ab12 clients after unregister = %d, want 1", len(h.sessions["ab12"]))
	}

	// Last client leaving drops the session entry entirely.
	h.unregisterClient(b)
	if _, ok := h.sessions["ab12"]; ok {
		t.Error("empty session should be removed from the hub")
	}

	// Unregistering twice is a no-op.
	h.unregisterClient(b)
}

func TestBroadcastRoutesBySession(t *testing.T) {
	h := NewHub()

	observer := newTestClient(h, "ab12")
	bystander := newTestClient(h, "cd34")
	h.registerClient(observer)
	h.registerClient(bystander)

	h.broadcastMessage(&Message{
		SessionID: "ab12",
		Event:     "state_update",
		State:     &engine.Snapshot{Day: 3, Coins: 42},
	})

	select {
	case data := <-observer.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("failed to unmarshal broadcast: %v", err)
		}
		if msg.SessionID != "ab12" || msg.Event != "state_update" {
			t.Errorf("message = %s/%s, want ab12/state_update", msg.SessionID, msg.Event)
		}
		if msg.State == nil || msg.State.Day != 3 {
			t.Error("broadcast snapshot not delivered intact")
		}
	default:
		t.Fatal("observer received no message")
	}

	select {
	case <-bystander.send:
		t.Error("bystander in another session received the message")
	default:
	}
}

func TestBroadcastDropsStalledClient(t *testing.T) {
	h := NewHub()

	stalled := &Client{hub: h, send: make(chan []byte), sessionID: "ab12"}
	h.registerClient(stalled)

	// Nothing reads stalled.send, so the broadcast cannot be delivered and
	// the client is evicted instead of blocking the hub.
	h.broadcastMessage(&Message{SessionID: "ab12", Event: "state_update"})

	if _, ok := h.sessions["ab12"]; ok {
		t.Error("stalled client should have been unregistered")
	}
}

func TestBroadcastToSessionViaRunLoop(t *testing.T) {
	h := NewHub()
	go h.Run()

	client := newTestClient(h, "ab12")
	h.register <- client

	events := []engine.Event{{Type: engine.EventTruckDocked, TruckID: "t1", SpaceID: "dock-0"}}
	h.BroadcastToSession("ab12", &engine.Snapshot{Day: 1}, events)

	select {
	case data := <-client.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("failed to unmarshal broadcast: %v", err)
		}
		if len(msg.Events) != 1 || msg.Events[0].TruckID != "t1" {
			t.Errorf("events = %+v, want one docked event for t1", msg.Events)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestEnqueueWithoutRunLoopDoesNotBlock(t *testing.T) {
	h := NewHub()

	done := make(chan struct{})
	go func() {
		h.BroadcastToSession("ab12", &engine.Snapshot{}, nil)
		h.BroadcastEvent("ab12", "day_ended", nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked with no hub loop running")
	}
}
