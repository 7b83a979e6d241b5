package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
	"github.com/mgagliardo91/yard-simulator/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}
	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}
	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":    "ab12",
		"coins": float64(75),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}
	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_JSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 404 response")
	}
	if err.Error() != "session not found" {
		t.Errorf("Expected API error body to surface, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "ab12",
			ConfigName: "default",
			State: &engine.Snapshot{
				Day:            1,
				SequenceTarget: 5,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}
	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_drive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/advance" {
			t.Errorf("Expected POST /api/sessions/ab12/advance, got %s %s", r.Method, r.URL.Path)
		}

		var req service.AdvanceRequest
		json.NewDecoder(r.Body).Decode(&req)
		if !req.Input.Left {
			t.Error("Expected left direction to be held")
		}
		if req.Frames != 45 {
			t.Errorf("Expected 45 frames, got %d", req.Frames)
		}

		resp := service.StepResult{
			State:          &engine.Snapshot{Day: 1},
			FramesExecuted: 45,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "drive",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"direction":  "left",
				"frames":     float64(45),
			},
		},
	}

	result, err := client.handleDrive(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDrive failed: %v", err)
	}

	resultStr := result.Content[0].(mcp.TextContent)
	if !strings.Contains(resultStr.Text, "Executed 45 frame(s)") {
		t.Errorf("Expected frame count in result, got: %s", resultStr.Text)
	}
}

func TestClient_drive_InvalidDirection(t *testing.T) {
	client := NewClient("http://localhost:8080")
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "drive",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"direction":  "sideways",
			},
		},
	}

	result, err := client.handleDrive(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDrive returned error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected tool error for invalid direction")
	}
}

func TestFormatSnapshot(t *testing.T) {
	state := &engine.Snapshot{
		Day:            2,
		Coins:          40,
		SequenceTarget: 6,
		CompletedCount: 1,
		Phase:          engine.PhaseRunning,
		Clock:          engine.ClockSnapshot{Display: "14:05", Phase: engine.ClockWarning},
		Driver: engine.DriverSnapshot{
			Position:    engine.Position{X: 512, Y: 384},
			Mode:        engine.ModeWalking,
			CandidateID: "t2",
		},
		Trucks: []*engine.Truck{
			{
				ID:       "t1",
				Position: engine.Position{X: 240, Y: 200},
				Facing:   engine.DirUp,
				Order:    engine.Order{Cargo: "Chicken Toes", Duration: 20, Number: 1},
				SpaceID:  "dock-0",
			},
		},
		Spaces: []engine.SpaceSnapshot{
			{
				ID:               "dock-0",
				Kind:             engine.DockSlot,
				Enabled:          true,
				Bounds:           engine.Rect{X: 240, Y: 200, W: 80, H: 100},
				OccupantID:       "t1",
				RemainingSeconds: 12,
			},
			{ID: "dock-9", Kind: engine.DockSlot, Enabled: false},
		},
	}

	result := formatSnapshot(state)

	expectedFields := []string{
		"Day 2",
		"14:05 (warning)",
		"Coins: 40",
		"Delivered: 1/6",
		"Worker: walking at (512,384)",
		"[touching t2]",
		"Chicken Toes (20s)",
		"in dock-0",
		"unloading t1, 12s remaining",
	}
	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}

	// Disabled spaces are not listed.
	if strings.Contains(result, "dock-9") {
		t.Errorf("Disabled space should be omitted, got: %s", result)
	}
}

func TestFormatSnapshot_DayEnded(t *testing.T) {
	state := &engine.Snapshot{
		Day:   3,
		Phase: engine.PhaseEnding,
		Clock: engine.ClockSnapshot{Display: "17:00", Phase: engine.ClockCritical, Done: true},
		Summary: &engine.DaySummary{
			Day:       3,
			Completed: 4,
			Earnings:  130,
		},
	}

	result := formatSnapshot(state)

	if !strings.Contains(result, "The working day is over.") {
		t.Errorf("Expected day-end notice, got: %s", result)
	}
	if !strings.Contains(result, "Delivered 4 orders for 130 coins.") {
		t.Errorf("Expected summary line, got: %s", result)
	}
}

func TestFormatDaySummary(t *testing.T) {
	summary := &engine.DaySummary{
		Day:              1,
		Completed:        2,
		TotalIdleSeconds: 9,
		Earnings:         71,
		Orders: []engine.OrderResult{
			{TruckID: "t1", Order: engine.Order{Cargo: "Wobbly Wheels", Duration: 15, Number: 1}, IdleSeconds: 4, Award: 20, Bonus: 11},
			{TruckID: "t2", Order: engine.Order{Cargo: "Spare Sprockets", Duration: 20, Number: 2}, IdleSeconds: 5, Award: 25, Bonus: 15},
		},
	}

	result := formatDaySummary(summary)

	expectedFields := []string{
		"Day 1 Summary",
		"Delivered: 2 orders",
		"Earnings: 71 coins",
		"1. Wobbly Wheels (15s) - award 20 + bonus 11",
		"2. Spare Sprockets (20s) - award 25 + bonus 15",
	}
	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatUpgrades(t *testing.T) {
	listing := []progress.UpgradeStatus{
		{Kind: progress.UpgradeYardLevel, Label: "Yard Level", Level: 1, MaxLevel: 5, Cost: 150, Visible: true, Affordable: false},
		{Kind: progress.UpgradeTruckSpeed, Label: "Yard Speed Limit", Level: 4, MaxLevel: 4, Visible: true, Maxed: true},
		{Kind: progress.UpgradeDockSpaces, Label: "Dock Spaces", Visible: false},
	}

	result := formatUpgrades(listing)

	if !strings.Contains(result, "Yard Level (yardLevel) - level 1/5 | next costs 150 (cannot afford)") {
		t.Errorf("Expected priced entry, got: %s", result)
	}
	if !strings.Contains(result, "Yard Speed Limit (truckSpeed) - level 4/4 | MAXED") {
		t.Errorf("Expected maxed entry, got: %s", result)
	}
	if !strings.Contains(result, "??? (dockSpaces) - prerequisites not met") {
		t.Errorf("Expected hidden entry, got: %s", result)
	}
}

func TestClient_handleYardInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "yard_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleYardInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleYardInstructions failed: %v", err)
	}
	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Yard Simulator - Complete Instructions",
		"GAME OBJECTIVE:",
		"CORE LOOP:",
		"PARKING RULES:",
		"TRUCK ADMISSION:",
		"ECONOMY:",
		"THE CLOCK:",
		"UPGRADES",
		"SESSION MANAGEMENT:",
	}
	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions", content)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}
	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}
	if client.baseURL == "" {
		t.Error("Base URL not set")
	}
	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
	if client.GetMCPServer() != client.mcpServer {
		t.Error("GetMCPServer should return the underlying server")
	}
}
