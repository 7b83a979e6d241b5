package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
	"github.com/mgagliardo91/yard-simulator/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Yard Simulator",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Yard Simulator - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
You are a yard worker at a logistics warehouse. Trucks arrive carrying orders;
park each one in a dock space, wait out its unloading timer, then drive it to
the exit gate before the working day ends. Earnings buy permanent upgrades.

AVAILABLE TOOLS:
- yard_state: Get the current yard snapshot
- drive: Hold a direction for a batch of frames - requires intent explanation
- press_action: Tap the action key to enter or exit a truck
- wait: Let dock timers and the clock run without input
- day_summary / next_day: End-of-day tally and rollover
- progress / list_upgrades / buy_upgrade: Meta-progression
- create_session / get_session / list_sessions / list_configs: Session management
- yard_instructions: Get comprehensive rules and mechanics

NOTE: The 'intent' parameter on movement tools serves as rubber duck
debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new yard session with optional layout selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the yard layout to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active yard sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Simulation
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "yard_state",
		Description: "Get the current yard snapshot: clock, trucks, spaces, driver",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleYardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "drive",
		Description: "Hold a direction for a batch of frames. Works on foot and while driving a truck (enter one with press_action first).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to hold",
				},
				"frames": map[string]interface{}{
					"type":        "integer",
					"description": "Number of 60Hz frames to hold the direction (default 30, max 1200)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleDrive)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "press_action",
		Description: "Tap the action key for one frame: enter the truck the worker is touching, or exit the truck being driven",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this action (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePressAction)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "wait",
		Description: "Advance frames with no input held, letting dock timers and the day clock run",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"frames": map[string]interface{}{
					"type":        "integer",
					"description": "Number of 60Hz frames to wait (default 60, max 1200)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleWait)

	// Day sequencing
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "day_summary",
		Description: "Get the end-of-day tally for a finished working day",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleDaySummary)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "next_day",
		Description: "Start the next working day after the current one has ended",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNextDay)

	// Progression
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "progress",
		Description: "Get the session's progression: day, coins, upgrade levels",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleProgress)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_upgrades",
		Description: "List the upgrade store: levels, costs, visibility",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleListUpgrades)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_upgrade",
		Description: "Purchase one level of a permanent upgrade",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"kind": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"yardLevel", "truckSpeed", "workerSpeed", "yardSpaces", "dockSpaces"},
					"description": "Upgrade track to buy",
				},
			},
			Required: []string{"session_id", "kind"},
		},
	}, c.handleBuyUpgrade)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available yard layouts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "yard_instructions",
		Description: "Get comprehensive game rules and mechanics",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleYardInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nLayout: %s\n\n%s",
		session.ID, session.ConfigName, formatSnapshot(session.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		day := 0
		if s.State != nil {
			day = s.State.Day
		}
		result += fmt.Sprintf("- %s (Layout: %s, Day: %d, Created: %s)\n",
			s.ID, s.ConfigName, day, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleYardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&state)), nil
}

func (c *Client) handleDrive(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	frames := 30
	if f, ok := args["frames"].(float64); ok && f > 0 {
		frames = int(f)
	}

	input := engine.InputState{}
	switch direction {
	case "up":
		input.Up = true
	case "down":
		input.Down = true
	case "left":
		input.Left = true
	case "right":
		input.Right = true
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid direction %q", direction)), nil
	}

	var result service.StepResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/advance", sessionID),
		service.AdvanceRequest{Input: input, Frames: frames}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStepResult(&result)), nil
}

func (c *Client) handlePressAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	var result service.StepResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/step", sessionID),
		service.StepRequest{Input: engine.InputState{Action: true}}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStepResult(&result)), nil
}

func (c *Client) handleWait(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	frames := 60
	if f, ok := args["frames"].(float64); ok && f > 0 {
		frames = int(f)
	}

	var result service.StepResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/advance", sessionID),
		service.AdvanceRequest{Frames: frames}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStepResult(&result)), nil
}

func (c *Client) handleDaySummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var summary engine.DaySummary
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/summary", sessionID), nil, &summary)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatDaySummary(&summary)), nil
}

func (c *Client) handleNextDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/next-day", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	day := 0
	if session.State != nil {
		day = session.State.Day
	}
	result := fmt.Sprintf("Day %d begins.\n\n%s", day, formatSnapshot(session.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var prog service.ProgressInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/progress", sessionID), nil, &prog)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Day: %d | Coins: %d | Trucks per day: %d\n",
		prog.Day, prog.Coins, prog.Sequence.TotalTrucks))
	if len(prog.Levels) > 0 {
		b.WriteString("Levels:\n")
		for kind, level := range prog.Levels {
			b.WriteString(fmt.Sprintf("- %s: %d\n", kind, level))
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleListUpgrades(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var listing []progress.UpgradeStatus
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/upgrades", sessionID), nil, &listing)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatUpgrades(listing)), nil
}

func (c *Client) handleBuyUpgrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	kind, _ := args["kind"].(string)

	var result service.PurchaseResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/upgrades", sessionID),
		map[string]string{"kind": kind}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Purchased %s level %d. Coins remaining: %d. Next level costs %d.",
		result.Status.Label, result.Status.Level, result.Coins, result.Status.Cost)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Layouts:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Docks: %d, Yard spaces: %d\n\n",
			config.Name, config.ConfigID, config.Description, config.DockSlots, config.YardSlots)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleYardInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Yard Simulator - Complete Instructions

GAME OBJECTIVE:
Run a logistics yard for a working day. Trucks arrive carrying orders; park
each one into a dock space, wait out its unloading timer, then drive it out
through the exit gate. Deliver the whole day's sequence before the clock
runs out, then spend your earnings on permanent upgrades.

CORE LOOP:
1. A truck spawns at the gate carrying an order (cargo name + unload time).
2. Walk your worker up to the truck and press the action key to take the wheel.
3. Drive the truck fully inside a dock space. The space turns occupied and
   its unload timer starts counting down the order's duration in seconds.
4. Exit the truck (action key again) while the timer runs. The moment a
   truck is parked, the next truck in the sequence arrives at the gate.
5. When the timer completes, the truck is fulfilled. Re-enter it and drive
   it fully inside the exit gate to complete the delivery.
6. Repeat until the day's truck sequence is delivered or the clock stops.

PARKING RULES:
- A truck must fit ENTIRELY inside a space (with a small margin) to count
  as parked. Overlapping the edge is not enough.
- Dock spaces run the unload timer. Plain yard spaces just hold trucks -
  useful for staging when docks are full.
- One truck per space. A space stays assigned to its truck until the truck
  leaves or the delivery completes.
- Pulling a truck out of a dock mid-unload forfeits the accumulated
  progress; the timer restarts from zero on re-entry.

TRUCK ADMISSION:
- The next truck only arrives when every truck already in the yard is
  parked in a space. A loose truck blocks the gate.
- The day's sequence length grows with your Yard Level upgrade.

ECONOMY:
- Each delivered order pays a flat base plus the order's unload duration.
- An efficiency bonus pays the unload duration minus the truck's total idle
  seconds (floored at zero) - keep trucks moving to earn more.
- Earnings are tallied at the end of the day and added to your coins.

THE CLOCK:
- The day runs from the start hour to the end hour in simulated minutes.
- The display turns warning with two hours left and critical with one.
- When the clock stops, the day ends immediately: undelivered trucks earn
  nothing, and delivered orders are tallied.

UPGRADES (permanent, survive across days):
- Yard Level: more trucks per day, unlocks the rest of the store
- Yard Speed Limit: trucks drive faster
- Worker Speed: your worker walks faster
- Yard Spaces / Dock Spaces: unlock more parking spaces
Upgrades gate on each other; hidden entries show prerequisites unmet.

CONTROLS (via tools):
- drive: hold one direction for a batch of frames (movement is one axis at
  a time; left/right take priority over up/down)
- press_action: enter the truck you are touching, or exit the one you drive
- wait: let timers run without moving

STRATEGY NOTES:
- Dock the longest orders first so their timers overlap with your driving.
- Use yard spaces to stage trucks when all docks are busy.
- Exit a docked truck immediately - the next truck arrives only once the
  yard is fully parked, and idle seconds eat your bonus.

SESSION MANAGEMENT:
- Multiple sessions can run simultaneously, each with a 4-character ID.
- Progression (coins, upgrades, day number) persists per session; the day
  in progress does not.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nLayout: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatSnapshot(session.State))
}

func formatSnapshot(state *engine.Snapshot) string {
	if state == nil {
		return "No yard state available"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Day %d | %s (%s) | Coins: %d | Delivered: %d/%d\n",
		state.Day, state.Clock.Display, state.Clock.Phase,
		state.Coins, state.CompletedCount, state.SequenceTarget))

	mode := "walking"
	if state.Driver.Mode == engine.ModeDriving {
		mode = "driving " + state.ActiveTruckID
	}
	b.WriteString(fmt.Sprintf("Worker: %s at (%.0f,%.0f)", mode,
		state.Driver.Position.X, state.Driver.Position.Y))
	if state.Driver.CandidateID != "" && state.Driver.Mode == engine.ModeWalking {
		b.WriteString(fmt.Sprintf(" [touching %s]", state.Driver.CandidateID))
	}
	b.WriteString("\n")

	if len(state.Trucks) > 0 {
		b.WriteString("\nTrucks:\n")
		for _, truck := range state.Trucks {
			b.WriteString(fmt.Sprintf("- %s at (%.0f,%.0f) facing %s | order #%d %s (%ds)",
				truck.ID, truck.Position.X, truck.Position.Y, truck.Facing,
				truck.Order.Number, truck.Order.Cargo, truck.Order.Duration))
			if truck.Fulfilled {
				b.WriteString(" | FULFILLED - drive to exit")
			} else if truck.SpaceID != "" {
				b.WriteString(fmt.Sprintf(" | in %s", truck.SpaceID))
			}
			if truck.IdleSeconds > 0 {
				b.WriteString(fmt.Sprintf(" | idle %ds", truck.IdleSeconds))
			}
			b.WriteString("\n")
		}
	}

	if len(state.Spaces) > 0 {
		b.WriteString("\nSpaces:\n")
		for _, space := range state.Spaces {
			if !space.Enabled {
				continue
			}
			b.WriteString(fmt.Sprintf("- %s [%s] at (%.0f,%.0f) %.0fx%.0f",
				space.ID, space.Kind, space.Bounds.X, space.Bounds.Y,
				space.Bounds.W, space.Bounds.H))
			switch {
			case space.Fulfilled:
				b.WriteString(" | done, waiting for pickup")
			case space.OccupantID != "" && space.Kind == engine.DockSlot:
				b.WriteString(fmt.Sprintf(" | unloading %s, %ds remaining",
					space.OccupantID, space.RemainingSeconds))
			case space.OccupantID != "":
				b.WriteString(fmt.Sprintf(" | holding %s", space.OccupantID))
			default:
				b.WriteString(" | free")
			}
			b.WriteString("\n")
		}
	}

	if state.Phase == engine.PhaseEnding {
		b.WriteString("\nThe working day is over.")
		if state.Summary != nil {
			b.WriteString(fmt.Sprintf(" Delivered %d orders for %d coins.",
				state.Summary.Completed, state.Summary.Earnings))
		}
	}

	return b.String()
}

func formatStepResult(result *service.StepResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Executed %d frame(s)\n", result.FramesExecuted))

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			line := fmt.Sprintf("- %s", event.Type)
			if event.TruckID != "" {
				line += fmt.Sprintf(" truck=%s", event.TruckID)
			}
			if event.SpaceID != "" {
				line += fmt.Sprintf(" space=%s", event.SpaceID)
			}
			b.WriteString(line + "\n")
		}
	}

	if result.Message != "" {
		b.WriteString(fmt.Sprintf("Message: %s\n", result.Message))
	}

	b.WriteString("\n")
	b.WriteString(formatSnapshot(result.State))
	return b.String()
}

func formatDaySummary(summary *engine.DaySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Day %d Summary\n", summary.Day))
	b.WriteString(fmt.Sprintf("Delivered: %d orders | Earnings: %d coins | Total idle: %ds\n",
		summary.Completed, summary.Earnings, summary.TotalIdleSeconds))

	if len(summary.Orders) > 0 {
		b.WriteString("\nOrders:\n")
		for _, order := range summary.Orders {
			b.WriteString(fmt.Sprintf("%d. %s (%ds) - award %d + bonus %d [idle %ds]\n",
				order.Order.Number, order.Order.Cargo, order.Order.Duration,
				order.Award, order.Bonus, order.IdleSeconds))
		}
	}

	return b.String()
}

func formatUpgrades(listing []progress.UpgradeStatus) string {
	var b strings.Builder
	b.WriteString("Upgrade Store:\n\n")

	for _, status := range listing {
		if !status.Visible {
			b.WriteString(fmt.Sprintf("• ??? (%s) - prerequisites not met\n", status.Kind))
			continue
		}
		b.WriteString(fmt.Sprintf("• %s (%s) - level %d/%d",
			status.Label, status.Kind, status.Level, status.MaxLevel))
		if status.Maxed {
			b.WriteString(" | MAXED\n")
			continue
		}
		b.WriteString(fmt.Sprintf(" | next costs %d", status.Cost))
		if !status.Affordable {
			b.WriteString(" (cannot afford)")
		}
		b.WriteString("\n")
	}

	return b.String()
}
