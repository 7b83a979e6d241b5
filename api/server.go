package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
	"github.com/mgagliardo91/yard-simulator/game/service"
	"github.com/mgagliardo91/yard-simulator/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.YardService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(yardService service.YardService, hub *websocket.Hub) *Server {
	s := &Server{
		service: yardService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Simulation
	api.HandleFunc("/sessions/{id}/state", s.handleGetState).Methods("GET")
	api.HandleFunc("/sessions/{id}/step", s.handleStep).Methods("POST")
	api.HandleFunc("/sessions/{id}/advance", s.handleAdvance).Methods("POST")

	// Day sequencing
	api.HandleFunc("/sessions/{id}/summary", s.handleDaySummary).Methods("GET")
	api.HandleFunc("/sessions/{id}/next-day", s.handleNextDay).Methods("POST")

	// Progression and upgrades
	api.HandleFunc("/sessions/{id}/progress", s.handleGetProgress).Methods("GET")
	api.HandleFunc("/sessions/{id}/upgrades", s.handleListUpgrades).Methods("GET")
	api.HandleFunc("/sessions/{id}/upgrades", s.handleBuyUpgrade).Methods("POST")

	// Configuration
	api.HandleFunc("/configs", s.handleListConfigs).Methods("GET")
	api.HandleFunc("/configs", s.handleCreateConfig).Methods("POST")
	api.HandleFunc("/configs/{name}", s.handleGetConfig).Methods("GET")

	// Health
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigID string `json:"config_id,omitempty"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	session, err := s.service.CreateSession(r.Context(), req.ConfigID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	query := r.URL.Query()
	sortBy := query.Get("sort")    // "created", "accessed" (default)
	order := query.Get("order")    // "asc", "desc" (default: "desc")
	limitStr := query.Get("limit") // number of sessions to return

	if sortBy == "" {
		sortBy = "accessed"
	}
	if order == "" {
		order = "desc"
	}

	sort.Slice(sessions, func(i, j int) bool {
		var ti, tj time.Time
		if sortBy == "created" {
			ti, tj = sessions[i].CreatedAt, sessions[j].CreatedAt
		} else { // "accessed"
			ti, tj = sessions[i].LastAccessedAt, sessions[j].LastAccessedAt
		}

		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj) // desc
	})

	limit := len(sessions)
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(sessions) {
			limit = l
		}
	}
	sessions = sessions[:limit]

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(sessions),
		"sessions": sessions,
		"sort":     sortBy,
		"order":    order,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := s.service.GetSession(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := s.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// Simulation Handlers

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	state, err := s.service.GetYardState(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req service.StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Step(r.Context(), sessionID, req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.publish(sessionID, result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req service.AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.Advance(r.Context(), sessionID, req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.publish(sessionID, result)

	// Compact server log for observability
	fmt.Printf("[ADVANCE] session=%s frames=%d events=%d clock=%s day_ended=%v\n",
		sessionID, result.FramesExecuted, len(result.Events), result.State.Clock.Display, result.DayEnded)

	respondJSON(w, http.StatusOK, result)
}

// publish pushes the step result to WebSocket observers.
func (s *Server) publish(sessionID string, result *service.StepResult) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToSession(sessionID, result.State, result.Events)
	if result.DayEnded {
		s.hub.BroadcastEvent(sessionID, "day_ended", result.State.Summary)
	}
}

// Day Sequencing Handlers

func (s *Server) handleDaySummary(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	summary, err := s.service.DaySummary(r.Context(), sessionID)
	if err != nil {
		if strings.Contains(err.Error(), "in progress") {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (s *Server) handleNextDay(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := s.service.StartNextDay(r.Context(), sessionID)
	if err != nil {
		if strings.Contains(err.Error(), "in progress") {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if s.hub != nil {
		s.hub.BroadcastToSession(sessionID, session.State, nil)
	}

	respondJSON(w, http.StatusOK, session)
}

// Progression Handlers

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	prog, err := s.service.GetProgress(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, prog)
}

func (s *Server) handleListUpgrades(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	listing, err := s.service.ListUpgrades(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, listing)
}

func (s *Server) handleBuyUpgrade(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.BuyUpgrade(r.Context(), sessionID, req.Kind)
	if err != nil {
		respondError(w, upgradeErrorStatus(err), err.Error())
		return
	}

	fmt.Printf("[UPGRADE] session=%s kind=%s level=%d coins=%d\n",
		sessionID, req.Kind, result.Status.Level, result.Coins)

	respondJSON(w, http.StatusOK, result)
}

// upgradeErrorStatus maps upgrade store errors onto HTTP statuses.
func upgradeErrorStatus(err error) int {
	switch {
	case errors.Is(err, progress.ErrUnknownUpgrade):
		return http.StatusNotFound
	case errors.Is(err, progress.ErrUpgradeHidden),
		errors.Is(err, progress.ErrUpgradeMaxed),
		errors.Is(err, progress.ErrInsufficientCoins):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	configName := mux.Vars(r)["name"]
	configName = strings.TrimSuffix(configName, ".json")

	config, err := s.service.LoadConfig(r.Context(), configName)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, config)
}

func (s *Server) handleCreateConfig(w http.ResponseWriter, r *http.Request) {
	var yardConfig engine.YardConfig
	if err := json.NewDecoder(r.Body).Decode(&yardConfig); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if yardConfig.Name == "" {
		respondError(w, http.StatusBadRequest, "Config name is required")
		return
	}

	if err := s.service.SaveConfig(r.Context(), yardConfig.Name, &yardConfig); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save config: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Configuration saved successfully",
		"config_id": yardConfig.Name,
	})
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	if _, err := s.service.GetSession(context.Background(), sessionID); err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, sessionID)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
