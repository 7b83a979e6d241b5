package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
)

// yardServiceImpl implements the YardService interface
type yardServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewYardService creates a new yard service instance
func NewYardService(sessions SessionManager, configs ConfigManager) YardService {
	return &yardServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config display name, used for
// consistent API responses
func (s *yardServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *yardServiceImpl) sessionInfo(sess *Session, includeConfig bool) *SessionInfo {
	info := &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.ConfigName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		State:          sess.Yard.Snapshot(),
	}
	if info.ConfigName == "" {
		info.ConfigName = s.getConfigID(sess.Config.Name)
	}
	if includeConfig {
		info.Config = sess.Config
	}
	return info
}

// CreateSession creates a new yard session
func (s *yardServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.YardConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if configName != "" {
		session.ConfigName = configName
	} else {
		session.ConfigName = s.getConfigID(config.Name)
	}

	return s.sessionInfo(session, true), nil
}

// GetSession retrieves session information
func (s *yardServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session, true), nil
}

// ListSessions returns all active sessions
func (s *yardServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, false))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *yardServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Step advances a session by one frame
func (s *yardServiceImpl) Step(ctx context.Context, sessionID string, req StepRequest) (*StepResult, error) {
	return s.advance(sessionID, req.Input, 1, req.DT)
}

// Advance advances a session by several frames with the input held
func (s *yardServiceImpl) Advance(ctx context.Context, sessionID string, req AdvanceRequest) (*StepResult, error) {
	if req.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", req.Frames)
	}
	if req.Frames > MaxAdvanceFrames {
		return nil, fmt.Errorf("frames must be at most %d, got %d", MaxAdvanceFrames, req.Frames)
	}
	return s.advance(sessionID, req.Input, req.Frames, req.DT)
}

func (s *yardServiceImpl) advance(sessionID string, input engine.InputState, frames int, dt float64) (*StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if dt <= 0 {
		dt = DefaultFrameSeconds
	}

	result := &StepResult{}
	for i := 0; i < frames; i++ {
		events := session.Yard.Step(input, dt)
		result.Events = append(result.Events, events...)
		result.FramesExecuted++
		if session.Yard.Phase() == engine.PhaseEnding {
			result.DayEnded = true
			break
		}
	}

	if result.DayEnded {
		result.Message = "the working day is over"
		// Flush the day's progression to storage.
		if err := s.sessions.Save(sessionID); err != nil {
			return nil, fmt.Errorf("failed to persist progression: %w", err)
		}
	}

	result.State = session.Yard.Snapshot()
	return result, nil
}

// GetYardState returns the current simulation snapshot
func (s *yardServiceImpl) GetYardState(ctx context.Context, sessionID string) (*engine.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return session.Yard.Snapshot(), nil
}

// DaySummary returns the end-of-day tally for a finished day
func (s *yardServiceImpl) DaySummary(ctx context.Context, sessionID string) (*engine.DaySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	summary := session.Yard.Summary()
	if summary == nil {
		return nil, fmt.Errorf("day %d is still in progress", session.Registry.Day())
	}
	return summary, nil
}

// StartNextDay replaces the session's yard with a fresh one built from the
// same layout and the (now updated) progression
func (s *yardServiceImpl) StartNextDay(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.NextDay(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to start next day: %w", err)
	}

	return s.sessionInfo(session, false), nil
}

// GetProgress returns the session's progression view
func (s *yardServiceImpl) GetProgress(ctx context.Context, sessionID string) (*ProgressInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	reg := session.Registry
	return &ProgressInfo{
		Day:      reg.Day(),
		Coins:    reg.Coins(),
		Levels:   reg.Levels(),
		Sequence: reg.Sequence(),
	}, nil
}

// ListUpgrades returns the upgrade store listing for the session
func (s *yardServiceImpl) ListUpgrades(ctx context.Context, sessionID string) ([]progress.UpgradeStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return progress.Status(session.Registry), nil
}

// BuyUpgrade purchases one level of an upgrade for the session
func (s *yardServiceImpl) BuyUpgrade(ctx context.Context, sessionID, kind string) (*PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	status, err := progress.Purchase(session.Registry, progress.UpgradeKind(kind))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(sessionID); err != nil {
		return nil, fmt.Errorf("failed to persist progression: %w", err)
	}

	return &PurchaseResult{
		Status: status,
		Coins:  session.Registry.Coins(),
	}, nil
}

// ListConfigs returns information about all available layouts
func (s *yardServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a layout by name
func (s *yardServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.YardConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a layout to disk
func (s *yardServiceImpl) SaveConfig(ctx context.Context, configName string, cfg *engine.YardConfig) error {
	return s.configs.SaveConfig(configName, cfg)
}
