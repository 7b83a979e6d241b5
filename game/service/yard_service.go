package service

import (
	"context"
	"time"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
)

// YardService defines all yard-related operations
type YardService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Simulation
	Step(ctx context.Context, sessionID string, req StepRequest) (*StepResult, error)
	Advance(ctx context.Context, sessionID string, req AdvanceRequest) (*StepResult, error)
	GetYardState(ctx context.Context, sessionID string) (*engine.Snapshot, error)

	// Day sequencing
	DaySummary(ctx context.Context, sessionID string) (*engine.DaySummary, error)
	StartNextDay(ctx context.Context, sessionID string) (*SessionInfo, error)

	// Progression
	GetProgress(ctx context.Context, sessionID string) (*ProgressInfo, error)
	ListUpgrades(ctx context.Context, sessionID string) ([]progress.UpgradeStatus, error)
	BuyUpgrade(ctx context.Context, sessionID, kind string) (*PurchaseResult, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.YardConfig, error)
	SaveConfig(ctx context.Context, configName string, cfg *engine.YardConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.YardConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.YardConfig) (*Session, error)
	NextDay(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles yard layout loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.YardConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.YardConfig
	SaveConfig(name string, config *engine.YardConfig) error
}

// Session represents one player's live yard. Yard is the current day's
// simulation and is replaced on day rollover; Registry carries the
// progression that survives between days.
type Session struct {
	ID             string
	Yard           *engine.Yard
	Registry       *progress.Registry
	Config         *engine.YardConfig
	ConfigName     string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
