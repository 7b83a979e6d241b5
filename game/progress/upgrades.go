package progress

import (
	"errors"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

var (
	ErrUnknownUpgrade    = errors.New("unknown upgrade kind")
	ErrUpgradeHidden     = errors.New("upgrade prerequisites not met")
	ErrUpgradeMaxed      = errors.New("upgrade already at max level")
	ErrInsufficientCoins = errors.New("not enough coins")
)

// UpgradeKind names one permanent upgrade track. The values double as
// registry keys for the track's current level.
type UpgradeKind string

const (
	UpgradeYardLevel   UpgradeKind = engine.LevelYard
	UpgradeTruckSpeed  UpgradeKind = engine.LevelTruckSpeed
	UpgradeWorkerSpeed UpgradeKind = engine.LevelWorkerSpeed
	UpgradeYardSpaces  UpgradeKind = engine.LevelYardSpaces
	UpgradeDockSpaces  UpgradeKind = engine.LevelDockSpaces
)

// Requirement gates an upgrade's visibility behind another track's level.
type Requirement struct {
	Kind     UpgradeKind `json:"kind"`
	MinLevel int         `json:"min_level"`
}

// UpgradeConfig is the static definition of one upgrade track.
type UpgradeConfig struct {
	Label    string        `json:"label"`
	MaxLevel int           `json:"max_level"`
	BaseCost int           `json:"base_cost"`
	CostMult float64       `json:"cost_mult"`
	Deps     []Requirement `json:"deps,omitempty"`
}

// catalog is the fixed upgrade table.
var catalog = map[UpgradeKind]UpgradeConfig{
	UpgradeYardLevel: {
		Label:    "Yard Level",
		MaxLevel: 5,
		BaseCost: 50,
		CostMult: 2,
	},
	UpgradeTruckSpeed: {
		Label:    "Yard Speed Limit",
		MaxLevel: 4,
		BaseCost: 25,
		CostMult: 1,
		Deps:     []Requirement{{UpgradeYardLevel, 1}},
	},
	UpgradeWorkerSpeed: {
		Label:    "Worker Speed",
		MaxLevel: 4,
		BaseCost: 20,
		CostMult: 1.5,
		Deps:     []Requirement{{UpgradeYardLevel, 1}, {UpgradeTruckSpeed, 2}},
	},
	UpgradeYardSpaces: {
		Label:    "Yard Spaces",
		MaxLevel: 4,
		BaseCost: 50,
		CostMult: 1.5,
		Deps:     []Requirement{{UpgradeYardLevel, 1}, {UpgradeWorkerSpeed, 2}},
	},
	UpgradeDockSpaces: {
		Label:    "Dock Spaces",
		MaxLevel: 4,
		BaseCost: 100,
		CostMult: 1.5,
		Deps:     []Requirement{{UpgradeYardLevel, 2}, {UpgradeYardSpaces, 1}},
	},
}

// kindOrder fixes the display ordering of the catalog.
var kindOrder = []UpgradeKind{
	UpgradeYardLevel,
	UpgradeTruckSpeed,
	UpgradeWorkerSpeed,
	UpgradeYardSpaces,
	UpgradeDockSpaces,
}

// Kinds returns every upgrade kind in display order.
func Kinds() []UpgradeKind {
	out := make([]UpgradeKind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// Catalog returns the configuration for one upgrade kind.
func Catalog(kind UpgradeKind) (UpgradeConfig, bool) {
	cfg, ok := catalog[kind]
	return cfg, ok
}

// Cost computes the purchase price at the given current level:
// base + base * level * mult.
func Cost(cfg UpgradeConfig, level int) int {
	return cfg.BaseCost + int(float64(cfg.BaseCost)*float64(level)*cfg.CostMult)
}

// Visible reports whether an upgrade's prerequisites are met. Hidden
// upgrades render as "?" in the store and cannot be bought.
func Visible(reg *Registry, kind UpgradeKind) bool {
	cfg, ok := catalog[kind]
	if !ok {
		return false
	}
	for _, dep := range cfg.Deps {
		if reg.GetInt(string(dep.Kind)) < dep.MinLevel {
			return false
		}
	}
	return true
}

// UpgradeStatus is the store's view of one track for the current registry.
type UpgradeStatus struct {
	Kind       UpgradeKind   `json:"kind"`
	Label      string        `json:"label"`
	Level      int           `json:"level"`
	MaxLevel   int           `json:"max_level"`
	Cost       int           `json:"cost"`
	Visible    bool          `json:"visible"`
	Affordable bool          `json:"affordable"`
	Maxed      bool          `json:"maxed"`
	Deps       []Requirement `json:"deps,omitempty"`
}

// Status resolves the full store listing against the registry.
func Status(reg *Registry) []UpgradeStatus {
	coins := reg.Coins()
	out := make([]UpgradeStatus, 0, len(kindOrder))
	for _, kind := range kindOrder {
		cfg := catalog[kind]
		level := reg.GetInt(string(kind))
		cost := Cost(cfg, level)
		out = append(out, UpgradeStatus{
			Kind:       kind,
			Label:      cfg.Label,
			Level:      level,
			MaxLevel:   cfg.MaxLevel,
			Cost:       cost,
			Visible:    Visible(reg, kind),
			Affordable: coins >= cost,
			Maxed:      level >= cfg.MaxLevel,
			Deps:       cfg.Deps,
		})
	}
	return out
}

// Purchase buys one level of the given upgrade: prerequisites must be met,
// the track must not be maxed, and the player must afford the cost. On
// success the cost is deducted and the level raised by one.
func Purchase(reg *Registry, kind UpgradeKind) (UpgradeStatus, error) {
	cfg, ok := catalog[kind]
	if !ok {
		return UpgradeStatus{}, ErrUnknownUpgrade
	}
	if !Visible(reg, kind) {
		return UpgradeStatus{}, ErrUpgradeHidden
	}

	level := reg.GetInt(string(kind))
	if level >= cfg.MaxLevel {
		return UpgradeStatus{}, ErrUpgradeMaxed
	}

	cost := Cost(cfg, level)
	if reg.Coins() < cost {
		return UpgradeStatus{}, ErrInsufficientCoins
	}

	reg.AddCoins(-cost)
	newLevel := reg.IncInt(string(kind), 1)

	return UpgradeStatus{
		Kind:       kind,
		Label:      cfg.Label,
		Level:      newLevel,
		MaxLevel:   cfg.MaxLevel,
		Cost:       Cost(cfg, newLevel),
		Visible:    true,
		Affordable: reg.Coins() >= Cost(cfg, newLevel),
		Maxed:      newLevel >= cfg.MaxLevel,
		Deps:       cfg.Deps,
	}, nil
}
