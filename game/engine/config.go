package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// SlotDef places one space in the yard layout.
type SlotDef struct {
	Kind SlotKind `json:"kind"`
	Rect Rect     `json:"rect"`
}

// YardConfig describes a yard layout and its tuning values. Configs are
// static for a session: slot geometry, spawn points, speeds, the day clock,
// and the tier tables that translate space-upgrade levels into unlocked slot
// indices.
type YardConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	WorldWidth  float64 `json:"world_width"`
	WorldHeight float64 `json:"world_height"`

	Slots []SlotDef `json:"slots"`

	ExitRect Rect `json:"exit_rect"`

	TruckSpawn  Position `json:"truck_spawn"`
	DriverStart Position `json:"driver_start"`

	TruckWidth   float64 `json:"truck_width"`
	TruckHeight  float64 `json:"truck_height"`
	DriverWidth  float64 `json:"driver_width"`
	DriverHeight float64 `json:"driver_height"`

	TruckBaseSpeed       float64 `json:"truck_base_speed"`
	TruckSpeedIncrement  float64 `json:"truck_speed_increment"`
	WorkerBaseSpeed      float64 `json:"worker_base_speed"`
	WorkerSpeedIncrement float64 `json:"worker_speed_increment"`

	DayStartHour   int     `json:"day_start_hour"`
	DayEndHour     int     `json:"day_end_hour"`
	MinutesPerTick int     `json:"minutes_per_tick"`
	ClockTickSecs  float64 `json:"clock_tick_secs"`

	// BaseTrucks and TrucksPerYardLevel derive the session admission target
	// from the yard upgrade level. TotalTrucksOverride, when positive, pins
	// the target instead (tutorial sessions).
	BaseTrucks          int     `json:"base_trucks"`
	TrucksPerYardLevel  float64 `json:"trucks_per_yard_level"`
	TotalTrucksOverride int     `json:"total_trucks_override,omitempty"`

	// Tier tables: DockTiers[level] / YardTiers[level] list the slot indices
	// (into Slots, counting docks and yard slots separately) unlocked at
	// that space-upgrade level. Levels beyond the table clamp to the last
	// entry.
	DockTiers [][]int `json:"dock_tiers"`
	YardTiers [][]int `json:"yard_tiers"`
}

// DefaultYardConfig builds the standard layout: eleven dock spaces along the
// warehouse at the top, two banks of four yard spaces flanking the check-in
// booth, the exit gate on the main road, trucks entering at the gate.
func DefaultYardConfig() *YardConfig {
	cfg := &YardConfig{
		Name:        "standard",
		Description: "Standard loading yard",
		WorldWidth:  1024,
		WorldHeight: 768,

		ExitRect: Rect{X: 430, Y: 580, W: 100, H: 140},

		TruckSpawn:  Position{X: 600, Y: 570},
		DriverStart: Position{X: 512, Y: 384},

		TruckWidth:   110,
		TruckHeight:  100,
		DriverWidth:  16,
		DriverHeight: 16,

		TruckBaseSpeed:       300,
		TruckSpeedIncrement:  50,
		WorkerBaseSpeed:      300,
		WorkerSpeedIncrement: 100,

		DayStartHour:   9,
		DayEndHour:     17,
		MinutesPerTick: 5,
		ClockTickSecs:  0.5,

		BaseTrucks:         5,
		TrucksPerYardLevel: 1.5,

		DockTiers: [][]int{
			{4, 5, 6},
			{3, 4, 5, 6, 7},
			{2, 3, 4, 5, 6, 7, 8},
			{1, 2, 3, 4, 5, 6, 7, 8, 9},
			{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		YardTiers: [][]int{
			{0, 4},
			{0, 1, 4, 5},
			{0, 1, 2, 4, 5, 6},
			{0, 1, 2, 3, 4, 5, 6},
			{0, 1, 2, 3, 4, 5, 6, 7},
		},
	}

	// Dock row across the warehouse face.
	for x := 20.0; x+80 <= cfg.WorldWidth; x += 90 {
		cfg.Slots = append(cfg.Slots, SlotDef{
			Kind: DockSlot,
			Rect: Rect{X: x + 40, Y: 150, W: 80, H: 100},
		})
	}

	// Two yard banks of four, either side of the check-in booth.
	const yardY = 460.0
	for i := 0; i < 4; i++ {
		cfg.Slots = append(cfg.Slots, SlotDef{
			Kind: YardSlot,
			Rect: Rect{X: float64(i)*90 + 60, Y: yardY + 100, W: 80, H: 100},
		})
	}
	for i := 0; i < 4; i++ {
		cfg.Slots = append(cfg.Slots, SlotDef{
			Kind: YardSlot,
			Rect: Rect{X: float64(i)*90 + 694, Y: yardY + 100, W: 80, H: 100},
		})
	}

	return cfg
}

// TutorialYardConfig is the first-session layout: a fixed three-truck
// sequence so a new player is never overwhelmed.
func TutorialYardConfig() *YardConfig {
	cfg := DefaultYardConfig()
	cfg.Name = "tutorial"
	cfg.Description = "First day at the yard"
	cfg.TotalTrucksOverride = 3
	return cfg
}

// DockSlotCount returns the number of dock slots in the layout.
func (c *YardConfig) DockSlotCount() int {
	n := 0
	for _, s := range c.Slots {
		if s.Kind == DockSlot {
			n++
		}
	}
	return n
}

// YardSlotCount returns the number of plain yard slots in the layout.
func (c *YardConfig) YardSlotCount() int {
	return len(c.Slots) - c.DockSlotCount()
}

// UnlockedDockIndexes returns the dock slot indices enabled at the given
// dock-spaces upgrade level, clamped to the deepest tier.
func (c *YardConfig) UnlockedDockIndexes(level int) []int {
	return tierLookup(c.DockTiers, level)
}

// UnlockedYardIndexes returns the yard slot indices enabled at the given
// yard-spaces upgrade level, clamped to the deepest tier.
func (c *YardConfig) UnlockedYardIndexes(level int) []int {
	return tierLookup(c.YardTiers, level)
}

func tierLookup(tiers [][]int, level int) []int {
	if len(tiers) == 0 {
		return nil
	}
	if level < 0 {
		level = 0
	}
	if level >= len(tiers) {
		level = len(tiers) - 1
	}
	return tiers[level]
}

// ValidateYardConfig checks a configuration for structural correctness and
// playability.
func ValidateYardConfig(cfg *YardConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if cfg.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if cfg.WorldWidth < MinWorldSize || cfg.WorldWidth > MaxWorldSize ||
		cfg.WorldHeight < MinWorldSize || cfg.WorldHeight > MaxWorldSize {
		return fmt.Errorf("config validation: world size must be between %d and %d, got %.0fx%.0f",
			MinWorldSize, MaxWorldSize, cfg.WorldWidth, cfg.WorldHeight)
	}

	world := Rect{X: cfg.WorldWidth / 2, Y: cfg.WorldHeight / 2, W: cfg.WorldWidth, H: cfg.WorldHeight}

	docks := 0
	for i, slot := range cfg.Slots {
		if slot.Kind != DockSlot && slot.Kind != YardSlot {
			return fmt.Errorf("config validation: slot %d has invalid kind %q", i, slot.Kind)
		}
		if slot.Rect.W <= 0 || slot.Rect.H <= 0 {
			return fmt.Errorf("config validation: slot %d has non-positive size", i)
		}
		if !world.ContainsRect(slot.Rect) {
			return fmt.Errorf("config validation: slot %d extends outside the world bounds", i)
		}
		if slot.Kind == DockSlot {
			docks++
		}
	}
	if docks < MinSlotCount {
		return fmt.Errorf("config validation: layout must contain at least %d dock slot", MinSlotCount)
	}

	if !world.ContainsRect(cfg.ExitRect) {
		return fmt.Errorf("config validation: exit rect extends outside the world bounds")
	}

	if cfg.TruckWidth <= 0 || cfg.TruckHeight <= 0 {
		return fmt.Errorf("config validation: truck size must be positive")
	}
	if cfg.DriverWidth <= 0 || cfg.DriverHeight <= 0 {
		return fmt.Errorf("config validation: driver size must be positive")
	}
	if cfg.TruckBaseSpeed <= 0 || cfg.WorkerBaseSpeed <= 0 {
		return fmt.Errorf("config validation: base speeds must be positive")
	}

	if cfg.DayEndHour-cfg.DayStartHour < MinDayHours {
		return fmt.Errorf("config validation: day must span at least %d hour, got %d..%d",
			MinDayHours, cfg.DayStartHour, cfg.DayEndHour)
	}
	if cfg.MinutesPerTick <= 0 || cfg.MinutesPerTick > 60 {
		return fmt.Errorf("config validation: minutes_per_tick must be in (0,60], got %d", cfg.MinutesPerTick)
	}
	if cfg.ClockTickSecs <= 0 {
		return fmt.Errorf("config validation: clock_tick_secs must be positive")
	}

	if cfg.BaseTrucks <= 0 && cfg.TotalTrucksOverride <= 0 {
		return fmt.Errorf("config validation: base_trucks or total_trucks_override must be positive")
	}

	if err := validateTiers("dock_tiers", cfg.DockTiers, docks); err != nil {
		return err
	}
	if err := validateTiers("yard_tiers", cfg.YardTiers, len(cfg.Slots)-docks); err != nil {
		return err
	}

	return nil
}

func validateTiers(name string, tiers [][]int, slotCount int) error {
	if len(tiers) == 0 {
		return fmt.Errorf("config validation: %s must have at least one tier", name)
	}
	for level, indexes := range tiers {
		if len(indexes) == 0 {
			return fmt.Errorf("config validation: %s tier %d unlocks no slots", name, level)
		}
		seen := make(map[int]bool, len(indexes))
		for _, idx := range indexes {
			if idx < 0 || idx >= slotCount {
				return fmt.Errorf("config validation: %s tier %d references slot %d, only %d exist",
					name, level, idx, slotCount)
			}
			if seen[idx] {
				return fmt.Errorf("config validation: %s tier %d repeats slot %d", name, level, idx)
			}
			seen[idx] = true
		}
	}
	return nil
}

// LoadYardConfig reads and validates a configuration from a JSON file.
func LoadYardConfig(filename string) (*YardConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg YardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := ValidateYardConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
