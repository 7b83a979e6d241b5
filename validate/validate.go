// Command validate provides a small CLI that validates yard layout JSON
// files in the ../configs directory. It checks:
//   - JSON structure and the engine's structural rules
//   - That every enabled slot can physically admit a truck in at least one
//     orientation, given the containment margin
//   - That the exit gate can admit a truck
//   - Slot overlap and spawn/start placement
//   - Day length and tier table coverage
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

// truckBodyRatio mirrors the engine's containment model: the truck body
// narrows to this fraction across the axis perpendicular to travel.
const truckBodyRatio = 0.60

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateLayout loads and validates a single yard layout JSON file. It runs
// the engine's structural validation first, then playability checks the
// engine does not enforce.
func validateLayout(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	cfg, err := engine.LoadYardConfig(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Truck body in both orientations, less the containment margin the
	// engine grants each space.
	vertW := cfg.TruckWidth*truckBodyRatio - engine.ContainmentPadding
	vertH := cfg.TruckHeight - engine.ContainmentPadding
	horzW := cfg.TruckWidth - engine.ContainmentPadding
	horzH := cfg.TruckHeight*truckBodyRatio - engine.ContainmentPadding

	admits := func(r engine.Rect) bool {
		return (r.W >= vertW && r.H >= vertH) || (r.W >= horzW && r.H >= horzH)
	}

	for i, slot := range cfg.Slots {
		if !admits(slot.Rect) {
			result.Valid = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("Slot %d (%s, %.0fx%.0f) cannot admit a %.0fx%.0f truck in any orientation",
					i, slot.Kind, slot.Rect.W, slot.Rect.H, cfg.TruckWidth, cfg.TruckHeight))
		}
	}

	if !admits(cfg.ExitRect) {
		result.Valid = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("Exit gate (%.0fx%.0f) cannot admit a %.0fx%.0f truck",
				cfg.ExitRect.W, cfg.ExitRect.H, cfg.TruckWidth, cfg.TruckHeight))
	}

	// Overlapping slots would let one truck satisfy two spaces at once.
	for i := 0; i < len(cfg.Slots); i++ {
		for j := i + 1; j < len(cfg.Slots); j++ {
			if cfg.Slots[i].Rect.Intersects(cfg.Slots[j].Rect) {
				result.Valid = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("Slots %d and %d overlap", i, j))
			}
		}
	}

	for i, slot := range cfg.Slots {
		if slot.Rect.Intersects(cfg.ExitRect) {
			result.Valid = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("Slot %d overlaps the exit gate", i))
		}
	}

	world := engine.Rect{
		X: cfg.WorldWidth / 2, Y: cfg.WorldHeight / 2,
		W: cfg.WorldWidth, H: cfg.WorldHeight,
	}
	spawn := engine.Rect{X: cfg.TruckSpawn.X, Y: cfg.TruckSpawn.Y, W: cfg.TruckWidth, H: cfg.TruckHeight}
	if !world.ContainsRect(spawn) {
		result.Valid = false
		result.Errors = append(result.Errors, "Truck spawn places the truck outside the world")
	}
	start := engine.Rect{X: cfg.DriverStart.X, Y: cfg.DriverStart.Y, W: cfg.DriverWidth, H: cfg.DriverHeight}
	if !world.ContainsRect(start) {
		result.Valid = false
		result.Errors = append(result.Errors, "Driver start is outside the world")
	}

	// Every dock index must appear in some tier, or it can never be used.
	docks := cfg.DockSlotCount()
	covered := make(map[int]bool)
	for _, tier := range cfg.DockTiers {
		for _, idx := range tier {
			covered[idx] = true
		}
	}
	for i := 0; i < docks; i++ {
		if !covered[i] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Note: dock slot %d is unreachable by any tier", i))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", cfg.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ World: %.0fx%.0f", cfg.WorldWidth, cfg.WorldHeight))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Docks: %d, yard spaces: %d", docks, cfg.YardSlotCount()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Day: %d:00 to %d:00 (%d min per tick)",
			cfg.DayStartHour, cfg.DayEndHour, cfg.MinutesPerTick))
		if cfg.TotalTrucksOverride > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Trucks: pinned at %d", cfg.TotalTrucksOverride))
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Trucks: %d base, +%.1f per yard level",
				cfg.BaseTrucks, cfg.TrucksPerYardLevel))
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Tiers: %d dock, %d yard",
			len(cfg.DockTiers), len(cfg.YardTiers)))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateLayout(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All layouts are valid!")
	} else {
		fmt.Println("❌ Some layouts have errors")
		os.Exit(1)
	}
}
