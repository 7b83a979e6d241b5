// Command analyze prints quick, human-readable heuristics about yard layout
// files in the project's configs directory. It summarizes dimensions, slot
// counts, tier progression, day length in real seconds, and estimates whether
// the truck sequence at each yard level is deliverable before the clock stops.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

// averageOrderDwell is the midpoint of the order duration range the engine
// rolls for each truck.
const averageOrderDwell = 12.5

func main() {
	configs := []string{
		"default.json",
		"tutorial.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeLayout(filepath.Join("configs", configFile))
	}
}

func analyzeLayout(path string) {
	cfg, err := engine.LoadYardConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("Skipped: %v\n", err)
			return
		}
		fmt.Printf("Error loading layout: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", cfg.Name)
	fmt.Printf("World: %.0f x %.0f\n", cfg.WorldWidth, cfg.WorldHeight)
	fmt.Printf("Docks: %d, yard spaces: %d\n", cfg.DockSlotCount(), cfg.YardSlotCount())
	fmt.Printf("Day: %d:00 to %d:00, %d min per %.1fs tick\n",
		cfg.DayStartHour, cfg.DayEndHour, cfg.MinutesPerTick, cfg.ClockTickSecs)

	daySeconds := dayLengthSeconds(cfg)
	fmt.Printf("Real day length: %.0fs\n", daySeconds)

	// Round trip for one truck: gate to the average dock, dock to the exit.
	avgDock := averageDockDistance(cfg)
	tripSeconds := avgDock / cfg.TruckBaseSpeed
	fmt.Printf("Average haul: %.0f units (%.1fs at base speed)\n", avgDock, tripSeconds)

	// Per-level feasibility. Dwell timers overlap across docks, so the
	// serial cost per truck is the haul plus the dwell divided by how many
	// docks can unload at once.
	fmt.Println("\nSequence feasibility by yard level:")
	for level := 0; level < len(cfg.DockTiers); level++ {
		target := sequenceTarget(cfg, level)
		docks := len(cfg.UnlockedDockIndexes(level))
		perTruck := tripSeconds + averageOrderDwell/float64(docks)
		needed := float64(target) * perTruck

		verdict := "✅ comfortable"
		switch {
		case needed > daySeconds:
			verdict = "⚠️  likely impossible"
		case needed > daySeconds*0.75:
			verdict = "⚠️  tight"
		}

		fmt.Printf("  Level %d: %d trucks, %d docks, ~%.0fs of work in a %.0fs day %s\n",
			level, target, docks, needed, daySeconds, verdict)
	}

	// Staging capacity: yard spaces absorb trucks when docks are full.
	for level := 0; level < len(cfg.YardTiers); level++ {
		docks := len(cfg.UnlockedDockIndexes(min(level, len(cfg.DockTiers)-1)))
		yardSpaces := len(cfg.UnlockedYardIndexes(level))
		if yardSpaces == 0 && docks < sequenceTarget(cfg, level) {
			fmt.Printf("⚠️  Level %d has no staging spaces and fewer docks (%d) than trucks (%d)\n",
				level, docks, sequenceTarget(cfg, level))
		}
	}
}

// dayLengthSeconds converts the clock settings into real seconds of play.
func dayLengthSeconds(cfg *engine.YardConfig) float64 {
	ticks := float64((cfg.DayEndHour-cfg.DayStartHour)*60) / float64(cfg.MinutesPerTick)
	return ticks * cfg.ClockTickSecs
}

// averageDockDistance estimates the Manhattan haul for one delivery: spawn to
// the mean dock position, then dock to the exit gate.
func averageDockDistance(cfg *engine.YardConfig) float64 {
	var total float64
	docks := 0
	exit := engine.Position{X: cfg.ExitRect.X, Y: cfg.ExitRect.Y}
	for _, slot := range cfg.Slots {
		if slot.Kind != engine.DockSlot {
			continue
		}
		dock := engine.Position{X: slot.Rect.X, Y: slot.Rect.Y}
		total += engine.ManhattanDistance(cfg.TruckSpawn, dock)
		total += engine.ManhattanDistance(dock, exit)
		docks++
	}
	if docks == 0 {
		return 0
	}
	return total / float64(docks)
}

// sequenceTarget mirrors the engine's admission target derivation.
func sequenceTarget(cfg *engine.YardConfig, yardLevel int) int {
	if cfg.TotalTrucksOverride > 0 {
		return cfg.TotalTrucksOverride
	}
	return cfg.BaseTrucks + int(math.Floor(float64(yardLevel)*cfg.TrucksPerYardLevel))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
