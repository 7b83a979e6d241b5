// Command yardctl is an operations CLI for the yard simulator: it inspects
// and resets persisted player progression, prints the upgrade store for a
// saved player, and runs headless day simulations against a layout file.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/mgagliardo91/yard-simulator/game/engine"
	"github.com/mgagliardo91/yard-simulator/game/progress"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "yardctl",
		Usage: "operations tooling for the yard simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "progress-dir",
				Value: "progress",
				Usage: "directory holding persisted progression files",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "progress",
				Usage: "inspect persisted player progression",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "list saved progression ids",
						Action: runProgressList,
					},
					{
						Name:      "show",
						Usage:     "print a saved progression",
						ArgsUsage: "<session-id>",
						Action:    runProgressShow,
					},
					{
						Name:      "reset",
						Usage:     "delete a saved progression",
						ArgsUsage: "<session-id>",
						Action:    runProgressReset,
					},
				},
			},
			{
				Name:      "upgrades",
				Usage:     "print the upgrade store for a saved progression",
				ArgsUsage: "<session-id>",
				Action:    runUpgrades,
			},
			{
				Name:  "simulate",
				Usage: "run a headless day against a layout and report timings",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "layout JSON file (defaults to the built-in standard layout)",
					},
					&cli.IntFlag{
						Name:  "yard-level",
						Value: 0,
						Usage: "yard level to simulate at",
					},
					&cli.FloatFlag{
						Name:  "dt",
						Value: 1.0 / 60,
						Usage: "frame delta in seconds",
					},
				},
				Action: runSimulate,
			},
		},
	}
}

func openStore(cmd *cli.Command) (*progress.FilePersistence, error) {
	return progress.NewFilePersistence(cmd.String("progress-dir"))
}

func runProgressList(ctx context.Context, cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	ids, err := store.ListAll()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("No saved progressions.")
		return nil
	}

	sort.Strings(ids)
	for _, id := range ids {
		reg, err := store.Load(id)
		if err != nil {
			fmt.Printf("%s  (unreadable: %v)\n", id, err)
			continue
		}
		fmt.Printf("%s  day %d, %d coins\n", id, reg.Day(), reg.Coins())
	}
	return nil
}

func runProgressShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("session id required")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	reg, err := store.Load(id)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", id)
	fmt.Printf("Day: %d\n", reg.Day())
	fmt.Printf("Coins: %d\n", reg.Coins())
	fmt.Printf("Trucks per day: %d\n", reg.Sequence().TotalTrucks)

	levels := reg.Levels()
	if len(levels) > 0 {
		fmt.Println("Levels:")
		keys := make([]string, 0, len(levels))
		for key := range levels {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  %s: %d\n", key, levels[key])
		}
	}
	return nil
}

func runProgressReset(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("session id required")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := store.Delete(id); err != nil {
		return err
	}
	fmt.Printf("Progression %s deleted.\n", id)
	return nil
}

func runUpgrades(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("session id required")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	reg, err := store.Load(id)
	if err != nil {
		return err
	}

	fmt.Printf("Upgrade store for %s (%d coins):\n", id, reg.Coins())
	for _, status := range progress.Status(reg) {
		if !status.Visible {
			fmt.Printf("  ??? (%s)\n", status.Kind)
			continue
		}
		line := fmt.Sprintf("  %s: level %d/%d", status.Label, status.Level, status.MaxLevel)
		if status.Maxed {
			line += " (maxed)"
		} else {
			line += fmt.Sprintf(", next costs %d", status.Cost)
		}
		fmt.Println(line)
	}
	return nil
}

// runSimulate drives a fresh yard with no player input until the clock stops,
// reporting real and simulated timings. Useful as a smoke test for a layout's
// day settings without standing up the server.
func runSimulate(ctx context.Context, cmd *cli.Command) error {
	var cfg *engine.YardConfig
	if path := cmd.String("config"); path != "" {
		loaded, err := engine.LoadYardConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = engine.DefaultYardConfig()
	}

	reg := progress.NewRegistry()
	if level := cmd.Int("yard-level"); level > 0 {
		reg.SetInt(engine.LevelYard, int(level))
	}

	yard, err := engine.NewYard(cfg, reg)
	if err != nil {
		return err
	}

	dt := cmd.Float("dt")
	if dt <= 0 {
		return fmt.Errorf("dt must be positive")
	}

	frames := 0
	events := 0
	for yard.Phase() == engine.PhaseRunning {
		events += len(yard.Step(engine.InputState{}, dt))
		frames++
	}

	snap := yard.Snapshot()
	fmt.Printf("Layout: %s\n", cfg.Name)
	fmt.Printf("Day ended after %d frames (%.1fs real at dt=%.4f)\n", frames, float64(frames)*dt, dt)
	fmt.Printf("Clock: %s | Sequence target: %d | Events: %d\n",
		snap.Clock.Display, snap.SequenceTarget, events)
	if snap.Summary != nil {
		fmt.Printf("Delivered: %d | Earnings: %d\n", snap.Summary.Completed, snap.Summary.Earnings)
	}
	return nil
}
