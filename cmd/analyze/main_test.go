package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mgagliardo91/yard-simulator/game/engine"
)

func writeTestLayout(t *testing.T, cfg *engine.YardConfig) string {
	t.Helper()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal layout: %v", err)
	}
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}
	return path
}

func TestDayLengthSeconds(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		minutes  int
		tickSecs float64
		expected float64
	}{
		{"standard day", 9, 17, 5, 0.5, 48},
		{"one hour day", 9, 10, 60, 0.5, 0.5},
		{"slow clock", 8, 16, 10, 1.0, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &engine.YardConfig{
				DayStartHour:   tt.start,
				DayEndHour:     tt.end,
				MinutesPerTick: tt.minutes,
				ClockTickSecs:  tt.tickSecs,
			}
			if got := dayLengthSeconds(cfg); got != tt.expected {
				t.Errorf("dayLengthSeconds() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSequenceTarget(t *testing.T) {
	cfg := &engine.YardConfig{BaseTrucks: 5, TrucksPerYardLevel: 1.5}

	tests := []struct {
		level    int
		expected int
	}{
		{0, 5},
		{1, 6},
		{2, 8},
		{3, 9},
	}

	for _, tt := range tests {
		if got := sequenceTarget(cfg, tt.level); got != tt.expected {
			t.Errorf("sequenceTarget(level=%d) = %d, expected %d", tt.level, got, tt.expected)
		}
	}

	cfg.TotalTrucksOverride = 3
	if got := sequenceTarget(cfg, 4); got != 3 {
		t.Errorf("sequenceTarget with override = %d, expected 3", got)
	}
}

func TestAverageDockDistance(t *testing.T) {
	cfg := &engine.YardConfig{
		TruckSpawn: engine.Position{X: 0, Y: 0},
		ExitRect:   engine.Rect{X: 100, Y: 0, W: 50, H: 50},
		Slots: []engine.SlotDef{
			{Kind: engine.DockSlot, Rect: engine.Rect{X: 50, Y: 0, W: 80, H: 100}},
			{Kind: engine.YardSlot, Rect: engine.Rect{X: 500, Y: 500, W: 80, H: 100}},
		},
	}

	// spawn->dock = 50, dock->exit = 50; yard slot is ignored.
	if got := averageDockDistance(cfg); got != 100 {
		t.Errorf("averageDockDistance() = %v, expected 100", got)
	}

	empty := &engine.YardConfig{}
	if got := averageDockDistance(empty); got != 0 {
		t.Errorf("averageDockDistance with no docks = %v, expected 0", got)
	}
}

func TestAnalyzeLayout_ValidFile(t *testing.T) {
	path := writeTestLayout(t, engine.DefaultYardConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeLayout panicked: %v", r)
		}
	}()

	analyzeLayout(path)
}

func TestAnalyzeLayout_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeLayout panicked with invalid file: %v", r)
		}
	}()

	analyzeLayout("/non/existent/file.json")
}

func TestAnalyzeLayout_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"name": "test", invalid json}`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeLayout panicked with invalid JSON: %v", r)
		}
	}()

	analyzeLayout(path)
}

func TestAnalyzeLayout_TutorialOverride(t *testing.T) {
	path := writeTestLayout(t, engine.TutorialYardConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeLayout panicked: %v", r)
		}
	}()

	analyzeLayout(path)
}
