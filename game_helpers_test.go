package main

import (
	"context"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width = 6
	config.Height = 6
	config.Frontend = utils.FrontendHeadless
	config.Seed = 17
	config.Workers = 2
	return config
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	cases := []struct {
		living, stagnant int
		restart          bool
		reason           string
	}{
		{0, 0, true, "extinction"},
		{12, config.StagnationThreshold, true, "stagnation"},
		{12, config.StagnationThreshold - 1, false, ""},
	}
	for _, tc := range cases {
		restart, reason := checkRestartConditions(tc.living, tc.stagnant, config)
		if restart != tc.restart || reason != tc.reason {
			t.Fatalf("checkRestartConditions(%d, %d) = %v, %q", tc.living, tc.stagnant, restart, reason)
		}
	}
}

func TestSessionRestartsWhenStagnant(t *testing.T) {
	config := testConfig()
	config.StagnationThreshold = 2
	s, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	// a lone block never changes: stagnant from the third recorded generation on
	s.grid.Seed([]image.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}})
	for range 5 {
		s.Step()
	}

	if s.stats.Restarts != 1 {
		t.Fatalf("restarts = %d, expected 1", s.stats.Restarts)
	}
	if !strings.Contains(s.Status(), "Restarted after stagnation") {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestSessionRestartsOnExtinction(t *testing.T) {
	s, err := initializeGame(testConfig())
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	s.grid.Seed([]image.Point{{3, 3}})
	s.Step()

	if s.stats.Restarts != 1 {
		t.Fatalf("restarts = %d, expected 1", s.stats.Restarts)
	}
	if s.grid.CurrentGeneration() != 0 || s.grid.Current().Population() == 0 {
		t.Fatalf("board was not re-randomized")
	}
}

func TestSessionWithoutAutoRestart(t *testing.T) {
	config := testConfig()
	config.AutoRestart = false
	s, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	s.grid.Seed(nil)
	s.Step()
	if s.stats.Restarts != 0 || s.grid.CurrentGeneration() != 1 {
		t.Fatalf("extinct board restarted with auto restart off")
	}
	if !strings.Contains(s.Status(), "Extinct") {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestInitializeGameRejectsInvalidDimensions(t *testing.T) {
	config := testConfig()
	config.Height = 0
	if _, err := initializeGame(config); err == nil {
		t.Fatalf("expected an error for a zero height grid")
	}
}

func TestHeadlessRunWritesSnapshot(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3
	config.SnapshotPath = filepath.Join(t.TempDir(), "final.png")
	config.SnapshotWidth = 60
	config.SnapshotHeight = 30

	s, err := initializeGame(config)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	renderer, err := newRenderer(config)
	if err != nil {
		t.Fatalf("newRenderer: %v", err)
	}

	if err = runHeadless(context.Background(), s, renderer); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if !s.Done() || s.stats.TotalGenerations != 3 {
		t.Fatalf("ran %d generations, expected 3", s.stats.TotalGenerations)
	}

	f, err := os.Open(config.SnapshotPath)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if cfg.Width != 60 || cfg.Height != 30 {
		t.Fatalf("snapshot is %dx%d, expected 60x30", cfg.Width, cfg.Height)
	}
}
