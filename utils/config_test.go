package utils

import (
	"flag"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 64, "height": 32, "frontend": "headless", "active_color": "#ff8000", "frame_rate": 50000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 64 || config.Height != 32 {
		t.Fatalf("dimensions = %dx%d", config.Width, config.Height)
	}
	if config.FrameRate != 50*time.Millisecond {
		t.Fatalf("frame rate = %v", config.FrameRate)
	}
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatalf("unset field lost its default: %d", config.StagnationThreshold)
	}
	if err = config.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	_, active, err := config.Colors()
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if want := (color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}); active != want {
		t.Fatalf("active colour = %v, expected %v", active, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	config, err := LoadConfig(writeConfig(t, `{"width": `))
	if err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
	if config.Width != DefaultConfig().Width {
		t.Fatalf("malformed file changed the defaults")
	}
}

func TestDefaultColors(t *testing.T) {
	inactive, active, err := DefaultConfig().Colors()
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if inactive != (color.RGBA{A: 0xff}) {
		t.Fatalf("inactive = %v, expected opaque black", inactive)
	}
	if active != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("active = %v, expected opaque white", active)
	}
}

func TestValidate(t *testing.T) {
	bad := DefaultConfig()
	bad.Width = 0
	if err := bad.Validate(); !errors.Is(err, model.ErrInvalidDimensions) {
		t.Fatalf("zero width err = %v, expected ErrInvalidDimensions", err)
	}

	bad = DefaultConfig()
	bad.Frontend = "hologram"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected an error for an unknown frontend")
	}

	bad = DefaultConfig()
	bad.ActiveColor = "white"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected an error for an unparsable colour")
	}
}

func TestBindOverridesConfig(t *testing.T) {
	config := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.Bind(fs)

	err := fs.Parse([]string{"-width", "20", "-frontend", "headless", "-interactive", "-frame-rate", "250ms", "-seed", "9"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if config.Width != 20 || config.Frontend != FrontendHeadless || !config.Interactive {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.FrameRate != 250*time.Millisecond || config.Seed != 9 {
		t.Fatalf("flags not applied: %+v", config)
	}
}

func TestGenerations(t *testing.T) {
	config := DefaultConfig()
	if got := config.Generations(); got != 0 {
		t.Fatalf("terminal default = %d, expected unbounded", got)
	}

	config.Frontend = FrontendHeadless
	if got := config.Generations(); got != defaultHeadlessGenerations {
		t.Fatalf("headless default = %d, expected %d", got, defaultHeadlessGenerations)
	}

	config.MaxGenerations = 12
	if got := config.Generations(); got != 12 {
		t.Fatalf("explicit limit = %d, expected 12", got)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(100, 500*time.Millisecond)
	s.Update(200, 0)

	if s.TotalGenerations != 2 {
		t.Fatalf("total generations = %d", s.TotalGenerations)
	}
	if s.GenerationsPerSecond != 2 {
		t.Fatalf("gen/sec = %v, expected 2", s.GenerationsPerSecond)
	}
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("average population = %v, expected 110", s.AveragePopulation)
	}
}
