package utils

import (
	"encoding/json"
	"flag"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Supported front-ends
const (
	FrontendHeadless = "headless"
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// defaultHeadlessGenerations bounds a headless run when MaxGenerations is unset
const defaultHeadlessGenerations = 500

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Frontend            string        `json:"frontend"`
	Interactive         bool          `json:"interactive"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	Workers             int           `json:"workers"`
	Seed                uint64        `json:"seed"`
	InactiveColor       string        `json:"inactive_color"`
	ActiveColor         string        `json:"active_color"`
	Scale               int           `json:"scale"`
	SnapshotPath        string        `json:"snapshot_path"`
	SnapshotWidth       int           `json:"snapshot_width"`
	SnapshotHeight      int           `json:"snapshot_height"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              100,
		FrameRate:           100 * time.Millisecond,
		Frontend:            FrontendTerminal,
		Interactive:         false,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      0,
		Workers:             0, // runtime.NumCPU()
		Seed:                0, // random
		InactiveColor:       "#000000",
		ActiveColor:         "#ffffff",
		Scale:               4,
		SnapshotWidth:       400,
		SnapshotHeight:      400,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override file values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between automatic generations")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "headless, terminal or window")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "advance only on key press, click or touch")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "re-randomize on extinction or stagnation")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.IntVar(&c.Workers, "workers", c.Workers, "step workers, 0 for one per CPU")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a random one")
	fs.StringVar(&c.InactiveColor, "inactive-color", c.InactiveColor, "hex colour of dead cells")
	fs.StringVar(&c.ActiveColor, "active-color", c.ActiveColor, "hex colour of living cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
	fs.StringVar(&c.SnapshotPath, "snapshot", c.SnapshotPath, "headless: write the final generation as PNG")
}

// Validate checks the configuration before a grid is built from it
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidDimensions, "[Validate] %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	switch c.Frontend {
	case FrontendHeadless, FrontendTerminal, FrontendWindow:
	default:
		return errors.Errorf("[Validate] unknown frontend %q", c.Frontend)
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Colors parses the inactive and active colours, both fully opaque
func (c Config) Colors() (inactive, active color.RGBA, err error) {
	if inactive, err = parseColor(c.InactiveColor); err != nil {
		return inactive, active, errors.Wrap(err, "[Colors] inactive_color")
	}
	if active, err = parseColor(c.ActiveColor); err != nil {
		return inactive, active, errors.Wrap(err, "[Colors] active_color")
	}
	return inactive, active, nil
}

// Generations returns how many generations a run may take, 0 meaning unbounded
func (c Config) Generations() int {
	if c.MaxGenerations == 0 && c.Frontend == FrontendHeadless {
		return defaultHeadlessGenerations
	}
	return c.MaxGenerations
}

func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "[parseColor] %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
