package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os/signal"
	"syscall"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/display"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")

	// Flags are bound to the defaults first so -h lists them, then re-applied over the file
	config := utils.DefaultConfig()
	config.Bind(flag.CommandLine)
	flag.Parse()

	fileConfig, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("Using default configuration (config file not found)")
	} else {
		config = fileConfig
		flag.Visit(func(f *flag.Flag) {
			_ = fs(&config).Set(f.Name, f.Value.String())
		})
	}

	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config); err != nil {
		log.Fatal(err)
	}
}

// fs returns a FlagSet bound to config, used to replay explicit flags over file values
func fs(config *utils.Config) *flag.FlagSet {
	set := flag.NewFlagSet("replay", flag.ContinueOnError)
	config.Bind(set)
	return set
}

func run(ctx context.Context, config utils.Config) error {
	s, err := initializeGame(config)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(config)
	if err != nil {
		return err
	}

	switch config.Frontend {
	case utils.FrontendHeadless:
		return runHeadless(ctx, s, renderer)
	case utils.FrontendWindow:
		return display.RunWindow(s, renderer, display.WindowConfig{
			Title:       "go-life",
			Width:       config.Width * config.Scale,
			Height:      config.Height * config.Scale,
			FrameRate:   config.FrameRate,
			Interactive: config.Interactive,
		})
	default:
		return runTerminal(ctx, s, renderer)
	}
}

func runTerminal(ctx context.Context, s *session, renderer *render.Renderer) error {
	term, err := display.NewTerminal(renderer)
	if err != nil {
		return err
	}
	err = term.Run(ctx, s, s.config.FrameRate, s.config.Interactive)
	term.Close()

	displayFinalStats(s)
	return err
}

// runHeadless steps as fast as possible, printing a status line per generation
func runHeadless(ctx context.Context, s *session, renderer *render.Renderer) error {
	displayGameInfo(s.config, s)

	for !s.Done() {
		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down gracefully...")
			displayFinalStats(s)
			return nil
		default:
		}

		s.Step()
		displayGameStatus(s)
	}

	displayFinalStats(s)
	return writeSnapshot(s, renderer)
}

// writeSnapshot saves the current generation as a PNG when a path is configured
func writeSnapshot(s *session, renderer *render.Renderer) error {
	if s.config.SnapshotPath == "" {
		return nil
	}

	img := renderer.Render(s.Current(), image.Pt(s.config.SnapshotWidth, s.config.SnapshotHeight))
	if err := imgio.Save(s.config.SnapshotPath, img, imgio.PNGEncoder()); err != nil {
		return errors.Wrapf(err, "[writeSnapshot] failed to write %s", s.config.SnapshotPath)
	}
	fmt.Printf("Snapshot written to %s\n", s.config.SnapshotPath)
	return nil
}
