package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// session drives one grid for a front-end: stepping, stagnation handling and stats
type session struct {
	config  utils.Config
	grid    *model.Grid
	history *model.History
	stats   *utils.Stats

	stagnantCount int
	status        string
	steps         int
	lastFrameTime time.Time
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*session, error) {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	grid, err := model.NewGrid(config.Width, config.Height, opts...)
	if err != nil {
		return nil, err
	}

	s := &session{
		config:  config,
		grid:    grid,
		history: &model.History{},
		stats:   utils.NewStats(),
	}
	s.Randomize()
	return s, nil
}

// newRenderer builds the render adapter from the configured colours
func newRenderer(config utils.Config) (*render.Renderer, error) {
	inactive, active, err := config.Colors()
	if err != nil {
		return nil, err
	}
	return render.New(render.WithInactiveColor(inactive), render.WithActiveColor(active)), nil
}

// Randomize seeds a fresh population and forgets the stagnation history
func (s *session) Randomize() {
	s.grid.Randomize()
	s.history.Reset()
	s.stagnantCount = 0
	s.status = "Active"
	s.lastFrameTime = time.Now()
}

// Step advances one generation and restarts the board when it dies out or stalls
func (s *session) Step() {
	s.grid.Step()
	s.steps++

	livingCells, isStagnant := s.updateGameState()
	if isStagnant {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	shouldRestart, reason := checkRestartConditions(livingCells, s.stagnantCount, s.config)
	if shouldRestart && s.config.AutoRestart {
		s.stats.Restarts++
		s.Randomize()
		s.status = "Restarted after " + reason
	}
}

// Current returns the generation to draw
func (s *session) Current() render.Source {
	return s.grid.Current()
}

// Done reports whether the configured generation limit has been reached
func (s *session) Done() bool {
	limit := s.config.Generations()
	return limit > 0 && s.steps >= limit
}

// Status returns a one-line summary of the run
func (s *session) Status() string {
	view := s.grid.Current()
	density := float64(view.Population()) / float64(view.Width()*view.Height()) * 100
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		s.grid.CurrentGeneration(), view.Population(), density, s.status, s.stats.GenerationsPerSecond)
}

// updateGameState records the new generation and returns its population and whether it is stagnant
func (s *session) updateGameState() (int, bool) {
	view := s.grid.Current()
	livingCells := view.Population()

	now := time.Now()
	s.stats.Update(livingCells, now.Sub(s.lastFrameTime))
	s.lastFrameTime = now

	hash := view.Hash()
	isStagnant := s.history.IsStagnant(hash)
	s.history.Record(hash)

	switch {
	case livingCells == 0:
		s.status = "Extinct"
	case isStagnant:
		s.status = fmt.Sprintf("Stagnant (%d)", s.stagnantCount+1)
	default:
		s.status = "Active"
	}

	return livingCells, isStagnant
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation"
	}
	return false, ""
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, s *session) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d (target %d)\n",
		config.Width, config.Height, s.grid.Current().Population(), model.LiveTarget(config.Width, config.Height))
	fmt.Printf("Frontend: %s | Interactive: %v | Auto restart: %v\n",
		config.Frontend, config.Interactive, config.AutoRestart)
}

// displayGameStatus shows the current game status
func displayGameStatus(s *session) {
	box := s.grid.Current().BoundingBox()
	fmt.Printf("%s | Bounding box: %d cells\n", s.Status(), box.Dx()*box.Dy())
}

// displayFinalStats prints a summary once the run ends
func displayFinalStats(s *session) {
	fmt.Printf("Final stats: %d generations in %.1f seconds, %d restarts\n",
		s.stats.TotalGenerations, s.stats.Runtime().Seconds(), s.stats.Restarts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation)
}
