package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-grid/model"
	"github.com/sheikhrachel/life-grid/player"
	"github.com/sheikhrachel/life-grid/tui"
	"github.com/sheikhrachel/life-grid/utils"
)

const controlsHelp = "click: toggle | space: play/pause | n: step | r: restart | +/-: speed | q: quit"

// view shows one generation together with a status block
type view interface {
	Render(snap model.Snapshot, status string) error
}

// textView prints frames to a plain writer
type textView struct {
	out      io.Writer
	renderer *model.TerminalRenderer
}

func newTextView(out io.Writer) *textView {
	return &textView{out: out, renderer: model.NewTerminalRenderer(out)}
}

func (v *textView) Render(snap model.Snapshot, status string) error {
	if err := v.renderer.Clear(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(v.out, "%s\n\n", status); err != nil {
		return errors.Wrap(err, "[Render] failed to write status")
	}
	return v.renderer.Display(snap)
}

// game bundles the pieces the terminal shell drives. mu serializes the
// tick callback against redraws triggered by input.
type game struct {
	mu sync.Mutex

	config  utils.Config
	grid    *model.Grid
	player  *player.Player
	input   *tui.Input
	view    view
	stats   *utils.Stats
	history *model.History

	stagnantCount int
	notice        string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, v view) (*game, error) {
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build grid")
	}
	seedGrid(grid, config)

	p := player.New(grid, player.Config{
		Interval: config.TickInterval,
		Speed:    config.Speed,
	})
	return &game{
		config:  config,
		grid:    grid,
		player:  p,
		input:   tui.NewInput(p),
		view:    v,
		stats:   utils.NewStats(),
		history: model.NewHistory(0),
	}, nil
}

// seedGrid places the configured starting pattern near the middle of the grid
func seedGrid(grid *model.Grid, config utils.Config) {
	row, col := grid.Rows()/2-1, grid.Cols()/2-1
	switch config.Pattern {
	case utils.PatternBlinker:
		grid.Place(model.Blinker, row, col)
	case utils.PatternBlock:
		grid.Place(model.Block, row, col)
	case utils.PatternRandom:
		grid.Randomize(rand.New(rand.NewSource(config.Seed)), config.RandomDensity)
	default:
		grid.Place(model.Glider, 0, 0)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		g.grid.Rows(), g.grid.Cols(), g.config.Pattern, g.grid.Population())
	fmt.Printf("Tick: %v at %.1fx\n", g.player.Interval(), g.player.Speed())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// onTick renders a generation and decides whether playback should continue.
// Interactive sessions pause on a stop condition so the board can be edited;
// batch runs end playback.
func (g *game) onTick(snap model.Snapshot) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stats.Record(snap, time.Now())
	population := snap.Population()

	hash := snap.Hash()
	if g.history.Stagnant(hash) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.history.Record(hash)

	stop, reason := checkStopConditions(population, g.stagnantCount, snap.Generation, g.config)
	if stop {
		g.notice = reason
		if g.config.Interactive {
			g.player.Pause()
			g.history.Clear()
			g.stagnantCount = 0
		}
	}

	if err := g.view.Render(snap, g.status(snap)); err != nil {
		return errors.Wrap(err, "[onTick] failed to render")
	}

	if stop && !g.config.Interactive {
		return player.ErrStop
	}
	return nil
}

// handleEvent applies one terminal event to the player and redraws
func (g *game) handleEvent(ev tcell.Event) error {
	switch g.input.Handle(ev) {
	case tui.ActionQuit:
		return tui.ErrQuit
	case tui.ActionRestart:
		g.mu.Lock()
		g.history.Clear()
		g.stagnantCount = 0
		g.notice = ""
		g.stats.Restart(time.Now())
		g.mu.Unlock()
		return g.redraw()
	case tui.ActionRedraw:
		return g.redraw()
	}
	return nil
}

// redraw renders the current board outside the tick loop
func (g *game) redraw() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := g.player.Snapshot()
	if err := g.view.Render(snap, g.status(snap)); err != nil {
		return errors.Wrap(err, "[redraw] failed to render")
	}
	return nil
}

// status builds the lines shown under the board; callers hold g.mu
func (g *game) status(snap model.Snapshot) string {
	population := snap.Population()
	density := float64(population) / float64(snap.Rows*snap.Cols) * 100

	state := "Active"
	if g.stagnantCount > 0 {
		state = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if population == 0 {
		state = "Extinct"
	}

	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
			snap.Generation, population, density, state),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs",
			g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation, g.stats.Runtime().Seconds()),
	}
	if g.config.Interactive {
		playback := "Paused"
		if g.player.Playing() {
			playback = "Playing"
		}
		lines = append(lines, fmt.Sprintf("%s at %.1fx", playback, g.player.Speed()), controlsHelp)
	}
	if g.notice != "" {
		lines = append(lines, "Stopped: "+g.notice)
	}
	return strings.Join(lines, "\n")
}

// checkStopConditions determines if playback should end
func checkStopConditions(population, stagnantCount, generation int, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if !config.AutoStop {
		return false, ""
	}
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
