package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-grid/model"
	"github.com/sheikhrachel/life-grid/player"
	"github.com/sheikhrachel/life-grid/tui"
	"github.com/sheikhrachel/life-grid/utils"
)

func TestSeedGridPatterns(t *testing.T) {
	cases := map[string]int{
		utils.PatternGlider:  5,
		utils.PatternBlinker: 3,
		utils.PatternBlock:   4,
	}
	for pattern, want := range cases {
		cfg := utils.DefaultConfig()
		cfg.Pattern = pattern
		grid, err := model.NewGrid(cfg.Rows, cfg.Cols)
		if err != nil {
			t.Fatal(err)
		}

		seedGrid(grid, cfg)

		if got := grid.Population(); got != want {
			t.Errorf("%s: population = %d, want %d", pattern, got, want)
		}
	}
}

func TestCheckStopConditions(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.MaxGenerations = 10

	if stop, _ := checkStopConditions(5, 0, 3, cfg); stop {
		t.Fatal("healthy board should keep running")
	}
	if stop, _ := checkStopConditions(5, 0, 10, cfg); !stop {
		t.Fatal("max generations not enforced")
	}
	if stop, _ := checkStopConditions(0, 0, 3, cfg); !stop {
		t.Fatal("extinction not detected")
	}
	if stop, _ := checkStopConditions(5, cfg.StagnationThreshold, 3, cfg); !stop {
		t.Fatal("stagnation not detected")
	}

	cfg.AutoStop = false
	if stop, _ := checkStopConditions(0, cfg.StagnationThreshold, 3, cfg); stop {
		t.Fatal("auto stop disabled but playback stopped")
	}
}

func newTestGame(t *testing.T, cfg utils.Config) (*game, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	g, err := initializeGame(cfg, newTextView(&out))
	if err != nil {
		t.Fatal(err)
	}
	return g, &out
}

func stillLifeConfig(interactive bool) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Rows, cfg.Cols = 4, 4
	cfg.Pattern = utils.PatternBlock
	cfg.StagnationThreshold = 2
	cfg.Interactive = interactive
	return cfg
}

func TestOnTickStopsOnStillLife(t *testing.T) {
	g, out := newTestGame(t, stillLifeConfig(false))

	var last error
	for n := 0; n < 5; n++ {
		if last = g.onTick(g.player.Step()); last != nil {
			break
		}
	}
	if !errors.Is(last, player.ErrStop) {
		t.Fatalf("err = %v, want ErrStop", last)
	}
	if g.notice != "stagnation detected" {
		t.Fatalf("notice = %q", g.notice)
	}
	if out.Len() == 0 {
		t.Fatal("nothing rendered")
	}
}

func TestOnTickPausesInteractiveSession(t *testing.T) {
	g, out := newTestGame(t, stillLifeConfig(true))
	g.player.Play()

	for n := 0; n < 3; n++ {
		if err := g.onTick(g.player.Step()); err != nil {
			t.Fatalf("onTick: %v", err)
		}
	}
	if g.player.Playing() {
		t.Fatal("interactive session should pause on stagnation")
	}
	if !strings.Contains(out.String(), "Stopped: stagnation detected") {
		t.Fatal("stop reason not shown")
	}
}

func TestHealthyBoardKeepsPlaying(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Interactive = false
	g, _ := newTestGame(t, cfg)

	if err := g.onTick(g.player.Step()); err != nil {
		t.Fatalf("glider stopped after one tick: %v", err)
	}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleEventDrivesPlayer(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 6
	g, out := newTestGame(t, cfg)
	g.grid.ResetGrid()

	if err := g.handleEvent(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatalf("click: %v", err)
	}
	if ok, _ := g.grid.IsAlive(1, 2); !ok {
		t.Fatal("click did not toggle cell (1,2)")
	}
	if !strings.Contains(out.String(), "Living: 1") {
		t.Fatal("click did not redraw the board")
	}

	if err := g.handleEvent(key(' ')); err != nil || !g.player.Playing() {
		t.Fatalf("space: err=%v playing=%v", err, g.player.Playing())
	}
	if err := g.handleEvent(key('+')); err != nil || g.player.Speed() != 1.5 {
		t.Fatalf("plus: err=%v speed=%v", err, g.player.Speed())
	}

	g.notice = "extinction"
	g.stagnantCount = 3
	if err := g.handleEvent(key('r')); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if g.player.Playing() || g.grid.Population() != 0 || g.notice != "" || g.stagnantCount != 0 {
		t.Fatal("restart did not clear the session")
	}

	if err := g.handleEvent(key('q')); !errors.Is(err, tui.ErrQuit) {
		t.Fatalf("q: err = %v, want ErrQuit", err)
	}
}
