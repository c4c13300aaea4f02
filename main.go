package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/life-grid/tui"
	"github.com/sheikhrachel/life-grid/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, err := run(ctx, config)
	if ctx.Err() != nil {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if g.notice != "" {
		fmt.Printf("🏁 Stopped: %s\n", g.notice)
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.Generation, g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation)
}

// run plays the game until it stops, the user quits or ctx is cancelled.
// Interactive sessions start paused on a tcell screen; otherwise frames are
// printed to stdout and playback starts immediately.
func run(ctx context.Context, config utils.Config) (*game, error) {
	var screen *tui.View
	if config.Interactive {
		var err error
		if screen, err = tui.Open(); err != nil {
			fmt.Printf("Falling back to text output (%v)\n", err)
			config.Interactive = false
		} else {
			defer screen.Close()
		}
	}

	var v view = newTextView(os.Stdout)
	if screen != nil {
		v = screen
	}
	g, err := initializeGame(config, v)
	if err != nil {
		return nil, err
	}

	if screen != nil {
		if err := g.redraw(); err != nil {
			return g, err
		}
	} else {
		displayGameInfo(g)
		g.player.Play()
	}

	eg, ctx := errgroup.WithContext(ctx)
	runCtx, finish := context.WithCancel(ctx)
	defer finish()

	eg.Go(func() error {
		defer finish()
		return g.player.Run(runCtx, g.onTick)
	})

	if screen != nil {
		eg.Go(func() error {
			defer finish()
			return screen.Listen(runCtx, g.handleEvent)
		})
	}

	return g, eg.Wait()
}
