package player

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-grid/model"
)

const (
	// DefaultInterval is the time between generations at 1x speed.
	DefaultInterval = 300 * time.Millisecond

	MinSpeed     = 0.5
	MaxSpeed     = 5.0
	DefaultSpeed = 1.0
)

// ErrStop may be returned from a tick callback to end Run without an error.
var ErrStop = errors.New("stop playback")

// Config controls playback timing
type Config struct {
	Interval time.Duration
	Speed    float64
}

// DefaultConfig returns the 300ms, 1x playback settings
func DefaultConfig() Config {
	return Config{Interval: DefaultInterval, Speed: DefaultSpeed}
}

// Player drives a grid on a timer. Every method may be called from any
// goroutine; the grid is only touched while holding the player's lock.
type Player struct {
	mu      sync.Mutex
	grid    *model.Grid
	base    time.Duration
	speed   float64
	playing bool
}

// New returns a paused Player for grid
func New(grid *model.Grid, cfg Config) *Player {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	p := &Player{grid: grid, base: cfg.Interval}
	p.SetSpeed(cfg.Speed)
	return p
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed]; zero selects DefaultSpeed.
func ClampSpeed(speed float64) float64 {
	if speed == 0 {
		return DefaultSpeed
	}
	return min(max(speed, MinSpeed), MaxSpeed)
}

// SetSpeed changes the playback multiplier, takes effect on the next tick
func (p *Player) SetSpeed(speed float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.speed = ClampSpeed(speed)
}

// Speed returns the current playback multiplier
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// Interval returns the base interval scaled by the current speed
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval()
}

func (p *Player) interval() time.Duration {
	return time.Duration(float64(p.base) / p.speed)
}

// Play starts advancing on each tick
func (p *Player) Play() {
	p.mu.Lock()
	p.playing = true
	p.mu.Unlock()
}

// Pause stops advancing; Run keeps waiting for Play or cancellation
func (p *Player) Pause() {
	p.mu.Lock()
	p.playing = false
	p.mu.Unlock()
}

// Playing reports whether ticks currently advance the grid
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Toggle flips a cell, ignoring coordinates outside the grid
func (p *Player) Toggle(row, col int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grid.ToggleCell(row, col)
}

// Step advances exactly one generation and returns the result
func (p *Player) Step() model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grid.AdvanceGeneration()
	return p.grid.Snapshot()
}

// Restart pauses playback and clears the grid
func (p *Player) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.grid.ResetGrid()
}

// Snapshot returns a copy of the current generation
func (p *Player) Snapshot() model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.grid.Snapshot()
}

// tick advances the grid if playing and reports the interval to wait next
func (p *Player) tick() (model.Snapshot, bool, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return model.Snapshot{}, false, p.interval()
	}
	p.grid.AdvanceGeneration()
	return p.grid.Snapshot(), true, p.interval()
}

// Run advances the grid once per interval while playing and hands each new
// generation to onTick. It returns nil when ctx is done or onTick returns
// ErrStop; any other callback error is returned wrapped.
func (p *Player) Run(ctx context.Context, onTick func(model.Snapshot) error) error {
	timer := time.NewTimer(p.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		snap, advanced, next := p.tick()
		if advanced && onTick != nil {
			if err := onTick(snap); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return errors.Wrapf(err, "[Run] tick callback failed at generation %d", snap.Generation)
			}
		}
		timer.Reset(next)
	}
}
