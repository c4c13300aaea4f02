package utils

import (
	"time"

	"github.com/sheikhrachel/life-grid/model"
)

// Stats tracks playback performance and population across generations
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	Generation           int
	StartTime            time.Time

	lastFrame time.Time
	samples   int
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastFrame: now}
}

// Record folds one rendered generation into the stats. A snapshot whose
// generation is not ahead of the last one recorded (a reset board, or a
// repeat) only updates the generation counter and the frame clock.
func (s *Stats) Record(snap model.Snapshot, now time.Time) {
	frame := now.Sub(s.lastFrame)
	s.lastFrame = now

	advanced := snap.Generation - s.Generation
	s.Generation = snap.Generation
	if advanced <= 0 {
		return
	}
	if frame > 0 {
		s.GenerationsPerSecond = float64(advanced) / frame.Seconds()
	}

	population := snap.Population()
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.samples == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
	s.samples++
}

// Restart forgets population history after the board is cleared
func (s *Stats) Restart(now time.Time) {
	s.GenerationsPerSecond = 0
	s.AveragePopulation = 0
	s.PeakPopulation = 0
	s.Generation = 0
	s.samples = 0
	s.lastFrame = now
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
