// Package sim provides the paced simulation loop. One step is one
// simulated hour; pacing and pausing live here, world semantics live in
// the step callback.
package sim

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// StepsPerDay groups steps into simulation days for periodic work.
const StepsPerDay = 24

// Engine drives the simulation forward at a wall-clock pace.
type Engine struct {
	Speed    float64       // multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // wall-clock budget per step at speed 1.0

	step    uint64
	running atomic.Bool

	// Callbacks, populated during setup.
	OnStep func(step uint64) // every step (sim-hour)
	OnDay  func(step uint64) // every StepsPerDay steps
}

// NewEngine creates an engine with default pacing: one step per second.
func NewEngine() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Step returns the current step counter.
func (e *Engine) Step() uint64 {
	return e.step
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Run starts the loop and blocks until Stop is called. A non-positive
// Speed pauses the loop without stopping it.
func (e *Engine) Run() {
	e.running.Store(true)
	slog.Info("simulation engine started", "step", e.step, "speed", e.Speed)

	for e.running.Load() {
		if e.Speed <= 0 {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		e.advance()

		// Sleep out the remainder of the step budget, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("simulation engine stopped", "step", e.step)
}

// Stop halts the loop. Safe to call from another goroutine.
func (e *Engine) Stop() {
	e.running.Store(false)
}

func (e *Engine) advance() {
	e.step++

	if e.OnStep != nil {
		e.OnStep(e.step)
	}
	if e.step%StepsPerDay == 0 && e.OnDay != nil {
		e.OnDay(e.step)
	}
}
