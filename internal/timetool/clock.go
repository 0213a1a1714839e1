package timetool

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ClockMode selects which time source a tool samples.
type ClockMode int

const (
	ClockScaled    ClockMode = iota // frame time multiplied by TimeScale
	ClockUnscaled                   // frame time, ignoring TimeScale
	ClockRealtime                   // wall clock since window init
	ClockFixedStep                  // fixed-step accumulator
)

func (m ClockMode) String() string {
	switch m {
	case ClockUnscaled:
		return "Unscaled"
	case ClockRealtime:
		return "Realtime"
	case ClockFixedStep:
		return "FixedStep"
	default:
		return "Scaled"
	}
}

// Clock provides the current time in seconds for a mode. Readings are
// monotonic per mode.
type Clock interface {
	Now(mode ClockMode) float64
}

// GameClock is the frame-driven clock. The owning loop calls Advance once per
// frame with the raw delta, and AdvanceFixed once per fixed-update step.
// Realtime bypasses the accumulators and samples the window clock directly.
type GameClock struct {
	TimeScale  float64
	FixedDelta float64

	scaled     float64
	unscaled   float64
	fixedSteps uint64
}

func NewGameClock() *GameClock {
	return &GameClock{
		TimeScale:  1,
		FixedDelta: 1.0 / 50,
	}
}

// Advance accumulates one frame of raw delta time.
func (c *GameClock) Advance(dt float64) {
	if dt < 0 {
		return
	}
	c.unscaled += dt
	c.scaled += dt * c.TimeScale
}

// AdvanceFixed records completed fixed-update steps.
func (c *GameClock) AdvanceFixed(steps int) {
	if steps > 0 {
		c.fixedSteps += uint64(steps)
	}
}

func (c *GameClock) Now(mode ClockMode) float64 {
	switch mode {
	case ClockUnscaled:
		return c.unscaled
	case ClockRealtime:
		return rl.GetTime()
	case ClockFixedStep:
		return float64(c.fixedSteps) * c.FixedDelta
	default:
		return c.scaled
	}
}

// ManualClock is a deterministic Clock for tests and tools: every mode reads
// from an explicitly set value.
type ManualClock struct {
	times [4]float64
}

func (c *ManualClock) Set(mode ClockMode, t float64) {
	c.times[mode] = t
}

// Step advances a single mode by dt seconds.
func (c *ManualClock) Step(mode ClockMode, dt float64) {
	c.times[mode] += dt
}

func (c *ManualClock) Now(mode ClockMode) float64 {
	return c.times[mode]
}
