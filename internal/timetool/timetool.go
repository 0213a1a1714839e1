// Package timetool tracks elapsed or remaining time against a swappable
// clock, with pause accounting, independent of rendering or scheduling.
package timetool

// State is the lifecycle phase of a tool.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// tickFunc recomputes a tool's value from the current clock reading and
// reports whether the tool fired.
type tickFunc func(t *TimeTool, now float64) bool

// TimeTool is the shared Start/Pause/Resume/Stop lifecycle. Variants differ
// only in their tick formula, selected at construction. Control calls made in
// the wrong state are silent no-ops.
type TimeTool struct {
	clock Clock
	mode  ClockMode
	tick  tickFunc

	state      State
	startTime  float64
	pauseTotal float64
	lastPause  float64
	value      float64
	initial    float64
}

func newTimeTool(clock Clock, mode ClockMode, initial float64, tick tickFunc) TimeTool {
	return TimeTool{
		clock:   clock,
		mode:    mode,
		tick:    tick,
		initial: initial,
		value:   initial,
	}
}

func (t *TimeTool) State() State { return t.state }

// Value is the elapsed time for a stopwatch or the remaining time for a
// countdown, as of the last Tick while Running.
func (t *TimeTool) Value() float64 { return t.value }

// PauseTotal is the clock time spent paused within the current lifetime.
func (t *TimeTool) PauseTotal() float64 { return t.pauseTotal }

func (t *TimeTool) Mode() ClockMode { return t.mode }

func (t *TimeTool) Start() {
	if t.state != Stopped {
		return
	}
	t.startTime = t.clock.Now(t.mode)
	t.state = Running
}

func (t *TimeTool) Pause() {
	if t.state != Running {
		return
	}
	t.state = Paused
	t.lastPause = t.clock.Now(t.mode)
}

func (t *TimeTool) Resume() {
	if t.state != Paused {
		return
	}
	t.state = Running
	t.pauseTotal += t.clock.Now(t.mode) - t.lastPause
}

// Stop halts the tool without clearing accumulated timings.
func (t *TimeTool) Stop() {
	if t.state == Stopped {
		return
	}
	t.state = Stopped
}

// Reset returns the tool to its initial stopped state.
func (t *TimeTool) Reset() {
	t.state = Stopped
	t.startTime = 0
	t.pauseTotal = 0
	t.lastPause = 0
	t.value = t.initial
}

// Restart is Reset followed by Start.
func (t *TimeTool) Restart() {
	t.Reset()
	t.Start()
}

// Tick recomputes the value against the current clock reading. It returns
// false unless the tool is Running; a countdown additionally returns true
// once its remaining time reaches zero.
func (t *TimeTool) Tick() bool {
	if t.state != Running {
		return false
	}
	return t.tick(t, t.clock.Now(t.mode))
}

// Stopwatch counts up from zero. Tick never fires.
type Stopwatch struct {
	TimeTool
}

func NewStopwatch(clock Clock, mode ClockMode) *Stopwatch {
	sw := &Stopwatch{}
	sw.TimeTool = newTimeTool(clock, mode, 0, func(t *TimeTool, now float64) bool {
		t.value = now - t.startTime - t.pauseTotal
		return false
	})
	return sw
}

// Countdown counts down from a duration. Tick fires once remaining time is
// zero or below; the caller restarts it for periodic behavior.
type Countdown struct {
	TimeTool
	Duration float64
}

func NewCountdown(clock Clock, mode ClockMode, duration float64) *Countdown {
	cd := &Countdown{Duration: duration}
	cd.TimeTool = newTimeTool(clock, mode, duration, func(t *TimeTool, now float64) bool {
		t.value = cd.Duration - (now - t.startTime) + t.pauseTotal
		return t.value <= 0
	})
	return cd
}

// Remaining is Value under its countdown name.
func (c *Countdown) Remaining() float64 { return c.Value() }
