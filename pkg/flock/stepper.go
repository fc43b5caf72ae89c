package flock

// Bounds is the arena extent. Positions live in
// [-Width/2, Width/2] x [-Height/2, Height/2].
type Bounds struct {
	Width  float64
	Height float64
}

// State of the tick driver.
type State uint8

const (
	// StateIdle means the arena bounds are not known yet; ticks are skipped
	// without touching any agent.
	StateIdle State = iota
	// StateStepping means every tick runs a full pass over the flock.
	StateStepping
)

// Stepper drives the simulation. Each call to Step runs one synchronous pass:
// snapshot the whole flock, then for every agent in store order evaluate its
// neighborhood against the snapshot, steer, clamp speed and integrate. Only
// the live agents are mutated, never the snapshot, so every agent reacts to
// the same pre-tick frame regardless of iteration order.
//
// The Stepper owns the flock for the duration of a step; callers must not
// mutate agents concurrently with Step.
type Stepper struct {
	flock  *Flock
	cfg    *Config
	bounds Bounds
	state  State

	// snapshot buffer, reused across ticks to avoid per-frame allocation
	snap []AgentState
}

// NewStepper creates a driver for the given flock. It starts Idle until
// SetBounds provides the arena extent.
func NewStepper(f *Flock, cfg *Config) *Stepper {
	return &Stepper{
		flock: f,
		cfg:   cfg,
		snap:  make([]AgentState, 0, f.Len()),
	}
}

// SetBounds supplies the arena extent, normally from the host viewport.
// Non-positive dimensions are ignored and leave the driver Idle.
func (s *Stepper) SetBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.bounds = Bounds{Width: width, Height: height}
}

// State reports whether the driver stepped or idled on its last scheduling
// opportunity.
func (s *Stepper) State() State { return s.state }

// Flock returns the simulated population.
func (s *Stepper) Flock() *Flock { return s.flock }

// SetFlock replaces the population, e.g. on a host-driven respawn between
// runs. Never call it mid-step.
func (s *Stepper) SetFlock(f *Flock) {
	s.flock = f
	s.snap = s.snap[:0]
}

// Step runs one simulation tick. While the arena bounds are unknown it is a
// no-op and reports false; that is the recovery path for a viewport that is
// not ready, not an error.
func (s *Stepper) Step() bool {
	if s.bounds.Width <= 0 || s.bounds.Height <= 0 {
		s.state = StateIdle
		return false
	}
	s.state = StateStepping

	s.snap = s.flock.Snapshot(s.snap)

	for i := 0; i < s.flock.Len(); i++ {
		a := s.flock.At(i)

		sum := evaluate(i, s.snap, s.cfg)
		if sum.count > 0 {
			avgPos, avgVel := sum.averages()
			applyCohesion(a, avgPos, avgVel, s.cfg)
			applyAlignment(a, avgVel, s.cfg)
			applyAvoidance(a, sum.closeOffset, s.cfg)
		}

		turnAtEdges(a, s.bounds, s.cfg)
		applyBias(a, s.cfg)
		clampSpeed(a, s.cfg)
		integrate(a, s.bounds)
	}

	return true
}
