package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-arena/pkg/geometry"
)

// RoleKind is the tag of the Role variant.
type RoleKind uint8

const (
	// RoleCommon agents simply follow the flock.
	RoleCommon RoleKind = iota
	// RoleScout agents drift away from the flock looking for food.
	// Group 1 tends to search on the right, group 2 on the left.
	RoleScout
)

// Role tags an agent's behavior. The zero value is Common.
// Group carries the scout search group (1 or 2) and is zero for common agents.
type Role struct {
	Kind  RoleKind
	Group uint8
}

// Common is the default role.
func Common() Role { return Role{} }

// Scout returns the scout role for the given search group.
func Scout(group uint8) Role { return Role{Kind: RoleScout, Group: group} }

// Agent is one simulated individual. Position and velocity use arena-relative
// world coordinates, with the origin at the arena center. Velocity is in
// units per tick and doubles as the heading. Role never changes after spawn.
type Agent struct {
	Pos  geometry.Vector2D
	Vel  geometry.Vector2D
	Role Role
}

// AgentState is the read-only copy of an agent used during a tick, so every
// agent reacts to the same pre-tick frame of the flock.
type AgentState struct {
	Pos  geometry.Vector2D
	Vel  geometry.Vector2D
	Role Role
}

// Flock holds the full population. The population is fixed for the lifetime
// of a simulation: there is no add/remove mid-run, and slice order is stable,
// which keeps per-tick iteration deterministic.
type Flock struct {
	agents []*Agent
}

// NewFlock wraps an existing population.
func NewFlock(agents []*Agent) *Flock {
	return &Flock{agents: agents}
}

// Spawn creates a flock of cfg.NumBoids agents with randomized positions
// inside the configured spawn rectangle and zero velocity. Roughly 5% of the
// agents come out as scouts of each group, the rest are common.
func Spawn(cfg *Config, rng *rand.Rand) *Flock {
	agents := make([]*Agent, cfg.NumBoids)
	for i := range agents {
		x := cfg.SpawnMinX + rng.Float64()*(cfg.SpawnMaxX-cfg.SpawnMinX)
		y := cfg.SpawnMinY + rng.Float64()*(cfg.SpawnMaxY-cfg.SpawnMinY)

		role := Common()
		switch roll := rng.IntN(101); {
		case roll >= 95:
			role = Scout(2)
		case roll >= 90:
			role = Scout(1)
		}

		agents[i] = &Agent{
			Pos:  geometry.Vector2D{X: x, Y: y},
			Role: role,
		}
	}
	return &Flock{agents: agents}
}

// Len returns the population size.
func (f *Flock) Len() int { return len(f.agents) }

// At gives mutable access to the agent at index i for the steering and
// integration stage.
func (f *Flock) At(i int) *Agent { return f.agents[i] }

// Agents exposes the population for read-only walks (rendering, tests).
func (f *Flock) Agents() []*Agent { return f.agents }

// Snapshot copies every agent's state into dst, reusing its capacity.
// The returned slice is the fixed frame a whole tick evaluates against.
func (f *Flock) Snapshot(dst []AgentState) []AgentState {
	dst = dst[:0]
	for _, a := range f.agents {
		dst = append(dst, AgentState{Pos: a.Pos, Vel: a.Vel, Role: a.Role})
	}
	return dst
}
