package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-arena/pkg/geometry"
)

// neighborSummary is what one agent sees during a single tick. It is rebuilt
// from scratch for every agent on every tick, never carried across ticks.
//
// posSum and velSum are running sums over agents in the cohesion band and are
// divided by count once the scan is done. closeOffset is the accumulated
// displacement away from agents inside the protected range; it stays a raw
// sum and is never divided.
type neighborSummary struct {
	posSum      geometry.Vector2D
	velSum      geometry.Vector2D
	closeOffset geometry.Vector2D
	count       int
}

// evaluate scans the full snapshot and builds the neighborhood summary for
// the agent at index self. The agent's own record is skipped, so it never
// counts itself even at distance zero.
func evaluate(self int, snap []AgentState, cfg *Config) neighborSummary {
	var sum neighborSummary
	me := &snap[self]

	for i := range snap {
		if i == self {
			continue
		}
		other := &snap[i]

		dx := me.Pos.X - other.Pos.X
		dy := me.Pos.Y - other.Pos.Y

		// Axis-aligned box prefilter, deliberately not a circular test. It
		// gates both the protected and the cohesion branch: an agent past
		// visual range on a single axis is invisible, full stop.
		if math.Abs(dx) >= cfg.VisualRange || math.Abs(dy) >= cfg.VisualRange {
			continue
		}

		sqDist := dx*dx + dy*dy

		if sqDist < cfg.ProtectedRange*cfg.ProtectedRange {
			// Too close: separation signal, no count increment.
			sum.closeOffset.X += dx
			sum.closeOffset.Y += dy
		} else if sqDist < cfg.VisualRange*cfg.VisualRange {
			// Cohesion/alignment band.
			sum.posSum = sum.posSum.Add(other.Pos)
			sum.velSum = sum.velSum.Add(other.Vel)
			sum.count++
		}
	}

	return sum
}

// averages turns the running sums into neighborhood averages.
// Callers must check count > 0 first; the zero-neighbor case is handled by
// skipping the averaged rules entirely, not by letting NaN propagate.
func (s *neighborSummary) averages() (avgPos, avgVel geometry.Vector2D) {
	inv := 1 / float64(s.count)
	return s.posSum.Mul(inv), s.velSum.Mul(inv)
}
