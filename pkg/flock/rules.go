package flock

import "github.com/lao-tseu-is-alive/go-flock-arena/pkg/geometry"

// edgeMargin is the distance from an arena edge at which agents start
// turning back inward.
const edgeMargin = 200.0

// applyCohesion pulls the agent toward the center of mass of its visible
// neighbors. The matching term folded in here is intentional: combined with
// applyAlignment it applies velocity matching twice per tick, which is part
// of the tuning, not an accident.
func applyCohesion(a *Agent, avgPos, avgVel geometry.Vector2D, cfg *Config) {
	a.Vel.X += (avgPos.X-a.Pos.X)*cfg.CenteringFactor + (avgVel.X-a.Vel.X)*cfg.MatchingFactor
	a.Vel.Y += (avgPos.Y-a.Pos.Y)*cfg.CenteringFactor + (avgVel.Y-a.Vel.Y)*cfg.MatchingFactor
}

// applyAlignment nudges the agent's velocity toward the neighborhood average.
func applyAlignment(a *Agent, avgVel geometry.Vector2D, cfg *Config) {
	a.Vel.X += (avgVel.X - a.Vel.X) * cfg.MatchingFactor
	a.Vel.Y += (avgVel.Y - a.Vel.Y) * cfg.MatchingFactor
}

// applyAvoidance pushes the agent away from neighbors inside the protected
// range, using the raw accumulated offset.
func applyAvoidance(a *Agent, closeOffset geometry.Vector2D, cfg *Config) {
	a.Vel.X += closeOffset.X * cfg.AvoidanceFactor
	a.Vel.Y += closeOffset.Y * cfg.AvoidanceFactor
}

// turnAtEdges nudges the velocity back toward the arena interior when the
// agent is within edgeMargin of a boundary. The axes are independent; in a
// corner both fire on the same tick.
func turnAtEdges(a *Agent, b Bounds, cfg *Config) {
	halfW := b.Width / 2
	halfH := b.Height / 2

	if a.Pos.X <= -halfW+edgeMargin {
		a.Vel.X += cfg.TurnFactor
	} else if a.Pos.X >= halfW-edgeMargin {
		a.Vel.X -= cfg.TurnFactor
	}

	if a.Pos.Y <= -halfH+edgeMargin {
		a.Vel.Y += cfg.TurnFactor
	} else if a.Pos.Y >= halfH-edgeMargin {
		a.Vel.Y -= cfg.TurnFactor
	}
}

// applyBias blends a constant horizontal drift into scout velocities.
// Group 1 searches to the right, group 2 to the left; common agents are
// untouched.
func applyBias(a *Agent, cfg *Config) {
	switch a.Role {
	case Scout(1):
		a.Vel.X = (1-cfg.ScoutBias)*a.Vel.X + cfg.ScoutBias
	case Scout(2):
		a.Vel.X = (1-cfg.ScoutBias)*a.Vel.X - cfg.ScoutBias
	}
}

// clampSpeed rescales the velocity into [MinSpeed, MaxSpeed], preserving
// heading. A zero velocity has no heading to preserve and is left alone,
// which also keeps the division safe.
func clampSpeed(a *Agent, cfg *Config) {
	speed := a.Vel.Len()
	if speed == 0 {
		return
	}
	if speed < cfg.MinSpeed {
		a.Vel = a.Vel.WithLen(cfg.MinSpeed)
	}
	if speed > cfg.MaxSpeed {
		a.Vel = a.Vel.WithLen(cfg.MaxSpeed)
	}
}

// integrate advances the position by one full velocity unit (the tick rate
// itself defines the simulation speed) and clamps componentwise to the arena
// half-extents. The comparison is asymmetric on purpose: strictly greater
// than the positive bound, less than or equal to the negative one.
func integrate(a *Agent, b Bounds) {
	a.Pos = a.Pos.Add(a.Vel)

	halfW := b.Width / 2
	halfH := b.Height / 2

	if a.Pos.X > halfW {
		a.Pos.X = halfW
	} else if a.Pos.X <= -halfW {
		a.Pos.X = -halfW
	}

	if a.Pos.Y > halfH {
		a.Pos.Y = halfH
	} else if a.Pos.Y <= -halfH {
		a.Pos.Y = -halfH
	}
}
