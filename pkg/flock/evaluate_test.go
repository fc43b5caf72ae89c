package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-arena/pkg/geometry"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.VisualRange = 50
	cfg.ProtectedRange = 10
	return cfg
}

func TestEvaluate_SelfExclusion(t *testing.T) {
	// Setup: a 5-agent flock, "me" at the origin with a distinctive velocity,
	// four neighbors in the cohesion band moving at (1, 0).
	// ProtectedRange is 0 so that a buggy self-comparison (distance 0) would
	// land in the cohesion branch and corrupt count and velSum.
	cfg := testConfig()
	cfg.ProtectedRange = 0

	snap := []AgentState{
		{Pos: geometry.Vector2D{X: 0, Y: 0}, Vel: geometry.Vector2D{X: 9, Y: 9}},
		{Pos: geometry.Vector2D{X: 20, Y: 0}, Vel: geometry.Vector2D{X: 1, Y: 0}},
		{Pos: geometry.Vector2D{X: -20, Y: 0}, Vel: geometry.Vector2D{X: 1, Y: 0}},
		{Pos: geometry.Vector2D{X: 0, Y: 20}, Vel: geometry.Vector2D{X: 1, Y: 0}},
		{Pos: geometry.Vector2D{X: 0, Y: -20}, Vel: geometry.Vector2D{X: 1, Y: 0}},
	}

	sum := evaluate(0, snap, cfg)

	if sum.count != 4 {
		t.Errorf("Expected count 4 (self excluded), got %d", sum.count)
	}
	if want := (geometry.Vector2D{X: 4, Y: 0}); !sum.velSum.Eq(want) {
		t.Errorf("Expected velSum %v without own velocity, got %v", want, sum.velSum)
	}
	if !sum.posSum.Eq(geometry.Vector2D{}) {
		t.Errorf("Expected symmetric posSum (0,0), got %v", sum.posSum)
	}
}

func TestEvaluate_BoxPrefilter(t *testing.T) {
	// The prefilter is an axis-aligned box, and it gates both branches.
	cfg := testConfig()

	tests := []struct {
		name            string
		other           geometry.Vector2D
		wantCount       int
		wantCloseOffset geometry.Vector2D
	}{
		{"InsideCohesionBand", geometry.Vector2D{X: 40, Y: 0}, 1, geometry.Vector2D{}},
		// Inside the box on both axes but outside the circular visual range:
		// sqrt(45^2+45^2) > 50, so it must not be counted.
		{"InBoxOutsideCircle", geometry.Vector2D{X: 45, Y: 45}, 0, geometry.Vector2D{}},
		// Past visual range on one axis: invisible even for separation.
		{"AxisFar", geometry.Vector2D{X: 60, Y: 0}, 0, geometry.Vector2D{}},
		// Exactly at visual range on an axis: the test is strict less-than.
		{"AxisAtRange", geometry.Vector2D{X: 50, Y: 0}, 0, geometry.Vector2D{}},
		// Inside protected range: separation only, no count.
		{"InsideProtected", geometry.Vector2D{X: 5, Y: 0}, 0, geometry.Vector2D{X: -5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := []AgentState{
				{Pos: geometry.Vector2D{}},
				{Pos: tt.other},
			}
			sum := evaluate(0, snap, cfg)

			if sum.count != tt.wantCount {
				t.Errorf("count = %d; want %d", sum.count, tt.wantCount)
			}
			if !sum.closeOffset.Eq(tt.wantCloseOffset) {
				t.Errorf("closeOffset = %v; want %v", sum.closeOffset, tt.wantCloseOffset)
			}
		})
	}
}

func TestEvaluate_IsolatedAndAdjacentPair(t *testing.T) {
	// Setup: three agents. One far beyond visual range, the other two
	// adjacent within protected range of each other.
	cfg := testConfig()

	snap := []AgentState{
		{Pos: geometry.Vector2D{X: 1000, Y: 1000}}, // isolated
		{Pos: geometry.Vector2D{X: 0, Y: 0}},       // pair member a
		{Pos: geometry.Vector2D{X: 4, Y: 0}},       // pair member b
	}

	// Isolated agent: nothing in range at all.
	isolated := evaluate(0, snap, cfg)
	if isolated.count != 0 {
		t.Errorf("Isolated agent count = %d; want 0", isolated.count)
	}
	if !isolated.closeOffset.Eq(geometry.Vector2D{}) {
		t.Errorf("Isolated agent closeOffset = %v; want zero", isolated.closeOffset)
	}

	// Each pair member sees the other inside the protected range only:
	// nonzero closeOffset, zero count.
	a := evaluate(1, snap, cfg)
	if a.count != 0 {
		t.Errorf("Pair member a count = %d; want 0", a.count)
	}
	if want := (geometry.Vector2D{X: -4, Y: 0}); !a.closeOffset.Eq(want) {
		t.Errorf("Pair member a closeOffset = %v; want %v", a.closeOffset, want)
	}

	b := evaluate(2, snap, cfg)
	if b.count != 0 {
		t.Errorf("Pair member b count = %d; want 0", b.count)
	}
	if want := (geometry.Vector2D{X: 4, Y: 0}); !b.closeOffset.Eq(want) {
		t.Errorf("Pair member b closeOffset = %v; want %v", b.closeOffset, want)
	}
}

func TestNeighborSummary_Averages(t *testing.T) {
	sum := neighborSummary{
		posSum: geometry.Vector2D{X: 30, Y: 60},
		velSum: geometry.Vector2D{X: 3, Y: -6},
		count:  3,
	}

	avgPos, avgVel := sum.averages()

	if want := (geometry.Vector2D{X: 10, Y: 20}); !avgPos.Eq(want) {
		t.Errorf("avgPos = %v; want %v", avgPos, want)
	}
	if want := (geometry.Vector2D{X: 1, Y: -2}); !avgVel.Eq(want) {
		t.Errorf("avgVel = %v; want %v", avgVel, want)
	}
}
