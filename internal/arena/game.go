package arena

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flock-arena/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-arena/pkg/ui"
)

// whiteImage is the 1-pixel source for DrawTriangles; vertex colors do the
// actual tinting.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// boid tints, per role
var (
	tintCommon = [3]float32{0.55, 0.8, 1}
	tintScout1 = [3]float32{1, 0.65, 0.2}
	tintScout2 = [3]float32{0.4, 1, 0.5}
)

// Game hosts the simulation: it owns the tick driver, feeds it the viewport
// bounds, pushes slider values into the live config and renders the flock.
type Game struct {
	cfg     *flock.Config
	stepper *flock.Stepper
	rng     *rand.Rand

	panel *ui.Panel

	// Widgets read back every frame in Update
	widgetVisualRange    *ui.Slider
	widgetProtectedRange *ui.Slider
	widgetCentering      *ui.Slider
	widgetAvoidance      *ui.Slider
	widgetMatching       *ui.Slider
	widgetTurn           *ui.Slider
	widgetMinSpeed       *ui.Slider
	widgetMaxSpeed       *ui.Slider
	widgetScoutBias      *ui.Slider
	widgetShowRanges     *ui.Checkbox
	widgetMarkScouts     *ui.Checkbox

	// Timing instrumentation (rolling averages in ms)
	updateAvg float64
	drawAvg   float64
}

// NewGame spawns the flock from cfg and wires the tuning panel.
func NewGame(cfg *flock.Config) *Game {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	stepper := flock.NewStepper(flock.Spawn(cfg, rng), cfg)

	panel := ui.NewPanel(10, 10, 250, cfg.WorldHeight-20, "Flock tuning")

	panel.AddSection("Perception")
	widgetVisualRange := panel.AddSlider("Visual Range", 10, 150, cfg.VisualRange)
	widgetProtectedRange := panel.AddSlider("Protected Range", 1, 50, cfg.ProtectedRange)

	panel.AddSection("Steering")
	widgetCentering := panel.AddSlider("Centering Factor", 0.0001, 0.01, cfg.CenteringFactor)
	widgetAvoidance := panel.AddSlider("Avoidance Factor", 0.001, 0.3, cfg.AvoidanceFactor)
	widgetMatching := panel.AddSlider("Matching Factor", 0.001, 0.3, cfg.MatchingFactor)
	widgetTurn := panel.AddSlider("Turn Factor", 0.05, 2.0, cfg.TurnFactor)
	widgetScoutBias := panel.AddSlider("Scout Bias", 0.0, 0.1, cfg.ScoutBias)

	panel.AddSection("Speed")
	widgetMinSpeed := panel.AddSlider("Min Speed", 0.5, 8, cfg.MinSpeed)
	widgetMaxSpeed := panel.AddSlider("Max Speed", 1, 12, cfg.MaxSpeed)

	panel.AddSection("Visualization")
	widgetShowRanges := panel.AddCheckbox("Show visual range", false)
	widgetMarkScouts := panel.AddCheckbox("Mark scouts", true)

	g := &Game{
		cfg:                  cfg,
		stepper:              stepper,
		rng:                  rng,
		panel:                panel,
		widgetVisualRange:    widgetVisualRange,
		widgetProtectedRange: widgetProtectedRange,
		widgetCentering:      widgetCentering,
		widgetAvoidance:      widgetAvoidance,
		widgetMatching:       widgetMatching,
		widgetTurn:           widgetTurn,
		widgetMinSpeed:       widgetMinSpeed,
		widgetMaxSpeed:       widgetMaxSpeed,
		widgetScoutBias:      widgetScoutBias,
		widgetShowRanges:     widgetShowRanges,
		widgetMarkScouts:     widgetMarkScouts,
	}

	panel.AddSection("Simulation")
	panel.AddButton("Respawn flock", g.respawn)

	return g
}

// respawn replaces the population between runs; the RNG stream continues, so
// every respawn produces a fresh arrangement.
func (g *Game) respawn() {
	g.stepper.SetFlock(flock.Spawn(g.cfg, g.rng))
}

// Update runs once per frame: panel input, config sync, then exactly one
// simulation tick.
func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		ms := float64(time.Since(start).Microseconds()) / 1000.0
		g.updateAvg = g.updateAvg*0.95 + ms*0.05
	}()

	g.panel.Update()

	// Push the slider values into the live config so the current tick sees
	// them.
	g.cfg.VisualRange = g.widgetVisualRange.Value
	g.cfg.ProtectedRange = g.widgetProtectedRange.Value
	g.cfg.CenteringFactor = g.widgetCentering.Value
	g.cfg.AvoidanceFactor = g.widgetAvoidance.Value
	g.cfg.MatchingFactor = g.widgetMatching.Value
	g.cfg.TurnFactor = g.widgetTurn.Value
	g.cfg.ScoutBias = g.widgetScoutBias.Value
	g.cfg.MinSpeed = g.widgetMinSpeed.Value
	g.cfg.MaxSpeed = g.widgetMaxSpeed.Value

	g.stepper.Step()
	return nil
}

// Draw renders the flock, the tuning panel and the stats line.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		ms := float64(time.Since(start).Microseconds()) / 1000.0
		g.drawAvg = g.drawAvg*0.95 + ms*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	halfW := g.cfg.WorldWidth / 2
	halfH := g.cfg.WorldHeight / 2

	for _, a := range g.stepper.Flock().Agents() {
		// World coordinates are centered on the arena; the screen origin is
		// the top-left corner.
		sx := a.Pos.X + halfW
		sy := a.Pos.Y + halfH

		if g.widgetShowRanges.Value {
			vector.StrokeCircle(screen,
				float32(sx), float32(sy),
				float32(g.cfg.VisualRange),
				1, color.RGBA{R: 60, G: 60, B: 90, A: 120}, true)
		}

		tint := tintCommon
		if g.widgetMarkScouts.Value && a.Role.Kind == flock.RoleScout {
			if a.Role.Group == 1 {
				tint = tintScout1
			} else {
				tint = tintScout2
			}
		}
		drawBoid(screen, sx, sy, a.Vel.X, a.Vel.Y, tint)
	}

	g.panel.Draw(screen)

	state := "stepping"
	if g.stepper.State() == flock.StateIdle {
		state = "idle"
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nState: %s\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		state,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-130, 10)
}

// drawBoid renders one agent as a small triangle pointing along its velocity.
func drawBoid(screen *ebiten.Image, x, y, vx, vy float64, tint [3]float32) {
	angle := math.Atan2(vy, vx)

	tipX := x + math.Cos(angle)*6
	tipY := y + math.Sin(angle)*6
	rightX := x + math.Cos(angle+2.5)*5
	rightY := y + math.Sin(angle+2.5)*5
	leftX := x + math.Cos(angle-2.5)*5
	leftY := y + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1,
			ColorR: tint[0], ColorG: tint[1], ColorB: tint[2], ColorA: 1},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1,
			ColorR: tint[0], ColorG: tint[1], ColorB: tint[2], ColorA: 1},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1,
			ColorR: tint[0], ColorG: tint[1], ColorB: tint[2], ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

// Layout reports the arena size and, as a side effect, hands the bounds to
// the tick driver. Until the first call the driver stays idle.
func (g *Game) Layout(w, h int) (int, int) {
	g.stepper.SetBounds(g.cfg.WorldWidth, g.cfg.WorldHeight)
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
