package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal drag widget for one float64 value.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider at the given position and width.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     14,
	}
}

// Update moves the value when the mouse drags inside the slider area.
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if float64(mx) < s.X || float64(mx) > s.X+s.W ||
		float64(my) < s.Y || float64(my) > s.Y+s.H {
		return
	}

	p := (float64(mx) - s.X) / s.W
	s.Value = s.Min + p*(s.Max-s.Min)

	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Draw renders the track, the filled portion and the current value.
func (s *Slider) Draw(screen *ebiten.Image) {
	// Track
	vector.FillRect(screen,
		float32(s.X), float32(s.Y),
		float32(s.W), float32(s.H),
		color.RGBA{R: 70, G: 70, B: 75, A: 255}, true)

	// Filled portion
	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen,
		float32(s.X), float32(s.Y),
		float32(s.W*ratio), float32(s.H),
		color.RGBA{R: 190, G: 190, B: 200, A: 255}, true)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%.4g", s.Value),
		int(s.X+s.W+6), int(s.Y-1))
}

// Height is the vertical space the widget occupies in a panel.
func (s *Slider) Height() float64 { return s.H + 22 }

// SetPos moves the widget; panels call this while laying out.
func (s *Slider) SetPos(x, y float64) { s.X, s.Y = x, y }
