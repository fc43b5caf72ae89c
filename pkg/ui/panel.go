package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything a Panel can lay out vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetPos(x, y float64)
}

// entry is one row of the panel: either a section header or a widget with
// its label.
type entry struct {
	section string
	label   string
	widget  Widget
}

// Panel stacks labelled widgets in a scrollable column.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string

	entries      []entry
	scrollOffset float64
}

// NewPanel creates an empty panel.
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{X: x, Y: y, Width: width, Height: height, Title: title}
}

// AddSection inserts a section header before the widgets that follow.
func (p *Panel) AddSection(title string) {
	p.entries = append(p.entries, entry{section: title})
}

// AddSlider appends a labelled slider and returns it for value reads.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-70, label, min, max, value)
	p.entries = append(p.entries, entry{label: label, widget: s})
	return s
}

// AddCheckbox appends a checkbox and returns it for value reads.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.entries = append(p.entries, entry{widget: c})
	return c
}

// AddButton appends a button with a click callback.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.entries = append(p.entries, entry{widget: b})
	return b
}

// Update handles scrolling and forwards input to every widget.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 && p.cursorInside() {
		p.scrollOffset -= dy * 20

		maxScroll := p.contentHeight() - p.Height + 30
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.scrollOffset < 0 {
			p.scrollOffset = 0
		}
		if p.scrollOffset > maxScroll {
			p.scrollOffset = maxScroll
		}
	}

	p.layout()
	for _, e := range p.entries {
		if e.widget != nil {
			e.widget.Update()
		}
	}
}

// Draw renders the panel background and its widget column.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		color.RGBA{R: 40, G: 40, B: 45, A: 230}, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, color.RGBA{R: 100, G: 100, B: 110, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	p.layout()
	y := p.Y + 28 - p.scrollOffset
	for _, e := range p.entries {
		visible := y >= p.Y-30 && y <= p.Y+p.Height

		if e.section != "" {
			if visible {
				vector.FillRect(screen,
					float32(p.X+5), float32(y),
					float32(p.Width-10), 18,
					color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
				ebitenutil.DebugPrintAt(screen, e.section, int(p.X+10), int(y+2))
			}
			y += 24
			continue
		}

		if visible {
			if e.label != "" {
				ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(y))
			}
			e.widget.Draw(screen)
		}
		y += e.widget.Height()
	}
}

// layout repositions widgets for the current scroll offset. Labels sit above
// sliders, so those widgets are pushed down by the label height.
func (p *Panel) layout() {
	y := p.Y + 28 - p.scrollOffset
	for _, e := range p.entries {
		if e.section != "" {
			y += 24
			continue
		}
		offset := 0.0
		if e.label != "" {
			offset = 16
		}
		e.widget.SetPos(p.X+10, y+offset)
		y += e.widget.Height()
	}
}

func (p *Panel) contentHeight() float64 {
	h := 28.0
	for _, e := range p.entries {
		if e.section != "" {
			h += 24
			continue
		}
		h += e.widget.Height()
	}
	return h
}

func (p *Panel) cursorInside() bool {
	mx, my := ebiten.CursorPosition()
	return float64(mx) >= p.X && float64(mx) <= p.X+p.Width &&
		float64(my) >= p.Y && float64(my) <= p.Y+p.Height
}
