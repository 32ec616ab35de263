// Package ui is a small retained widget model: panels of labelled sliders
// anchored to scene objects. It holds state only; internal/overlay draws it.
package ui

import "meshtweak/internal/engine"

type Color struct {
	R, G, B, A uint8
}

// Label is fixed, non-interactive text.
type Label struct {
	Text   string
	Width  float32
	Height float32
}

func NewLabel(text string) *Label {
	return &Label{Text: text, Width: 120, Height: 20}
}

// Slider holds a continuous value in [Min, Max].
type Slider struct {
	Name   string
	Min    float32
	Max    float32
	Height float32

	// OnValueChanged fires with the new value whenever SetValue changes it.
	OnValueChanged engine.EventWithArg[float32]

	value float32
}

func NewSlider(name string, min, max float32) *Slider {
	return &Slider{Name: name, Min: min, Max: max, Height: 20, value: min}
}

// Value returns the current value; it is always inside [Min, Max].
func (s *Slider) Value() float32 {
	return s.value
}

// SetValue clamps v into range and stores it. Listeners run only when the
// stored value actually changes. Reports whether it changed.
func (s *Slider) SetValue(v float32) bool {
	if v != v || v < s.Min {
		v = s.Min
	} else if v > s.Max {
		v = s.Max
	}
	if v == s.value {
		return false
	}
	s.value = v
	s.OnValueChanged.Invoke(v)
	return true
}

// Row is one labelled slider.
type Row struct {
	Label  *Label
	Slider *Slider
	Height float32
}

// Panel is a screen-space container tracking a 3D anchor object.
type Panel struct {
	Name       string
	Width      float32
	Height     float32
	Background Color
	Visible    bool

	rows   []*Row
	anchor engine.GameObjectRef
	bounds Rect
	placed bool
}

// NewPanel returns an empty, hidden panel.
func NewPanel(name string, width, height float32) *Panel {
	return &Panel{Name: name, Width: width, Height: height}
}

func (p *Panel) AddRow(r *Row) {
	p.rows = append(p.rows, r)
}

// Rows returns the rows in stacking order, top first.
func (p *Panel) Rows() []*Row {
	return p.rows
}

// Toggle flips visibility and returns the new state.
func (p *Panel) Toggle() bool {
	p.Visible = !p.Visible
	return p.Visible
}

// LinkTo anchors the panel to g. Passing nil unlinks it.
func (p *Panel) LinkTo(g *engine.GameObject) {
	p.anchor.Set(g)
}

func (p *Panel) Anchor() engine.GameObjectRef {
	return p.anchor
}

// Root is the screen-space container all panels are attached to.
type Root struct {
	panels []*Panel
}

func (r *Root) AddControl(p *Panel) {
	r.panels = append(r.panels, p)
}

// Panels returns the attached panels in attach order.
func (r *Root) Panels() []*Panel {
	return r.panels
}
