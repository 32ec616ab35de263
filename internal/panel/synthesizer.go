// Package panel builds a control panel for an object from its descriptors.
package panel

import (
	"fmt"

	"meshtweak/internal/controlspec"
	"meshtweak/internal/engine"
	"meshtweak/internal/ui"
)

// Sink receives slider changes. The object is named by its stable id so
// that the receiver resolves whatever handle is live when the event fires.
type Sink interface {
	ApplyParameter(id string, index int, value float32) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(id string, index int, value float32) error

func (f SinkFunc) ApplyParameter(id string, index int, value float32) error {
	return f(id, index, value)
}

// Style is the panel layout shared by every synthesized panel.
type Style struct {
	Width      float32
	RowHeight  float32
	Margin     float32
	Background ui.Color
}

// DefaultStyle is a 160px wide, half transparent black panel with 40px rows.
func DefaultStyle() Style {
	return Style{
		Width:      160,
		RowHeight:  40,
		Margin:     10,
		Background: ui.Color{R: 0, G: 0, B: 0, A: 128},
	}
}

type Synthesizer struct {
	Style Style
}

func NewSynthesizer(style Style) *Synthesizer {
	return &Synthesizer{Style: style}
}

// Height is the panel height for n rows.
func (s *Synthesizer) Height(n int) float32 {
	return s.Style.RowHeight*float32(n) + s.Style.Margin
}

// Synthesize builds a hidden panel with one labelled slider per descriptor,
// in order. Sliders start at the object's current value and report changes
// to sink under obj.Name. The panel is neither attached nor anchored.
func (s *Synthesizer) Synthesize(obj *engine.GameObject, descriptors []controlspec.Descriptor, sink Sink) (*ui.Panel, error) {
	if obj == nil {
		return nil, controlspec.Errorf("panel", -1, "nil object")
	}
	scope := fmt.Sprintf("object %q", obj.Name)
	if obj.Destroyed() {
		return nil, controlspec.Errorf(scope, -1, "object already destroyed")
	}
	if sink == nil {
		return nil, controlspec.Errorf(scope, -1, "nil sink")
	}
	if err := controlspec.ValidateAll(scope, descriptors); err != nil {
		return nil, err
	}

	id := obj.Name
	p := ui.NewPanel(id+" UI", s.Style.Width, s.Height(len(descriptors)))
	p.Background = s.Style.Background

	for i, d := range descriptors {
		label := ui.NewLabel(d.Label + ":")
		slider := ui.NewSlider(d.Label+"Slider", d.Min, d.Max)
		slider.SetValue(d.Current(obj))

		slider.OnValueChanged.AddListener(func(v float32) {
			if err := sink.ApplyParameter(id, i, v); err != nil {
				panic(fmt.Errorf("panel %s: %s: %w", id, d.Label, err))
			}
		})

		p.AddRow(&ui.Row{Label: label, Slider: slider, Height: s.Style.RowHeight})
	}
	return p, nil
}
