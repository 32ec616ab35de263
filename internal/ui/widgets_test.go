package ui

import (
	"testing"

	"meshtweak/internal/engine"
)

func TestSliderClampsAndNotifies(t *testing.T) {
	s := NewSlider("widthSlider", 0.1, 2.0)
	var got []float32
	s.OnValueChanged.AddListener(func(v float32) { got = append(got, v) })

	if s.Value() != 0.1 {
		t.Errorf("new slider should start at Min, got %v", s.Value())
	}

	tests := []struct {
		in   float32
		want float32
	}{
		{1.5, 1.5},
		{7, 2.0},
		{-3, 0.1},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		if s.Value() != tt.want {
			t.Errorf("SetValue(%v): value = %v, want %v", tt.in, s.Value(), tt.want)
		}
	}

	if len(got) != 3 || got[0] != 1.5 || got[1] != 2.0 || got[2] != 0.1 {
		t.Errorf("unexpected notifications %v", got)
	}
}

func TestSliderNoEventWhenUnchanged(t *testing.T) {
	s := NewSlider("heightSlider", 0, 1)
	calls := 0
	s.OnValueChanged.AddListener(func(float32) { calls++ })

	if !s.SetValue(0.5) {
		t.Error("first SetValue should report a change")
	}
	if s.SetValue(0.5) {
		t.Error("repeated SetValue should report no change")
	}
	s.SetValue(-1) // clamps to 0
	s.SetValue(0)  // already 0
	if calls != 2 {
		t.Errorf("Expected 2 notifications, got %d", calls)
	}
}

func TestPanelToggleAndAnchor(t *testing.T) {
	p := NewPanel("Plane UI", 160, 130)
	if p.Visible {
		t.Error("panels start hidden")
	}
	if !p.Toggle() || !p.Visible {
		t.Error("Toggle should show the panel")
	}
	if p.Toggle() || p.Visible {
		t.Error("second Toggle should hide the panel")
	}

	obj := engine.NewGameObject("Plane")
	p.LinkTo(obj)
	if p.Anchor().UID != obj.UID {
		t.Error("LinkTo should anchor to the object's UID")
	}
	p.LinkTo(nil)
	if p.Anchor().IsValid() {
		t.Error("LinkTo(nil) should unlink")
	}
}

func TestRootKeepsAttachOrder(t *testing.T) {
	var root Root
	a := NewPanel("a", 1, 1)
	b := NewPanel("b", 1, 1)
	root.AddControl(a)
	root.AddControl(b)

	panels := root.Panels()
	if len(panels) != 2 || panels[0] != a || panels[1] != b {
		t.Errorf("unexpected panels %v", panels)
	}
}
