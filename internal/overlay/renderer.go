// Package overlay draws ui panels over the 3D view with raygui and feeds
// slider drags back into the widget model.
package overlay

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"meshtweak/internal/engine"
	"meshtweak/internal/ui"
	"meshtweak/internal/world"
)

type Renderer struct {
	Scene *engine.Scene
}

func NewRenderer(scene *engine.Scene) *Renderer {
	return &Renderer{Scene: scene}
}

// Draw places every visible panel over its anchor and draws it. Must be
// called between BeginDrawing and EndDrawing, after the 3D pass.
func (r *Renderer) Draw(root *ui.Root, cam rl.Camera3D) {
	for _, p := range root.Panels() {
		if !p.Visible {
			p.Unplace()
			continue
		}
		cx, cy, ok := r.anchorOnScreen(p, cam)
		if !ok {
			p.Unplace()
			continue
		}
		r.drawPanel(p, p.Place(cx, cy))
	}
}

// MouseOverPanel reports whether the pointer is over a visible panel, so
// the click belongs to the overlay and not to the scene.
func (r *Renderer) MouseOverPanel(root *ui.Root) bool {
	m := rl.GetMousePosition()
	return root.Hit(m.X, m.Y)
}

func (r *Renderer) anchorOnScreen(p *ui.Panel, cam rl.Camera3D) (float32, float32, bool) {
	anchor := p.Anchor()
	target := anchor.Get(r.Scene)
	if target == nil {
		return 0, 0, false
	}
	pos := world.Vec(target.WorldPosition())

	// Anchors behind the camera project to mirrored screen points.
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	if rl.Vector3DotProduct(forward, rl.Vector3Subtract(pos, cam.Position)) <= 0 {
		return 0, 0, false
	}

	screen := rl.GetWorldToScreen(pos, cam)
	return screen.X, screen.Y, true
}

func (r *Renderer) drawPanel(p *ui.Panel, l ui.Layout) {
	bg := p.Background
	rl.DrawRectangleRec(rect(l.Bounds), rl.NewColor(bg.R, bg.G, bg.B, bg.A))

	for i, row := range p.Rows() {
		rowLayout := l.Rows[i]
		gui.Label(rect(rowLayout.Label), row.Label.Text)

		s := row.Slider
		value := gui.Slider(rect(rowLayout.Slider), "", fmt.Sprintf("%.2f", s.Value()), s.Value(), s.Min, s.Max)
		// SetValue fires the change handler only on an actual change.
		s.SetValue(value)
	}
}

func rect(r ui.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
