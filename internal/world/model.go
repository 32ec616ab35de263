package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/engine"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
	Pivot mgl32.Vec3

	unloaded bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.unloaded {
		return
	}

	// Build pivot and scale matrices
	scale := g.WorldScale()
	pivotMatrix := rl.MatrixTranslate(m.Pivot.X(), m.Pivot.Y(), m.Pivot.Z())
	scaleMatrix := rl.MatrixScale(scale.X(), scale.Y(), scale.Z())

	// Build rotation matrix from Euler angles
	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X() * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y() * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z() * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	// Build translation matrix
	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X(), pos.Y(), pos.Z())

	// Combine: pivot -> scale -> rotate -> translate
	local := rl.MatrixMultiply(pivotMatrix, scaleMatrix)
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(local, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
	rl.DrawModelWires(m.Model, rl.Vector3Zero(), 1.0, rl.Fade(rl.Black, 0.25))
}

// Unload frees the GPU model. It runs once, when the object is destroyed.
func (m *ModelRenderer) Unload() {
	if m.unloaded {
		return
	}
	rl.UnloadModel(m.Model)
	m.unloaded = true
}
