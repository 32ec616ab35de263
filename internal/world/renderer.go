package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/engine"
)

type Renderer struct {
	Background rl.Color
	ShowGrid   bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.RayWhite,
		ShowGrid:   true,
	}
}

// Draw renders every object with a ModelRenderer from camera. The caller
// owns BeginDrawing/EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.ClearBackground(r.Background)
	rl.BeginMode3D(camera)
	if r.ShowGrid {
		rl.DrawGrid(20, 1)
	}
	for _, g := range gameObjects {
		if renderer := engine.GetComponent[*ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
	rl.EndMode3D()
}

// Vec converts an engine vector to raylib.
func Vec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// FromVec converts a raylib vector to the engine's.
func FromVec(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
