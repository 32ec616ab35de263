package world

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/components"
	"meshtweak/internal/controlspec"
	"meshtweak/internal/engine"
)

// Every shape is unit sized and centered on its object, so a scale of 1
// on an axis means a size of 1 along it.
type shape struct {
	mesh     func() rl.Mesh
	collider func() engine.Component
	pivot    mgl32.Vec3 // mesh offset applied before scaling
}

const cylinderSlices = 24

func shapeFor(category string, params map[string]float32) (shape, error) {
	unit := mgl32.Vec3{1, 1, 1}
	switch category {
	case controlspec.CategoryBox:
		return shape{
			mesh:     func() rl.Mesh { return rl.GenMeshCube(1, 1, 1) },
			collider: func() engine.Component { return components.NewBoxCollider(unit) },
		}, nil

	case controlspec.CategoryCylinder:
		// raylib cylinders grow up from their base.
		return shape{
			mesh:     func() rl.Mesh { return rl.GenMeshCylinder(0.5, 1, cylinderSlices) },
			collider: func() engine.Component { return components.NewBoxCollider(unit) },
			pivot:    mgl32.Vec3{0, -0.5, 0},
		}, nil

	case controlspec.CategorySphere:
		rings, slices := Tessellation(params[controlspec.ParamSubdivisions])
		return shape{
			mesh:     func() rl.Mesh { return rl.GenMeshSphere(0.5, rings, slices) },
			collider: func() engine.Component { return components.NewSphereCollider(0.5) },
		}, nil
	}
	return shape{}, fmt.Errorf("no mesh for category %q", category)
}

// Tessellation maps a subdivision level to sphere rings and slices.
// Levels below 1 are treated as 1.
func Tessellation(subdivisions float32) (rings, slices int) {
	level := int(subdivisions + 0.5)
	if level < 1 {
		level = 1
	}
	return 4 * level, 8 * level
}
