package engine

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in degrees
	Scale    mgl32.Vec3
}

// DefaultTransform is the identity transform: origin, no rotation, unit scale.
func DefaultTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

var uidCounter atomic.Uint64

// GameObject is a renderable, optionally pickable entity in the scene.
//
// UID identifies this instance. Name is the stable identity used by the
// overlay and survives a rebuild of the object, UID does not.
type GameObject struct {
	UID       uint64
	Name      string
	Category  string
	Tags      []string
	Transform Transform
	Active    bool
	Pickable  bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject

	// Params holds structural parameters that cannot change without
	// recreating the object (e.g. "subdivisions").
	Params map[string]float32

	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        uidCounter.Add(1),
		Name:       name,
		Active:     true,
		Transform:  DefaultTransform(),
		Params:     make(map[string]float32),
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Param returns a structural parameter, or def when it was never set.
func (g *GameObject) Param(name string, def float32) float32 {
	if v, ok := g.Params[name]; ok {
		return v
	}
	return def
}

// MarkDestroyed releases component resources and flags the object as dead.
// Scene facilities call it; it is safe to call twice.
func (g *GameObject) MarkDestroyed() {
	if g.destroyed {
		return
	}
	for _, c := range g.components {
		if u, ok := c.(Unloader); ok {
			u.Unload()
		}
	}
	g.destroyed = true
	g.Active = false
}

// Destroyed reports whether the object has been destroyed.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := mgl32.Vec3{
		g.Transform.Position.X() * parentScale.X(),
		g.Transform.Position.Y() * parentScale.Y(),
		g.Transform.Position.Z() * parentScale.Z(),
	}

	// Rotate by parent rotation: X then Y then Z
	rot := RotationMatrix(parentRot)
	return parentPos.Add(rot.Mul3x1(scaled))
}

func (g *GameObject) WorldRotation() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation().Add(g.Transform.Rotation)
}

func (g *GameObject) WorldScale() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return mgl32.Vec3{
		ps.X() * g.Transform.Scale.X(),
		ps.Y() * g.Transform.Scale.Y(),
		ps.Z() * g.Transform.Scale.Z(),
	}
}

// RotationMatrix builds the X·Y·Z rotation for Euler angles in degrees.
func RotationMatrix(deg mgl32.Vec3) mgl32.Mat3 {
	rx := mgl32.Rotate3DX(mgl32.DegToRad(deg.X()))
	ry := mgl32.Rotate3DY(mgl32.DegToRad(deg.Y()))
	rz := mgl32.Rotate3DZ(mgl32.DegToRad(deg.Z()))
	return rx.Mul3(ry).Mul3(rz)
}
