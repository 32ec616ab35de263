package world

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/components"
	"meshtweak/internal/config"
	"meshtweak/internal/engine"
)

// World owns the scene and creates and destroys its meshes. It is the
// engine.SceneFacility used by the overlay controller.
type World struct {
	Scene  *engine.Scene
	logger *log.Logger
	colors map[string]rl.Color // by object name, so rebuilt objects keep theirs
}

type Option func(*World)

func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		w.logger = l
	}
}

func New(opts ...Option) *World {
	w := &World{
		Scene:  engine.NewScene("Main"),
		logger: log.Default(),
		colors: make(map[string]rl.Color),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spawn builds a mesh for category and adds a new object holding it to the
// scene. The object starts at the origin and is not pickable.
func (w *World) Spawn(category, name string, params map[string]float32) (*engine.GameObject, error) {
	shape, err := shapeFor(category, params)
	if err != nil {
		return nil, err
	}

	obj := engine.NewGameObject(name)
	obj.Category = category
	for k, v := range params {
		obj.Params[k] = v
	}

	color, ok := w.colors[name]
	if !ok {
		color = rl.LightGray
	}
	renderer := NewModelRenderer(rl.LoadModelFromMesh(shape.mesh()), color)
	renderer.Pivot = shape.pivot
	obj.AddComponent(renderer)
	obj.AddComponent(shape.collider())

	w.Scene.AddGameObject(obj)
	obj.Start()
	return obj, nil
}

// Destroy detaches obj from the scene and releases its model.
func (w *World) Destroy(obj *engine.GameObject) {
	if obj.Parent != nil {
		obj.Parent.RemoveChild(obj)
	}
	w.Scene.RemoveGameObject(obj)
	obj.MarkDestroyed()
}

// Populate spawns every configured object. The bounce target, if any, is
// parented to a pivot node carrying the bouncer.
func (w *World) Populate(cfg config.Config) ([]*engine.GameObject, error) {
	objects := make([]*engine.GameObject, 0, len(cfg.Objects))
	for _, oc := range cfg.Objects {
		if oc.Color != "" {
			color, ok := namedColors[oc.Color]
			if !ok {
				return nil, fmt.Errorf("object %s: unknown color %q", oc.Name, oc.Color)
			}
			w.colors[oc.Name] = color
		}

		obj, err := w.Spawn(oc.Category, oc.Name, oc.Params)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", oc.Name, err)
		}
		obj.Transform.Position = mgl32.Vec3(oc.Position)
		obj.Transform.Rotation = mgl32.Vec3(oc.Rotation)
		obj.Pickable = oc.Pickable

		if cfg.Bounce.Enabled && cfg.Bounce.Target == oc.Name {
			pivot := engine.NewGameObject(oc.Name + " Pivot")
			pivot.AddComponent(components.NewBouncer(cfg.Bounce.Amplitude, cfg.Bounce.Duration))
			w.Scene.AddGameObject(pivot)
			pivot.AddChild(obj)
			pivot.Start()
		}

		objects = append(objects, obj)
	}
	w.logger.Printf("world: %d objects", len(objects))
	return objects, nil
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		g.MarkDestroyed()
	}
}

var namedColors = map[string]rl.Color{
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"Orange":    rl.Orange,
	"Pink":      rl.Pink,
	"Red":       rl.Red,
	"Maroon":    rl.Maroon,
	"Green":     rl.Green,
	"Lime":      rl.Lime,
	"SkyBlue":   rl.SkyBlue,
	"Blue":      rl.Blue,
	"Purple":    rl.Purple,
	"Violet":    rl.Violet,
	"Beige":     rl.Beige,
	"Brown":     rl.Brown,
	"White":     rl.White,
	"Magenta":   rl.Magenta,
}
