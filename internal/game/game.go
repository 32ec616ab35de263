// Package game runs the interactive scene: window, orbit camera, the pick
// loop and the control panel overlay.
package game

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/camera"
	"meshtweak/internal/config"
	"meshtweak/internal/controller"
	"meshtweak/internal/controlspec"
	"meshtweak/internal/engine"
	"meshtweak/internal/overlay"
	"meshtweak/internal/panel"
	"meshtweak/internal/physics"
	"meshtweak/internal/ui"
	"meshtweak/internal/world"
)

type Game struct {
	Config     config.Config
	World      *world.World
	Camera     *camera.OrbitCamera
	Controller *controller.Controller

	// Pick fires on every scene click with the hit object, or nil.
	Pick engine.EventWithArg[*engine.GameObject]

	renderer *world.Renderer
	overlay  *overlay.Renderer
	registry *controlspec.Registry
}

func New(cfg config.Config) (*Game, error) {
	registry, err := controlspec.FromConfig(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("control specs: %w", err)
	}

	w := world.New()
	style := panel.Style{
		Width:     cfg.Panel.Width,
		RowHeight: cfg.Panel.RowHeight,
		Margin:    cfg.Panel.Margin,
		Background: ui.Color{
			R: cfg.Panel.Background[0],
			G: cfg.Panel.Background[1],
			B: cfg.Panel.Background[2],
			A: uint8(cfg.Panel.Alpha * 255),
		},
	}

	g := &Game{
		Config:     cfg,
		World:      w,
		Camera:     camera.New(mgl32.Vec3(cfg.Camera.Target), cfg.Camera.Alpha, cfg.Camera.Beta, cfg.Camera.Radius),
		Controller: controller.New(w, panel.NewSynthesizer(style)),
		renderer:   world.NewRenderer(),
		overlay:    overlay.NewRenderer(w.Scene),
		registry:   registry,
	}
	g.Controller.Attach(&g.Pick)
	return g, nil
}

// Run opens the window and blocks until it is closed. Scene setup needs the
// GL context, so setup errors are returned from here.
func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	overlay.InitStyle()

	objects, err := g.World.Populate(g.Config)
	if err != nil {
		return fmt.Errorf("populate scene: %w", err)
	}
	defer g.World.Unload()

	if err := g.Controller.RegisterAll(g.registry, objects); err != nil {
		return fmt.Errorf("bind panels: %w", err)
	}
	log.Printf("game: %d panels ready", len(g.Controller.Root().Panels()))

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	// Right drag orbits, the wheel zooms
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		g.Camera.Rotate(d.X, d.Y)
	}
	if scroll := rl.GetMouseWheelMove(); scroll != 0 {
		g.Camera.Zoom(scroll)
	}

	// Left-click: skip 3D interaction if mouse is over a panel
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !g.overlay.MouseOverPanel(g.Controller.Root()) {
		g.pick()
	}

	g.World.Update(deltaTime)
}

func (g *Game) pick() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.raylibCamera())
	hit, ok := physics.Raycast(g.World.Scene.GameObjects, world.FromVec(ray.Position), world.FromVec(ray.Direction), g.Config.PickDistance)
	if !ok {
		g.Pick.Invoke(nil)
		return
	}
	g.Pick.Invoke(hit.GameObject)
}

func (g *Game) Draw() {
	cam := g.raylibCamera()

	rl.BeginDrawing()
	g.renderer.Draw(cam, g.World.Scene.GameObjects)
	g.overlay.Draw(g.Controller.Root(), cam)
	rl.DrawText("click an object to edit it, right drag to orbit", 10, 10, 16, rl.DarkGray)
	rl.DrawFPS(10, int32(rl.GetScreenHeight())-24)
	rl.EndDrawing()
}

func (g *Game) raylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   world.Vec(g.Camera.Position()),
		Target:     world.Vec(g.Camera.Target),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       g.Camera.Fovy,
		Projection: rl.CameraPerspective,
	}
}
