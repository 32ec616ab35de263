package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/components"
	"meshtweak/internal/engine"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func boxAt(name string, pos mgl32.Vec3) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.Pickable = true
	obj.AddComponent(components.NewBoxCollider(mgl32.Vec3{1, 1, 1}))
	return obj
}

func sphereAt(name string, pos mgl32.Vec3) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.Pickable = true
	obj.AddComponent(components.NewSphereCollider(0.5))
	return obj
}

func TestAABBIntersectRay(t *testing.T) {
	box := NewAABBFromCenter(mgl32.Vec3{}, mgl32.Vec3{2, 2, 2})

	tests := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		hit    bool
		dist   float32
	}{
		{"front", mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1}, true, 4},
		{"miss", mgl32.Vec3{3, 0, -5}, mgl32.Vec3{0, 0, 1}, false, 0},
		{"behind", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1}, false, 0},
		{"inside", mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, true, 1},
		{"too far", mgl32.Vec3{0, 0, -50}, mgl32.Vec3{0, 0, 1}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := box.IntersectRay(tt.origin, tt.dir, 10)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, ok)
			}
			if ok && d != tt.dist {
				t.Errorf("Expected distance %v, got %v", tt.dist, d)
			}
		})
	}
}

func TestAABBContains(t *testing.T) {
	box := NewAABBFromCenter(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2})
	if !box.Contains(mgl32.Vec3{0.5, 1.5, 2}) {
		t.Error("point should be inside")
	}
	if box.Contains(mgl32.Vec3{3, 1, 1}) {
		t.Error("point should be outside")
	}
	if !box.Intersects(NewAABBFromCenter(mgl32.Vec3{2.5, 1, 1}, mgl32.Vec3{1, 1, 1})) {
		t.Error("touching boxes should intersect")
	}
}

func TestRaycastPicksClosest(t *testing.T) {
	near1 := boxAt("Near", mgl32.Vec3{0, 0, -2})
	far := sphereAt("Far", mgl32.Vec3{0, 0, -6})
	objects := []*engine.GameObject{far, near1}

	hit, ok := Raycast(objects, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.GameObject != near1 {
		t.Errorf("Expected Near, got %s", hit.GameObject.Name)
	}
	if hit.Distance != 1.5 {
		t.Errorf("Expected distance 1.5, got %v", hit.Distance)
	}
	if !near(hit.Normal, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}
}

func TestRaycastSphere(t *testing.T) {
	s := sphereAt("IcoSphere", mgl32.Vec3{-2, 0, 0})

	hit, ok := Raycast([]*engine.GameObject{s}, mgl32.Vec3{-2, 0, 5}, mgl32.Vec3{0, 0, -2}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if !near(hit.Point, mgl32.Vec3{-2, 0, 0.5}) {
		t.Errorf("Expected point on the near surface, got %v", hit.Point)
	}
	if !near(hit.Normal, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected +Z normal, got %v", hit.Normal)
	}
}

func TestRaycastSkipsUnpickable(t *testing.T) {
	front := boxAt("Front", mgl32.Vec3{0, 0, -2})
	back := boxAt("Back", mgl32.Vec3{0, 0, -5})
	front.Pickable = false

	hit, ok := Raycast([]*engine.GameObject{front, back}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 100)
	if !ok || hit.GameObject != back {
		t.Fatalf("Expected the ray to pass through the unpickable box, got %v", hit.GameObject)
	}

	back.MarkDestroyed()
	if _, ok := Raycast([]*engine.GameObject{front, back}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 100); ok {
		t.Error("destroyed objects should not be hit")
	}
}

func TestRaycastHonorsScaleAndDistance(t *testing.T) {
	obj := boxAt("Plane", mgl32.Vec3{0, 0, -5})
	obj.Transform.Scale = mgl32.Vec3{4, 1, 1}

	if _, ok := Raycast([]*engine.GameObject{obj}, mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{0, 0, -1}, 100); !ok {
		t.Error("widened box should be hit off-center")
	}
	if _, ok := Raycast([]*engine.GameObject{obj}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 3); ok {
		t.Error("hit beyond max distance should be ignored")
	}
	if _, ok := Raycast([]*engine.GameObject{obj}, mgl32.Vec3{}, mgl32.Vec3{}, 100); ok {
		t.Error("zero direction should not hit")
	}
}
