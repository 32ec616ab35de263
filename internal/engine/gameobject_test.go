package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("Plane")

	if obj.Name != "Plane" {
		t.Errorf("Expected name 'Plane', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}

	if obj.Pickable {
		t.Error("objects should not be pickable until asked")
	}

	if obj.Params == nil {
		t.Error("Params map should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("IcoSphere")
	obj2 := NewGameObject("IcoSphere")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects with the same name should still have unique UIDs")
	}
}

func TestGameObjectParam(t *testing.T) {
	obj := NewGameObject("IcoSphere")

	if v := obj.Param("subdivisions", 4); v != 4 {
		t.Errorf("Expected default 4, got %v", v)
	}

	obj.Params["subdivisions"] = 7
	if v := obj.Param("subdivisions", 4); v != 7 {
		t.Errorf("Expected 7, got %v", v)
	}
}

type unloadCounter struct {
	BaseComponent
	unloads int
	updates int
}

func (u *unloadCounter) Unload()          { u.unloads++ }
func (u *unloadCounter) Update(_ float32) { u.updates++ }

func TestGameObjectMarkDestroyed(t *testing.T) {
	obj := NewGameObject("IcoSphere")
	comp := &unloadCounter{}
	obj.AddComponent(comp)

	obj.MarkDestroyed()
	obj.MarkDestroyed()

	if !obj.Destroyed() {
		t.Error("Destroyed() should be true")
	}
	if comp.unloads != 1 {
		t.Errorf("Expected 1 unload, got %d", comp.unloads)
	}

	obj.Update(0.016)
	if comp.updates != 0 {
		t.Error("destroyed objects should not update")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Pivot")
	child := NewGameObject("IcoSphere")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}

	other := NewGameObject("OtherPivot")
	other.AddChild(child)
	if len(parent.Children) != 0 {
		t.Error("reparenting should detach from the old parent")
	}
	if child.Parent != other {
		t.Error("child should follow the new parent")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Pivot")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.RemoveChild(child1)

	if len(parent.Children) != 1 || parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectWorldPosition(t *testing.T) {
	pivot := NewGameObject("Pivot")
	pivot.Transform.Position = mgl32.Vec3{0, 10, 0}

	sphere := NewGameObject("IcoSphere")
	sphere.Transform.Position = mgl32.Vec3{-2, 0, 0}
	pivot.AddChild(sphere)

	got := sphere.WorldPosition()
	if !near(got, mgl32.Vec3{-2, 10, 0}) {
		t.Errorf("Expected (-2, 10, 0), got %v", got)
	}

	pivot.Transform.Rotation = mgl32.Vec3{0, 180, 0}
	got = sphere.WorldPosition()
	if !near(got, mgl32.Vec3{2, 10, 0}) {
		t.Errorf("Expected (2, 10, 0) after 180 deg yaw, got %v", got)
	}
}

func TestGameObjectWorldScale(t *testing.T) {
	parent := NewGameObject("Pivot")
	parent.Transform.Scale = mgl32.Vec3{2, 2, 2}
	child := NewGameObject("Box")
	child.Transform.Scale = mgl32.Vec3{1.5, 1, 0.5}
	parent.AddChild(child)

	if got := child.WorldScale(); !near(got, mgl32.Vec3{3, 2, 1}) {
		t.Errorf("Expected (3, 2, 1), got %v", got)
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if found := GetComponent[*BaseComponent](obj); found != comp {
		t.Error("GetComponent failed to find component")
	}
	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}
	if found := GetComponent[*unloadCounter](obj); found != nil {
		t.Error("GetComponent should return nil for a missing type")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	obj.Start() // Should not panic or cause issues
}
