package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Demo")
	obj := NewGameObject("Plane")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj {
		t.Fatalf("GameObject not added to scene: %v", scene.GameObjects)
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}
	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Demo")
	obj1 := NewGameObject("IcoSphere")
	obj2 := NewGameObject("Cylinder")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj2 {
		t.Fatalf("Wrong GameObject removed: %v", scene.GameObjects)
	}
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
	if obj1.Scene != nil {
		t.Error("Removed GameObject should have nil Scene")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Demo")
	pivot := NewGameObject("Pivot")
	sphere := NewGameObject("IcoSphere")

	scene.AddGameObject(pivot)
	scene.AddGameObject(sphere)
	pivot.AddChild(sphere)

	scene.RemoveGameObject(pivot)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(sphere.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Demo")
	obj := NewGameObject("Cylinder")
	scene.AddGameObject(obj)

	if scene.FindByName("Cylinder") != obj {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Demo")
	box := NewGameObject("Plane")
	sphere := NewGameObject("IcoSphere")
	pivot := NewGameObject("Pivot")

	box.Tags = []string{"editable"}
	sphere.Tags = []string{"editable", "bouncing"}

	scene.AddGameObject(box)
	scene.AddGameObject(sphere)
	scene.AddGameObject(pivot)

	if got := scene.FindByTag("editable"); len(got) != 2 {
		t.Errorf("Expected 2 editable objects, got %d", len(got))
	}
	if got := scene.FindByTag("nonexistent"); len(got) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "ZeroValue"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

type tickCounter struct {
	BaseComponent
	ticks int
}

func (c *tickCounter) Update(_ float32) { c.ticks++ }

func TestSceneUpdate(t *testing.T) {
	scene := NewScene("Demo")
	live := NewGameObject("Live")
	dead := NewGameObject("Dead")
	liveTicks := &tickCounter{}
	deadTicks := &tickCounter{}
	live.AddComponent(liveTicks)
	dead.AddComponent(deadTicks)
	scene.AddGameObject(live)
	scene.AddGameObject(dead)
	dead.MarkDestroyed()

	scene.Update(0.016)
	scene.Update(0.016)

	if liveTicks.ticks != 2 {
		t.Errorf("Expected 2 ticks, got %d", liveTicks.ticks)
	}
	if deadTicks.ticks != 0 {
		t.Errorf("destroyed object ticked %d times", deadTicks.ticks)
	}
}
