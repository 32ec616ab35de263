package engine

// SceneFacility creates and destroys renderable objects on behalf of the
// overlay. Implementations own the object lifetime; callers only hold
// references between events.
type SceneFacility interface {
	// Spawn creates a started object of the given category. Params carries
	// structural parameters such as "subdivisions".
	Spawn(category, name string, params map[string]float32) (*GameObject, error)
	// Destroy removes the object from the scene and releases its resources.
	Destroy(g *GameObject)
}
