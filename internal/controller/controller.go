// Package controller binds objects to their control panels: it toggles a
// panel when its object is picked and applies slider changes to the object
// that is live at the time of the event, replacing it when a parameter is
// structural.
package controller

import (
	"fmt"
	"log"
	"slices"

	"meshtweak/internal/controlspec"
	"meshtweak/internal/engine"
	"meshtweak/internal/panel"
	"meshtweak/internal/ui"
)

type binding struct {
	id          string
	panel       *ui.Panel
	live        *engine.GameObject
	descriptors []controlspec.Descriptor
	rebuilds    int
}

type Controller struct {
	facility engine.SceneFacility
	synth    *panel.Synthesizer
	logger   *log.Logger

	root     ui.Root
	bindings map[string]*binding
	byUID    map[uint64]string // live handle UID -> object id
}

type Option func(*Controller)

// WithLogger sets the logger used for registration and rebuild messages.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func New(facility engine.SceneFacility, synth *panel.Synthesizer, opts ...Option) *Controller {
	c := &Controller{
		facility: facility,
		synth:    synth,
		logger:   log.Default(),
		bindings: make(map[string]*binding),
		byUID:    make(map[uint64]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterObject synthesizes a panel for handle, attaches it to the root
// and anchors it to handle. id becomes the object's stable name.
func (c *Controller) RegisterObject(id string, handle *engine.GameObject, descriptors []controlspec.Descriptor) (*ui.Panel, error) {
	scope := fmt.Sprintf("object %q", id)
	if id == "" {
		return nil, controlspec.Errorf(`object ""`, -1, "empty object id")
	}
	if _, exists := c.bindings[id]; exists {
		return nil, controlspec.Errorf(scope, -1, "already registered")
	}
	if handle == nil {
		return nil, controlspec.Errorf(scope, -1, "nil handle")
	}
	if other, bound := c.byUID[handle.UID]; bound {
		return nil, controlspec.Errorf(scope, -1, "handle already bound to %q", other)
	}
	switch handle.Name {
	case "":
		handle.Name = id
	case id:
	default:
		return nil, controlspec.Errorf(scope, -1, "handle is named %q", handle.Name)
	}

	p, err := c.synth.Synthesize(handle, descriptors, c)
	if err != nil {
		return nil, err
	}

	c.root.AddControl(p)
	p.LinkTo(handle)
	c.bindings[id] = &binding{
		id:          id,
		panel:       p,
		live:        handle,
		descriptors: slices.Clone(descriptors),
	}
	c.byUID[handle.UID] = id

	c.logger.Printf("overlay: registered %s (%d parameters)", id, len(descriptors))
	return p, nil
}

// RegisterAll binds every object whose category has a control spec in reg,
// in order. Objects of other categories are left unbound.
func (c *Controller) RegisterAll(reg *controlspec.Registry, objects []*engine.GameObject) error {
	for _, obj := range objects {
		descriptors, ok := reg.Lookup(obj.Category)
		if !ok {
			c.logger.Printf("overlay: no controls for %s (%s)", obj.Name, obj.Category)
			continue
		}
		if _, err := c.RegisterObject(obj.Name, obj, descriptors); err != nil {
			return err
		}
	}
	return nil
}

// OnPick toggles the panel bound to id. Other panels are left alone, so
// several panels can be open at once. Unknown or empty ids are ignored.
func (c *Controller) OnPick(id string) {
	b, ok := c.bindings[id]
	if !ok {
		return
	}
	b.panel.Toggle()
}

// OnPickObject is the pick-event subscriber. Only an object that is the
// current live handle of a binding toggles a panel; nil means empty space.
func (c *Controller) OnPickObject(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	id, ok := c.byUID[obj.UID]
	if !ok {
		return
	}
	c.OnPick(id)
}

// Attach subscribes the controller to a pointer-down pick event.
func (c *Controller) Attach(pick *engine.EventWithArg[*engine.GameObject]) {
	pick.AddListener(c.OnPickObject)
}

// ApplyParameter applies value to descriptor index of object id, resolving
// the live handle now. A structural parameter replaces the object; see
// replace for what carries over.
func (c *Controller) ApplyParameter(id string, index int, value float32) error {
	b, ok := c.bindings[id]
	if !ok {
		return controlspec.Errorf(fmt.Sprintf("object %q", id), -1, "not registered")
	}
	if index < 0 || index >= len(b.descriptors) {
		return controlspec.Errorf(fmt.Sprintf("object %q", id), index, "no such descriptor")
	}
	live := b.live
	if live.Destroyed() {
		return &StaleBindingError{ID: id, UID: live.UID}
	}

	d := b.descriptors[index]
	res, err := d.Apply(live, value, c.facility.Spawn)
	if err != nil {
		return fmt.Errorf("apply %s to %s: %w", d.Label, id, err)
	}
	if res.Kind == controlspec.Replaced {
		c.replace(b, res.Replacement)
	}
	return nil
}

// replace swaps the binding's live handle for next. The old object is
// destroyed; its name, transform, parent, tags and pickability move to next
// and the existing panel is re-anchored. Panel visibility and slider values
// are untouched.
func (c *Controller) replace(b *binding, next *engine.GameObject) {
	old := b.live
	transform := old.Transform
	pickable := old.Pickable
	parent := old.Parent
	tags := slices.Clone(old.Tags)

	if parent != nil {
		parent.RemoveChild(old)
	}
	c.facility.Destroy(old)
	delete(c.byUID, old.UID)

	b.live = next
	c.byUID[next.UID] = b.id

	next.Name = b.id
	next.Transform = transform
	next.Pickable = pickable
	next.Tags = tags
	if parent != nil {
		parent.AddChild(next)
	}

	b.panel.LinkTo(next)
	b.rebuilds++

	c.logger.Printf("overlay: rebuilt %s (uid %d -> %d)", b.id, old.UID, next.UID)
}

// Root is the screen-space root holding every registered panel.
func (c *Controller) Root() *ui.Root {
	return &c.root
}

// Panel returns the panel bound to id, or nil.
func (c *Controller) Panel(id string) *ui.Panel {
	if b, ok := c.bindings[id]; ok {
		return b.panel
	}
	return nil
}

// Handle returns the live handle bound to id, or nil.
func (c *Controller) Handle(id string) *engine.GameObject {
	if b, ok := c.bindings[id]; ok {
		return b.live
	}
	return nil
}

// Rebuilds reports how many times id has been structurally replaced.
func (c *Controller) Rebuilds(id string) int {
	if b, ok := c.bindings[id]; ok {
		return b.rebuilds
	}
	return 0
}

// IDs returns the registered object ids, sorted.
func (c *Controller) IDs() []string {
	ids := make([]string, 0, len(c.bindings))
	for id := range c.bindings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
