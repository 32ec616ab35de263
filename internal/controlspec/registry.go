package controlspec

import (
	"fmt"
	"slices"

	"meshtweak/internal/config"
)

const (
	CategoryBox      = "box"
	CategoryCylinder = "cylinder"
	CategorySphere   = "sphere"

	ParamSubdivisions = "subdivisions"
)

// Registry maps object categories to their ordered descriptor sequences.
// Sequences are validated on registration and immutable afterwards.
type Registry struct {
	specs map[string][]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{specs: make(map[string][]Descriptor)}
}

// Register validates descriptors and stores a copy under category.
func (r *Registry) Register(category string, descriptors ...Descriptor) error {
	scope := fmt.Sprintf("category %q", category)
	if category == "" {
		return Errorf("category \"\"", -1, "empty category name")
	}
	if _, exists := r.specs[category]; exists {
		return Errorf(scope, -1, "already registered")
	}
	if err := ValidateAll(scope, descriptors); err != nil {
		return err
	}
	r.specs[category] = slices.Clone(descriptors)
	return nil
}

// MustRegister is Register for setup code; it panics on error.
func (r *Registry) MustRegister(category string, descriptors ...Descriptor) {
	if err := r.Register(category, descriptors...); err != nil {
		panic(err)
	}
}

// Lookup returns a copy of the descriptors registered for category.
func (r *Registry) Lookup(category string) ([]Descriptor, bool) {
	d, ok := r.specs[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(d), true
}

// Categories returns the registered categories, sorted.
func (r *Registry) Categories() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateAll checks that descriptors is non-empty and that every
// descriptor is valid.
func ValidateAll(scope string, descriptors []Descriptor) error {
	if len(descriptors) == 0 {
		return Errorf(scope, -1, "no descriptors")
	}
	for i, d := range descriptors {
		if err := d.Validate(); err != nil {
			return Errorf(scope, i, "%v", err)
		}
	}
	return nil
}

// Defaults returns the built-in specs for box, cylinder and sphere.
func Defaults() *Registry {
	r := NewRegistry()
	r.MustRegister(CategoryBox,
		Descriptor{Label: "width", Min: 0.1, Max: 2.0, Op: ScaleAxes(AxisX)},
		Descriptor{Label: "height", Min: 0.1, Max: 2.0, Op: ScaleAxes(AxisY)},
		Descriptor{Label: "depth", Min: 0.1, Max: 2.0, Op: ScaleAxes(AxisZ)},
	)
	r.MustRegister(CategoryCylinder,
		Descriptor{Label: "diameter", Min: 0.1, Max: 2.0, Op: ScaleAxes(AxisX | AxisZ)},
		Descriptor{Label: "height", Min: 0.1, Max: 2.0, Op: ScaleAxes(AxisY)},
	)
	r.MustRegister(CategorySphere,
		Descriptor{Label: "diameter", Min: 0.1, Max: 2.0, Op: ScaleAxes(AxisAll)},
		Descriptor{Label: "subdivisions", Min: 1, Max: 10, Op: Rebuild(ParamSubdivisions, true)},
	)
	return r
}

// FromConfig builds a registry from config entries. Categories missing from
// controls fall back to Defaults().
func FromConfig(controls map[string][]config.ControlConfig) (*Registry, error) {
	defaults := Defaults()
	r := NewRegistry()

	categories := make([]string, 0, len(controls))
	for category := range controls {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	for _, category := range categories {
		entries := controls[category]
		scope := fmt.Sprintf("category %q", category)
		descriptors := make([]Descriptor, 0, len(entries))
		for i, e := range entries {
			op, err := parseOp(e)
			if err != nil {
				return nil, Errorf(scope, i, "%v", err)
			}
			descriptors = append(descriptors, Descriptor{Label: e.Label, Min: e.Min, Max: e.Max, Op: op})
		}
		if err := r.Register(category, descriptors...); err != nil {
			return nil, err
		}
	}

	for _, category := range defaults.Categories() {
		if _, ok := r.specs[category]; ok {
			continue
		}
		d, _ := defaults.Lookup(category)
		r.specs[category] = d
	}
	return r, nil
}

func parseOp(e config.ControlConfig) (Op, error) {
	switch e.Op {
	case "scale":
		axes, err := ParseAxes(e.Axes)
		if err != nil {
			return Op{}, err
		}
		return ScaleAxes(axes), nil
	case "rebuild":
		return Rebuild(e.Param, e.Integral), nil
	default:
		return Op{}, fmt.Errorf("unknown op %q", e.Op)
	}
}
