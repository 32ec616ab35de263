// Package controlspec declares which parameters of an object are editable
// and how a new slider value is applied to the object.
package controlspec

import (
	"fmt"
	"math"
	"strings"

	"meshtweak/internal/engine"
)

// Axis is a bitmask of scale axes.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ

	AxisAll = AxisX | AxisY | AxisZ
)

// ParseAxes parses a string such as "x", "xz" or "xyz".
func ParseAxes(s string) (Axis, error) {
	var a Axis
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'x':
			a |= AxisX
		case 'y':
			a |= AxisY
		case 'z':
			a |= AxisZ
		default:
			return 0, fmt.Errorf("unknown axis %q in %q", r, s)
		}
	}
	if a == 0 {
		return 0, fmt.Errorf("no axes in %q", s)
	}
	return a, nil
}

func (a Axis) String() string {
	var b strings.Builder
	if a&AxisX != 0 {
		b.WriteByte('x')
	}
	if a&AxisY != 0 {
		b.WriteByte('y')
	}
	if a&AxisZ != 0 {
		b.WriteByte('z')
	}
	return b.String()
}

type OpKind int

const (
	opInvalid OpKind = iota
	// OpScale sets the object's scale on a set of axes, in place.
	OpScale
	// OpRebuild recreates the object with a new structural parameter.
	OpRebuild
)

func (k OpKind) String() string {
	switch k {
	case OpScale:
		return "scale"
	case OpRebuild:
		return "rebuild"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is the operation a descriptor performs with a new value.
type Op struct {
	Kind     OpKind
	Axes     Axis   // OpScale
	Param    string // OpRebuild
	Integral bool   // OpRebuild: round the value to the nearest integer
}

// ScaleAxes returns an in-place scale operation on axes.
func ScaleAxes(axes Axis) Op {
	return Op{Kind: OpScale, Axes: axes}
}

// Rebuild returns a structural operation that recreates the object with
// param set to the new value.
func Rebuild(param string, integral bool) Op {
	return Op{Kind: OpRebuild, Param: param, Integral: integral}
}

// Descriptor describes one editable scalar of an object.
type Descriptor struct {
	Label string
	Min   float32
	Max   float32
	Op    Op
}

// AppliedKind says what applying a value did to the object.
type AppliedKind int

const (
	Mutated AppliedKind = iota
	Replaced
)

// Applied is the result of Descriptor.Apply. Replacement is set when Kind
// is Replaced; the caller owns destroying the old object.
type Applied struct {
	Kind        AppliedKind
	Replacement *engine.GameObject
}

// RebuildFunc creates a fresh object of category with the given structural
// params. engine.SceneFacility.Spawn satisfies it.
type RebuildFunc func(category, name string, params map[string]float32) (*engine.GameObject, error)

// Validate checks the descriptor invariants.
func (d Descriptor) Validate() error {
	if d.Label == "" {
		return fmt.Errorf("empty label")
	}
	if isNaN(d.Min) || isNaN(d.Max) {
		return fmt.Errorf("%s: NaN bound", d.Label)
	}
	if d.Min >= d.Max {
		return fmt.Errorf("%s: min %v >= max %v", d.Label, d.Min, d.Max)
	}
	switch d.Op.Kind {
	case OpScale:
		if d.Op.Axes&AxisAll == 0 {
			return fmt.Errorf("%s: scale without axes", d.Label)
		}
	case OpRebuild:
		if d.Op.Param == "" {
			return fmt.Errorf("%s: rebuild without a parameter", d.Label)
		}
	default:
		return fmt.Errorf("%s: unknown op %v", d.Label, d.Op.Kind)
	}
	return nil
}

// Clamp limits v to [Min, Max].
func (d Descriptor) Clamp(v float32) float32 {
	if isNaN(v) || v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Current reads the value the descriptor controls from obj, clamped into
// range. Scale ops report the first axis in x, y, z order.
func (d Descriptor) Current(obj *engine.GameObject) float32 {
	switch d.Op.Kind {
	case OpScale:
		s := obj.Transform.Scale
		switch {
		case d.Op.Axes&AxisX != 0:
			return d.Clamp(s.X())
		case d.Op.Axes&AxisY != 0:
			return d.Clamp(s.Y())
		case d.Op.Axes&AxisZ != 0:
			return d.Clamp(s.Z())
		}
	case OpRebuild:
		return d.Clamp(obj.Param(d.Op.Param, d.Min))
	}
	return d.Min
}

// Apply applies value to obj. Scale ops mutate obj; rebuild ops call rebuild
// and return the new object, leaving obj untouched. Applying the value obj
// already has is a no-op.
func (d Descriptor) Apply(obj *engine.GameObject, value float32, rebuild RebuildFunc) (Applied, error) {
	value = d.Clamp(value)
	switch d.Op.Kind {
	case OpScale:
		if d.Op.Axes&AxisX != 0 {
			obj.Transform.Scale[0] = value
		}
		if d.Op.Axes&AxisY != 0 {
			obj.Transform.Scale[1] = value
		}
		if d.Op.Axes&AxisZ != 0 {
			obj.Transform.Scale[2] = value
		}
		return Applied{Kind: Mutated}, nil

	case OpRebuild:
		if d.Op.Integral {
			value = float32(math.Round(float64(value)))
		}
		if cur, ok := obj.Params[d.Op.Param]; ok && cur == value {
			return Applied{Kind: Mutated}, nil
		}
		if rebuild == nil {
			return Applied{}, fmt.Errorf("%s: rebuild op without a rebuild function", d.Label)
		}
		params := make(map[string]float32, len(obj.Params)+1)
		for k, v := range obj.Params {
			params[k] = v
		}
		params[d.Op.Param] = value
		next, err := rebuild(obj.Category, obj.Name, params)
		if err != nil {
			return Applied{}, fmt.Errorf("rebuild %s with %s=%v: %w", obj.Name, d.Op.Param, value, err)
		}
		if next == nil {
			return Applied{}, fmt.Errorf("rebuild %s returned no object", obj.Name)
		}
		return Applied{Kind: Replaced, Replacement: next}, nil
	}
	return Applied{}, fmt.Errorf("%s: unknown op %v", d.Label, d.Op.Kind)
}

func isNaN(f float32) bool {
	return f != f
}
