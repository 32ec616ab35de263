package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/engine"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset mgl32.Vec3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() mgl32.Vec3 {
	return s.GetGameObject().WorldPosition().Add(s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis, so a
// stretched sphere is still fully covered.
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	m := abs(scale[0])
	for _, v := range scale[1:] {
		if abs(v) > m {
			m = abs(v)
		}
	}
	return s.Radius * m
}
