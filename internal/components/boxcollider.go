package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/engine"
)

// BoxCollider is an axis-aligned pick volume. Size is the unscaled extent;
// the owning object's world scale is applied on query.
type BoxCollider struct {
	engine.BaseComponent
	Size   mgl32.Vec3
	Offset mgl32.Vec3
}

func NewBoxCollider(size mgl32.Vec3) *BoxCollider {
	return &BoxCollider{
		Size: size,
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() mgl32.Vec3 {
	return b.GetGameObject().WorldPosition().Add(b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale, always positive.
func (b *BoxCollider) GetWorldSize() mgl32.Vec3 {
	s := b.GetGameObject().WorldScale()
	return mgl32.Vec3{
		abs(b.Size[0] * s[0]),
		abs(b.Size[1] * s[1]),
		abs(b.Size[2] * s[2]),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
