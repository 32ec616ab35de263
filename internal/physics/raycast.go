package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/components"
	"meshtweak/internal/engine"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      mgl32.Vec3
	Normal     mgl32.Vec3
	Distance   float32
}

// Raycast returns the closest pickable object hit by the ray. Objects that
// are inactive, destroyed or not pickable are skipped, as are objects
// without a collider.
func Raycast(objects []*engine.GameObject, origin, direction mgl32.Vec3, maxDistance float32) (RaycastHit, bool) {
	if direction.Len() == 0 {
		return RaycastHit{}, false
	}
	direction = direction.Normalize()

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if !obj.Pickable || !obj.Active || obj.Destroyed() {
			continue
		}
		// Check box collider
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastBox(origin, direction, box, maxDistance); ok {
				if hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
		// Check sphere collider
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere, maxDistance); ok {
				if hitInfo.Distance < closestHit.Distance {
					closestHit = hitInfo
					closestHit.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closestHit, hit
}

func raycastBox(origin, direction mgl32.Vec3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	bounds := NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
	t, ok := bounds.IntersectRay(origin, direction, maxDistance)
	if !ok {
		return RaycastHit{}, false
	}

	point := origin.Add(direction.Mul(t))

	// Calculate normal based on which face was hit
	var normal mgl32.Vec3
	const epsilon = 0.001
	switch {
	case math32.Abs(point[0]-bounds.Min[0]) < epsilon:
		normal = mgl32.Vec3{-1, 0, 0}
	case math32.Abs(point[0]-bounds.Max[0]) < epsilon:
		normal = mgl32.Vec3{1, 0, 0}
	case math32.Abs(point[1]-bounds.Min[1]) < epsilon:
		normal = mgl32.Vec3{0, -1, 0}
	case math32.Abs(point[1]-bounds.Max[1]) < epsilon:
		normal = mgl32.Vec3{0, 1, 0}
	case math32.Abs(point[2]-bounds.Min[2]) < epsilon:
		normal = mgl32.Vec3{0, 0, -1}
	default:
		normal = mgl32.Vec3{0, 0, 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction mgl32.Vec3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := origin.Sub(center)
	a := direction.Dot(direction)
	b := 2.0 * oc.Dot(direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := origin.Add(direction.Mul(t))
	normal := point.Sub(center).Normalize()

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
