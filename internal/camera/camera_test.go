package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestPosition(t *testing.T) {
	c := New(mgl32.Vec3{}, math.Pi/2, math.Pi/2, 4)
	if p := c.Position(); !near(p, mgl32.Vec3{0, 0, 4}) {
		t.Errorf("Expected (0, 0, 4), got %v", p)
	}

	c = New(mgl32.Vec3{1, 2, 3}, 0, math.Pi/2, 2)
	if p := c.Position(); !near(p, mgl32.Vec3{3, 2, 3}) {
		t.Errorf("Expected (3, 2, 3), got %v", p)
	}
}

func TestDistanceIsRadius(t *testing.T) {
	c := New(mgl32.Vec3{0, 1, 0}, math.Pi/2, math.Pi/2.5, 4)
	for i := 0; i < 10; i++ {
		c.Rotate(37, -11)
		d := c.Position().Sub(c.Target).Len()
		if math.Abs(float64(d-4)) > 1e-4 {
			t.Fatalf("distance drifted to %v", d)
		}
	}
}

func TestClamp(t *testing.T) {
	c := New(mgl32.Vec3{}, 0, 1, 4)

	c.Rotate(0, 10000)
	if c.Beta <= 0 {
		t.Errorf("Beta should stay above the pole, got %v", c.Beta)
	}
	c.Rotate(0, -10000)
	if c.Beta >= math.Pi {
		t.Errorf("Beta should stay below the pole, got %v", c.Beta)
	}

	c.Zoom(1000)
	if c.Radius != c.MinRadius {
		t.Errorf("Expected radius %v, got %v", c.MinRadius, c.Radius)
	}
	c.Zoom(-1000)
	if c.Radius != c.MaxRadius {
		t.Errorf("Expected radius %v, got %v", c.MaxRadius, c.Radius)
	}
}
