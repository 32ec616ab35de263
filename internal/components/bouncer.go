package components

import (
	"github.com/gen2brain/raylib-go/easings"
	"github.com/go-gl/mathgl/mgl32"

	"meshtweak/internal/engine"
)

// Bouncer drops its object from Amplitude above the rest position and
// lets it settle with a bounce-out ease. It runs once and then stays idle.
type Bouncer struct {
	engine.BaseComponent
	Amplitude float32
	Duration  float32

	rest    mgl32.Vec3
	elapsed float32
	done    bool
}

func NewBouncer(amplitude, duration float32) *Bouncer {
	return &Bouncer{
		Amplitude: amplitude,
		Duration:  duration,
	}
}

func (b *Bouncer) Start() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	b.rest = g.Transform.Position
	if b.Duration <= 0 {
		b.done = true
		return
	}
	g.Transform.Position = b.rest.Add(mgl32.Vec3{0, b.Amplitude, 0})
}

func (b *Bouncer) Update(deltaTime float32) {
	g := b.GetGameObject()
	if g == nil || b.done {
		return
	}

	b.elapsed += deltaTime
	if b.elapsed >= b.Duration {
		b.elapsed = b.Duration
		b.done = true
	}

	// Height goes from Amplitude to 0 over Duration.
	h := easings.BounceOut(b.elapsed, b.Amplitude, -b.Amplitude, b.Duration)
	g.Transform.Position = b.rest.Add(mgl32.Vec3{0, h, 0})
}

// Done reports whether the bounce has settled.
func (b *Bouncer) Done() bool {
	return b.done
}
