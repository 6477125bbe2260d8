package scripts

import (
	"math"

	"inspect3d/internal/engine"
)

// Bobber floats an object up and down around its starting height.
type Bobber struct {
	engine.BaseComponent
	Amplitude float32 // World units above and below the start height
	Frequency float32 // Full cycles per second

	baseY float32
	time  float32
}

func (b *Bobber) Start() {
	if g := b.GetGameObject(); g != nil {
		b.baseY = g.Transform.Position.Y
	}
}

func (b *Bobber) Update(deltaTime float32) {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	b.time += deltaTime
	g.Transform.Position.Y = b.baseY + b.Amplitude*float32(math.Sin(float64(b.time*b.Frequency*2*math.Pi)))
}
