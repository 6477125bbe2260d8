package components

import (
	"inspect3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponentType("DirectionalLight", func() engine.Component {
		return NewDirectionalLight()
	})
}

type DirectionalLight struct {
	engine.BaseComponent
	Direction rl.Vector3 `edit:"order=1"`
	Intensity float32    `edit:"order=2"`
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction: rl.Vector3{X: -0.5, Y: -1, Z: -0.3},
		Intensity: 1.0,
	}
}

func (d *DirectionalLight) State() map[string]any {
	return map[string]any{
		"direction": vecState(d.Direction),
		"intensity": float64(d.Intensity),
	}
}

func (d *DirectionalLight) SetState(props map[string]any) {
	stateVec(props, "direction", &d.Direction)
	stateFloat(props, "intensity", &d.Intensity)
}
