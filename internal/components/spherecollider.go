package components

import (
	"inspect3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponentType("SphereCollider", func() engine.Component {
		return NewSphereCollider()
	})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius    float32    `edit:"order=1"`
	Offset    rl.Vector3 `edit:"order=2"`
	IsTrigger bool       `edit:"order=3"`
}

func NewSphereCollider() *SphereCollider {
	return &SphereCollider{Radius: 0.5}
}

func (s *SphereCollider) State() map[string]any {
	return map[string]any{
		"radius":    float64(s.Radius),
		"offset":    vecState(s.Offset),
		"isTrigger": s.IsTrigger,
	}
}

func (s *SphereCollider) SetState(props map[string]any) {
	stateFloat(props, "radius", &s.Radius)
	stateVec(props, "offset", &s.Offset)
	stateBool(props, "isTrigger", &s.IsTrigger)
}
