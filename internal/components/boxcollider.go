package components

import (
	"inspect3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponentType("BoxCollider", func() engine.Component {
		return NewBoxCollider()
	})
}

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3 `edit:"order=1"`
	Offset    rl.Vector3 `edit:"order=2,tooltip=Center offset from the object origin"`
	IsTrigger bool       `edit:"order=3"`
}

func NewBoxCollider() *BoxCollider {
	return &BoxCollider{
		Size: rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func (b *BoxCollider) State() map[string]any {
	return map[string]any{
		"size":      vecState(b.Size),
		"offset":    vecState(b.Offset),
		"isTrigger": b.IsTrigger,
	}
}

func (b *BoxCollider) SetState(props map[string]any) {
	stateVec(props, "size", &b.Size)
	stateVec(props, "offset", &b.Offset)
	stateBool(props, "isTrigger", &b.IsTrigger)
}
