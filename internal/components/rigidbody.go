package components

import (
	"inspect3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponentType("Rigidbody", func() engine.Component {
		return NewRigidbody()
	})
}

type Rigidbody struct {
	engine.BaseComponent
	Mass        float32 `edit:"order=1,tooltip=Mass in kilograms"`
	Bounciness  float32 `edit:"order=2,tooltip=0 = no bounce 1 = perfect bounce"`
	Friction    float32 `edit:"order=3"`
	UseGravity  bool    `edit:"order=4"`
	IsKinematic bool    `edit:"order=5,tooltip=Moves but is not pushed by physics"`

	// Runtime state, owned by the simulation, not editable.
	Velocity        rl.Vector3 `edit:"-"`
	AngularVelocity rl.Vector3 `edit:"-"`
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		Bounciness: 0.5,
		Friction:   0.1,
		UseGravity: true,
	}
}

func (r *Rigidbody) State() map[string]any {
	return map[string]any{
		"mass":        float64(r.Mass),
		"bounciness":  float64(r.Bounciness),
		"friction":    float64(r.Friction),
		"useGravity":  r.UseGravity,
		"isKinematic": r.IsKinematic,
	}
}

func (r *Rigidbody) SetState(props map[string]any) {
	stateFloat(props, "mass", &r.Mass)
	stateFloat(props, "bounciness", &r.Bounciness)
	stateFloat(props, "friction", &r.Friction)
	stateBool(props, "useGravity", &r.UseGravity)
	stateBool(props, "isKinematic", &r.IsKinematic)
}
