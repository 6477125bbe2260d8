package scripts

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"inspect3d/internal/engine"
)

// FollowTarget moves an object toward another scene object every frame.
type FollowTarget struct {
	engine.BaseComponent
	Target   engine.GameObjectRef // Object to chase
	Speed    float32              // World units per second
	StopDist float32              // Stop when this close
}

func (f *FollowTarget) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	target := f.Target.Get(g.Scene)
	if target == nil {
		return
	}
	delta := rl.Vector3Subtract(target.Transform.Position, g.Transform.Position)
	dist := rl.Vector3Length(delta)
	if dist <= f.StopDist || dist == 0 {
		return
	}
	step := f.Speed * deltaTime
	if step > dist-f.StopDist {
		step = dist - f.StopDist
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(rl.Vector3Normalize(delta), step))
}
