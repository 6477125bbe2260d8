// Package components holds the built-in component types the editor can
// attach to objects. Each registers itself with the engine's component
// registry and exposes its editable state through engine.Stater, which
// the prefab store and the undo stack both rely on.
package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func vecState(v rl.Vector3) map[string]any {
	return map[string]any{"x": float64(v.X), "y": float64(v.Y), "z": float64(v.Z)}
}

func stateVec(props map[string]any, key string, into *rl.Vector3) {
	m, ok := props[key].(map[string]any)
	if !ok {
		return
	}
	if x, ok := m["x"].(float64); ok {
		into.X = float32(x)
	}
	if y, ok := m["y"].(float64); ok {
		into.Y = float32(y)
	}
	if z, ok := m["z"].(float64); ok {
		into.Z = float32(z)
	}
}

func stateFloat(props map[string]any, key string, into *float32) {
	if v, ok := props[key].(float64); ok {
		*into = float32(v)
	}
}

func stateBool(props map[string]any, key string, into *bool) {
	if v, ok := props[key].(bool); ok {
		*into = v
	}
}
