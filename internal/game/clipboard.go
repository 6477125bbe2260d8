package game

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"inspect3d/internal/engine"
	"inspect3d/internal/prefab"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.design/x/clipboard"
)

// clipboardObject is one copied GameObject on the system clipboard. The
// payload is plain JSON so objects survive across editor processes.
type clipboardObject struct {
	State    engine.ObjectState `json:"state"`
	PrefabID string             `json:"prefab,omitempty"`
}

type clipboardPayload struct {
	Kind    string            `json:"kind"`
	Objects []clipboardObject `json:"objects"`
}

const clipboardKind = "inspect3d/objects"

var (
	clipboardInitOnce sync.Once
	clipboardReady    bool
)

func initClipboard() bool {
	clipboardInitOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
			return
		}
		clipboardReady = true
	})
	return clipboardReady
}

// copySelection serializes the selected objects onto the system clipboard.
func (e *Editor) copySelection() {
	if !initClipboard() {
		e.flash("Clipboard unavailable")
		return
	}

	payload := clipboardPayload{Kind: clipboardKind}
	for _, g := range e.selection {
		raw, err := g.CaptureState()
		if err != nil {
			continue
		}
		state, ok := raw.(engine.ObjectState)
		if !ok {
			continue
		}
		payload.Objects = append(payload.Objects, clipboardObject{
			State:    state,
			PrefabID: g.Prefab.PrefabID,
		})
	}
	if len(payload.Objects) == 0 {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		e.flash(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	e.flash(fmt.Sprintf("Copied %d object(s)", len(payload.Objects)))
}

// pasteClipboard recreates objects from the clipboard payload, offset so
// pasted copies do not sit exactly on the originals.
func (e *Editor) pasteClipboard() {
	if !initClipboard() {
		e.flash("Clipboard unavailable")
		return
	}

	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	var payload clipboardPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.Kind != clipboardKind {
		return
	}

	var pasted []*engine.GameObject
	for _, co := range payload.Objects {
		g := engine.NewGameObject(co.State.Name)
		if err := g.RestoreState(co.State); err != nil {
			continue
		}
		g.Name = e.world.UniqueName(co.State.Name)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3{X: 1, Z: 1})
		if co.PrefabID != "" {
			g.Prefab = engine.PrefabLink{PrefabID: co.PrefabID, InstanceID: prefab.NextInstanceID()}
		}
		e.world.Scene.AddGameObject(g)
		pasted = append(pasted, g)
	}
	if len(pasted) == 0 {
		return
	}
	e.Select(pasted...)
	e.flash(fmt.Sprintf("Pasted %d object(s)", len(pasted)))
}
