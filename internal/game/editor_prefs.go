package game

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EditorPrefs holds persistent editor preferences saved between sessions
type EditorPrefs struct {
	WindowWidth       int        `json:"windowWidth"`
	WindowHeight      int        `json:"windowHeight"`
	CameraPosition    rl.Vector3 `json:"cameraPosition"`
	CameraYaw         float32    `json:"cameraYaw"`
	CameraPitch       float32    `json:"cameraPitch"`
	CameraMoveSpeed   float32    `json:"cameraMoveSpeed"`
	ScenePath         string     `json:"scenePath"`
	PrefabBrowserOpen bool       `json:"prefabBrowserOpen"`
	HierarchyWidth    int32      `json:"hierarchyWidth"`
	InspectorWidth    int32      `json:"inspectorWidth"`
}

const editorPrefsFile = ".editor_prefs.json"

// LoadEditorPrefs loads editor preferences from disk
func LoadEditorPrefs() *EditorPrefs {
	data, err := os.ReadFile(editorPrefsFile)
	if err != nil {
		return nil
	}

	var prefs EditorPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		fmt.Printf("Failed to parse editor prefs: %v\n", err)
		return nil
	}

	return &prefs
}

// SavePrefs saves the current editor state to disk
func (e *Editor) SavePrefs() {
	prefs := EditorPrefs{
		WindowWidth:       rl.GetScreenWidth(),
		WindowHeight:      rl.GetScreenHeight(),
		CameraPosition:    e.camera.Position,
		CameraYaw:         e.camera.Yaw,
		CameraPitch:       e.camera.Pitch,
		CameraMoveSpeed:   e.camera.MoveSpeed,
		ScenePath:         e.world.ScenePath,
		PrefabBrowserOpen: e.showPrefabBrowser,
		HierarchyWidth:    e.hierarchyWidth,
		InspectorWidth:    e.inspectorWidth,
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal editor prefs: %v\n", err)
		return
	}

	if err := os.WriteFile(editorPrefsFile, data, 0644); err != nil {
		fmt.Printf("Failed to save editor prefs: %v\n", err)
	}
}

// ApplyPrefs applies loaded preferences to the editor
func (e *Editor) ApplyPrefs(prefs *EditorPrefs) {
	if prefs == nil {
		return
	}

	e.camera.Position = prefs.CameraPosition
	e.camera.Yaw = prefs.CameraYaw
	e.camera.Pitch = prefs.CameraPitch
	if prefs.CameraMoveSpeed > 0 {
		e.camera.MoveSpeed = prefs.CameraMoveSpeed
	}
	if prefs.HierarchyWidth > 0 {
		e.hierarchyWidth = prefs.HierarchyWidth
	}
	if prefs.InspectorWidth > 0 {
		e.inspectorWidth = prefs.InspectorWidth
	}
	e.showPrefabBrowser = prefs.PrefabBrowserOpen
}
