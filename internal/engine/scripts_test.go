package engine

import "testing"

// turret is the script the registry tests register by hand, the way
// gen-scripts output does it.
type turret struct {
	BaseComponent
	Range float32
	Ammo  int
}

func turretFactory(props map[string]any) Component {
	s := &turret{}
	if v, ok := props["range"].(float64); ok {
		s.Range = float32(v)
	}
	if v, ok := props["ammo"].(float64); ok {
		s.Ammo = int(v)
	}
	return s
}

func turretSerializer(c Component) map[string]any {
	s, ok := c.(*turret)
	if !ok {
		return nil
	}
	return map[string]any{"range": s.Range, "ammo": s.Ammo}
}

func turretApplier(c Component, prop string, value any) bool {
	s, ok := c.(*turret)
	if !ok {
		return false
	}
	switch prop {
	case "range":
		if v, ok := value.(float64); ok {
			s.Range = float32(v)
			return true
		}
	case "ammo":
		if v, ok := value.(float64); ok {
			s.Ammo = int(v)
			return true
		}
	}
	return false
}

func resetScriptRegistry() {
	scriptRegistry = map[string]scriptEntry{}
}

func TestRegisterAndCreateScript(t *testing.T) {
	resetScriptRegistry()
	RegisterScript("Turret", turretFactory, turretSerializer)

	c := CreateScript("Turret", map[string]any{"range": 12.5, "ammo": float64(30)})
	s, ok := c.(*turret)
	if !ok {
		t.Fatalf("CreateScript returned %T", c)
	}
	if s.Range != 12.5 || s.Ammo != 30 {
		t.Errorf("props not applied: %+v", s)
	}

	if CreateScript("Ghost", nil) != nil {
		t.Errorf("unknown script name created a component")
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	resetScriptRegistry()
	RegisterScript("Turret", turretFactory, turretSerializer)

	defer func() {
		if recover() == nil {
			t.Errorf("duplicate registration did not panic")
		}
	}()
	RegisterScript("Turret", turretFactory, turretSerializer)
}

func TestSerializeScript(t *testing.T) {
	resetScriptRegistry()
	RegisterScript("Turret", turretFactory, turretSerializer)

	name, props, ok := SerializeScript(&turret{Range: 8, Ammo: 6})
	if !ok || name != "Turret" {
		t.Fatalf("SerializeScript = %q, %v", name, ok)
	}
	if props["range"] != float32(8) || props["ammo"] != 6 {
		t.Errorf("serialized props = %v", props)
	}

	if _, _, ok := SerializeScript(&BaseComponent{}); ok {
		t.Errorf("unregistered component serialized")
	}
}

func TestRegisteredScriptsSorted(t *testing.T) {
	resetScriptRegistry()
	RegisterScript("Rotator", turretFactory, turretSerializer)
	RegisterScript("Bobber", turretFactory, turretSerializer)
	RegisterScript("Turret", turretFactory, turretSerializer)

	got := GetRegisteredScripts()
	want := []string{"Bobber", "Rotator", "Turret"}
	if len(got) != len(want) {
		t.Fatalf("scripts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scripts = %v, want sorted %v", got, want)
		}
	}
}

func TestApplyScriptProperty(t *testing.T) {
	resetScriptRegistry()
	RegisterScriptWithApplier("Turret", turretFactory, turretSerializer, turretApplier)

	s := &turret{Range: 5}
	if !ApplyScriptProperty(s, "range", 20.0) || s.Range != 20 {
		t.Errorf("range not applied: %+v", s)
	}
	if !ApplyScriptProperty(s, "ammo", 9.0) || s.Ammo != 9 {
		t.Errorf("ammo not applied: %+v", s)
	}
	if ApplyScriptProperty(s, "caliber", 1.0) {
		t.Errorf("unknown property accepted")
	}
	if HasScriptApplier(&BaseComponent{}) {
		t.Errorf("unregistered component reports an applier")
	}
}

func TestScriptFieldMetadata(t *testing.T) {
	resetScriptRegistry()
	RegisterScriptWithMetadata("Turret", turretFactory, turretSerializer, turretApplier,
		map[string]string{"target": "GameObjectRef"})

	s := &turret{}
	if got := GetScriptFieldType(s, "target"); got != "GameObjectRef" {
		t.Errorf("field type = %q, want GameObjectRef", got)
	}
	if got := GetScriptFieldType(s, "range"); got != "" {
		t.Errorf("field type = %q for a plain field, want empty", got)
	}
	if got := GetScriptFieldType(&BaseComponent{}, "target"); got != "" {
		t.Errorf("field type = %q for an unregistered component, want empty", got)
	}
}
