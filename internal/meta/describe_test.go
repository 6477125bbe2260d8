package meta

import (
	"reflect"
	"testing"
)

type testBase struct {
	Enabled bool
}

type testProps struct {
	testBase
	Name     string  `edit:"order=1"`
	Mass     float32 `edit:"order=2,tooltip=Mass in kg"`
	Internal string  `edit:"-"`
	Secret   string  `json:"-"`
	Debug    bool    `edit:"hidden"`
	Locked   int     `edit:"readonly"`
	Misc     string
}

func TestDescribeOrdering(t *testing.T) {
	info := Describe(reflect.TypeOf(&testProps{}))

	if info.Type != reflect.TypeOf(testProps{}) {
		t.Errorf("Describe did not unwrap pointer type, got %v", info.Type)
	}

	// Name (order=1) and Mass (order=2) come after the untagged members
	// (order=0), which keep declaration order.
	var names []string
	for _, m := range info.Members {
		names = append(names, m.Name)
	}
	want := []string{"Enabled", "Debug", "Locked", "Misc", "Name", "Mass"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("member order = %v, want %v", names, want)
	}
}

func TestDescribeExclusions(t *testing.T) {
	info := Describe(reflect.TypeOf(testProps{}))
	for _, m := range info.Members {
		if m.Name == "Internal" || m.Name == "Secret" {
			t.Errorf("excluded member %s present in descriptor", m.Name)
		}
	}
}

func TestDescribeTags(t *testing.T) {
	info := Describe(reflect.TypeOf(testProps{}))
	byName := map[string]*Member{}
	for _, m := range info.Members {
		byName[m.Name] = m
	}

	if m := byName["Mass"]; m == nil || m.Tooltip != "Mass in kg" {
		t.Errorf("Mass tooltip not parsed: %+v", m)
	}
	if m := byName["Debug"]; m == nil || !m.Hidden {
		t.Error("Debug should be hidden")
	}
	if m := byName["Locked"]; m == nil || !m.ReadOnly {
		t.Error("Locked should be read-only")
	}
}

func TestDescribeBases(t *testing.T) {
	info := Describe(reflect.TypeOf(testProps{}))
	if len(info.Bases) != 1 || info.Bases[0] != reflect.TypeOf(testBase{}) {
		t.Errorf("expected testBase in base chain, got %v", info.Bases)
	}
}

func TestMemberGetSet(t *testing.T) {
	p := &testProps{Mass: 2}
	info := Describe(reflect.TypeOf(p))

	var mass *Member
	for _, m := range info.Members {
		if m.Name == "Mass" {
			mass = m
		}
	}
	if mass == nil {
		t.Fatal("Mass member not found")
	}

	if got := mass.Get(p); got != float32(2) {
		t.Errorf("Get = %v, want 2", got)
	}

	// Numeric conversion: the inspector hands every number over as float64.
	if err := mass.Set(p, float64(3.5)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if p.Mass != 3.5 {
		t.Errorf("Mass = %v after Set, want 3.5", p.Mass)
	}

	// Nil owner must not panic.
	if got := mass.Get((*testProps)(nil)); got != nil {
		t.Errorf("Get on nil owner = %v, want nil", got)
	}
	if err := mass.Set((*testProps)(nil), 1.0); err == nil {
		t.Error("Set on nil owner should fail")
	}
}

func TestMemberAddr(t *testing.T) {
	p := &testProps{}
	info := Describe(reflect.TypeOf(p))
	for _, m := range info.Members {
		if m.Name != "Mass" {
			continue
		}
		ptr, ok := m.Addr(p).(*float32)
		if !ok {
			t.Fatalf("Addr returned %T, want *float32", m.Addr(p))
		}
		*ptr = 7
		if p.Mass != 7 {
			t.Error("Addr did not point into the owner")
		}
	}
}

type wideShape struct {
	Label string
	Mass  float32
	Drag  float32
}

type narrowShape struct {
	Mass float32
}

func memberOf(t *testing.T, owner any, name string) *Member {
	t.Helper()
	for _, m := range Describe(reflect.TypeOf(owner)).Members {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("no member %q", name)
	return nil
}

func TestMemberDivergentOwner(t *testing.T) {
	narrow := &narrowShape{Mass: 5}

	// Drag does not exist on narrowShape; its field path must not be
	// indexed into the smaller struct.
	drag := memberOf(t, &wideShape{}, "Drag")
	if got := drag.Get(narrow); got != nil {
		t.Errorf("Get on a type without the member = %v, want nil", got)
	}
	if err := drag.Set(narrow, 1.0); err == nil {
		t.Error("Set on a type without the member should fail")
	}
	if got := drag.Addr(narrow); got != nil {
		t.Errorf("Addr on a type without the member = %v, want nil", got)
	}

	// Mass exists on both types at different field indices; it must
	// resolve against the actual owner, not the described type.
	mass := memberOf(t, &wideShape{}, "Mass")
	if got := mass.Get(narrow); got != float32(5) {
		t.Errorf("Get = %v, want 5", got)
	}
	if err := mass.Set(narrow, 8.0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if narrow.Mass != 8 {
		t.Errorf("Mass = %v after Set, want 8", narrow.Mass)
	}
}

type paintKind int

func TestEnumRegistry(t *testing.T) {
	RegisterEnum(map[any]string{
		paintKind(2): "Glossy",
		paintKind(0): "Flat",
		paintKind(1): "Matte",
	})

	e, ok := EnumOf(reflect.TypeOf(paintKind(0)))
	if !ok {
		t.Fatal("enum not registered")
	}
	if len(e.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(e.Options))
	}
	if e.Options[0].Name != "Flat" || e.Options[2].Name != "Glossy" {
		t.Errorf("options not sorted by value: %v", e.Options)
	}
}

type paintedBase struct{}
type painted struct {
	paintedBase
	V int
}

func TestEditorForWalksBases(t *testing.T) {
	RegisterTypeEditor(reflect.TypeOf(paintedBase{}), "PaintEditor")

	if got := EditorFor(reflect.TypeOf(&painted{})); got != "PaintEditor" {
		t.Errorf("EditorFor = %q, want PaintEditor (inherited)", got)
	}
	if got := EditorFor(reflect.TypeOf(testBase{})); got != "" {
		t.Errorf("EditorFor = %q for unregistered type, want empty", got)
	}
}

type plainBase struct{ A int }
type inkBase struct{ B int }
type stamped struct {
	plainBase
	inkBase
	V int
}

func TestEditorForWalksEveryBase(t *testing.T) {
	RegisterTypeEditor(reflect.TypeOf(inkBase{}), "InkEditor")

	// The editor sits on the second embedded base, not the first.
	if got := EditorFor(reflect.TypeOf(&stamped{})); got != "InkEditor" {
		t.Errorf("EditorFor = %q, want InkEditor from the second base", got)
	}
}
