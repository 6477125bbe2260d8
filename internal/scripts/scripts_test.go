package scripts

import (
	"testing"

	"inspect3d/internal/engine"
)

func TestRotatorFactoryAndSerializer(t *testing.T) {
	c := engine.CreateScript("Rotator", map[string]any{"speed": 45.0})
	if c == nil {
		t.Fatal("Rotator not registered")
	}
	r, ok := c.(*Rotator)
	if !ok {
		t.Fatalf("factory returned %T", c)
	}
	if r.Speed != 45 {
		t.Errorf("speed not applied: %v", r.Speed)
	}

	name, props, ok := engine.SerializeScript(r)
	if !ok || name != "Rotator" {
		t.Fatalf("serialize failed: %q %v", name, ok)
	}
	if props["speed"] != float32(45) {
		t.Errorf("speed not serialized: %v", props["speed"])
	}
}

func TestRotatorApplier(t *testing.T) {
	r := &Rotator{Speed: 10}
	if !engine.ApplyScriptProperty(r, "speed", 99.0) {
		t.Fatal("applier rejected speed")
	}
	if r.Speed != 99 {
		t.Errorf("speed not applied: %v", r.Speed)
	}
	if engine.ApplyScriptProperty(r, "bogus", 1.0) {
		t.Error("applier accepted unknown property")
	}
}

func TestBobberMovesAroundBase(t *testing.T) {
	g := engine.NewGameObject("Float")
	g.Transform.Position.Y = 3

	b := &Bobber{Amplitude: 1, Frequency: 1}
	g.AddComponent(b)
	g.Start()

	g.Update(0.25) // quarter period, peak of the sine
	if got := g.Transform.Position.Y; got < 3.9 || got > 4.1 {
		t.Errorf("expected peak near 4, got %v", got)
	}
	g.Update(0.25) // half period, back at base
	if got := g.Transform.Position.Y; got < 2.9 || got > 3.1 {
		t.Errorf("expected base near 3, got %v", got)
	}
}

func TestFollowTargetRef(t *testing.T) {
	scene := engine.NewScene("Test")
	target := engine.NewGameObject("Goal")
	target.Transform.Position.X = 10
	scene.AddGameObject(target)

	follower := engine.NewGameObject("Chaser")
	f := &FollowTarget{Speed: 2}
	f.Target.Set(target)
	follower.AddComponent(f)
	scene.AddGameObject(follower)

	follower.Update(1)
	if follower.Transform.Position.X != 2 {
		t.Errorf("expected to move 2 units toward target, got %v", follower.Transform.Position.X)
	}

	// Serialized refs travel as UIDs
	_, props, ok := engine.SerializeScript(f)
	if !ok {
		t.Fatal("serialize failed")
	}
	if props["target"] != float64(target.UID) {
		t.Errorf("target not serialized as UID: %v", props["target"])
	}
}

func TestFollowTargetStopsAtDistance(t *testing.T) {
	scene := engine.NewScene("Test")
	target := engine.NewGameObject("Goal")
	target.Transform.Position.X = 1
	scene.AddGameObject(target)

	follower := engine.NewGameObject("Chaser")
	f := &FollowTarget{Speed: 100, StopDist: 0.5}
	f.Target.Set(target)
	follower.AddComponent(f)
	scene.AddGameObject(follower)

	follower.Update(1)
	if got := follower.Transform.Position.X; got != 0.5 {
		t.Errorf("expected to stop at 0.5, got %v", got)
	}
}

func TestFollowTargetFieldMetadata(t *testing.T) {
	f := &FollowTarget{}
	if got := engine.GetScriptFieldType(f, "target"); got != "GameObjectRef" {
		t.Errorf("expected GameObjectRef hint, got %q", got)
	}
	if got := engine.GetScriptFieldType(f, "speed"); got != "" {
		t.Errorf("expected no hint for speed, got %q", got)
	}
}
