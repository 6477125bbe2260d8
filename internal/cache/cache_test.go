package cache

import (
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := Load(path)
	c.Set("inspector.group.Transform", "1")
	c.SetBool("browser.open", true)
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	c2 := Load(path)
	if c2.Get("inspector.group.Transform") != "1" {
		t.Error("string entry lost across reload")
	}
	if !c2.GetBool("browser.open") {
		t.Error("bool entry lost across reload")
	}
}

func TestCacheMissingFile(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.json"))
	if c.Get("anything") != "" {
		t.Error("missing file should yield empty cache")
	}
	if err := c.Save(); err != nil {
		t.Errorf("saving clean cache should be a no-op, got %v", err)
	}
}

func TestCacheDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c := Load(path)
	c.Set("k", "v")
	c.Delete("k")
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	if Load(path).Get("k") != "" {
		t.Error("deleted entry survived save")
	}
}
