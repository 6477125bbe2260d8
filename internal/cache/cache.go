// Package cache persists small editor state blobs between sessions:
// expanded-group flags, cached widget sizes, last selection. Values are
// opaque strings keyed by the owning surface; the cache never interprets
// them.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Cache is a JSON-file-backed key/value store.
type Cache struct {
	path    string
	entries map[string]string
	dirty   bool
}

// Load reads the cache file at path. A missing file yields an empty
// cache, not an error.
func Load(path string) *Cache {
	c := &Cache{path: path, entries: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		fmt.Printf("Failed to parse project cache: %v\n", err)
		c.entries = map[string]string{}
	}
	return c
}

// Get returns the stored blob for key, or "" when absent.
func (c *Cache) Get(key string) string {
	return c.entries[key]
}

// GetBool interprets the stored blob as a boolean flag.
func (c *Cache) GetBool(key string) bool {
	return c.entries[key] == "1"
}

// Set stores a blob under key.
func (c *Cache) Set(key, value string) {
	if c.entries[key] == value {
		return
	}
	c.entries[key] = value
	c.dirty = true
}

// SetBool stores a boolean flag under key.
func (c *Cache) SetBool(key string, value bool) {
	if value {
		c.Set(key, "1")
	} else {
		c.Set(key, "0")
	}
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	c.dirty = true
}

// Save writes the cache back to disk if anything changed.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
