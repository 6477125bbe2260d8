package prefab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"inspect3d/internal/engine"
)

var nextInstanceID uint64

// NextInstanceID hands out a fresh instance id for links created outside
// Instantiate, such as duplicated objects.
func NextInstanceID() uint64 {
	nextInstanceID++
	return nextInstanceID
}

// Store holds the prefab definitions of a project directory. Loading and
// instantiation run on the frame thread; only the fsnotify callback
// touches the pending set from another goroutine, hence the mutex around
// exactly that.
type Store struct {
	dir  string
	defs map[string]*Definition

	// defaults caches one pristine instance per prefab, handed to the
	// inspector as the diff reference. Invalidated on save and reload.
	defaults map[string]*engine.GameObject

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	pending map[string]bool
}

func NewStore(dir string) *Store {
	return &Store{
		dir:      dir,
		defs:     map[string]*Definition{},
		defaults: map[string]*engine.GameObject{},
		pending:  map[string]bool{},
	}
}

// Load reads every .yaml prefab under the store directory. Prefab ids
// are slash-separated paths relative to it.
func (s *Store) Load() error {
	s.defs = map[string]*Definition{}
	s.defaults = map[string]*engine.GameObject{}
	return filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		return s.loadFile(path)
	})
}

func (s *Store) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("prefab: read %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("prefab: parse %s: %w", path, err)
	}
	id, err := s.idFor(path)
	if err != nil {
		return err
	}
	s.defs[id] = &def
	delete(s.defaults, id)
	return nil
}

func (s *Store) idFor(path string) (string, error) {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return "", fmt.Errorf("prefab: %s is outside the store: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

func (s *Store) pathFor(id string) string {
	return filepath.Join(s.dir, filepath.FromSlash(id))
}

// Get returns the loaded definition for id.
func (s *Store) Get(id string) (*Definition, bool) {
	def, ok := s.defs[id]
	return def, ok
}

// IDs lists the loaded prefabs, sorted for stable browser ordering.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.defs))
	for id := range s.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Instantiate builds a fresh scene instance of the prefab, linked back
// to it with a new instance id.
func (s *Store) Instantiate(id string) (*engine.GameObject, error) {
	def, ok := s.defs[id]
	if !ok {
		return nil, fmt.Errorf("prefab: unknown prefab %q", id)
	}
	obj := def.build()
	obj.Prefab = engine.PrefabLink{PrefabID: id, InstanceID: NextInstanceID()}
	return obj, nil
}

// DefaultInstance returns the cached pristine instance of the linked
// prefab. Never edit the result; it is shared as the diff reference.
func (s *Store) DefaultInstance(link engine.PrefabLink) (*engine.GameObject, bool) {
	if !link.IsLinked() {
		return nil, false
	}
	if def, ok := s.defaults[link.PrefabID]; ok {
		return def, true
	}
	d, ok := s.defs[link.PrefabID]
	if !ok {
		return nil, false
	}
	obj := d.build()
	s.defaults[link.PrefabID] = obj
	return obj, true
}

// Save writes a definition to disk and registers it under id.
func (s *Store) Save(id string, def *Definition) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("prefab: marshal %q: %w", id, err)
	}
	path := s.pathFor(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("prefab: write %q: %w", id, err)
	}
	s.defs[id] = def
	delete(s.defaults, id)
	return nil
}

// ApplyInstance writes a linked instance's current state back to its
// prefab file, the apply-overrides operation. Other instances pick the
// change up through the reload the watcher reports.
func (s *Store) ApplyInstance(obj *engine.GameObject) error {
	if !obj.Prefab.IsLinked() {
		return fmt.Errorf("prefab: %q is not linked to a prefab", obj.Name)
	}
	return s.Save(obj.Prefab.PrefabID, capture(obj))
}

// Watch starts reporting external edits to prefab files. Events are only
// collected here; Poll applies them on the frame thread.
func (s *Store) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(s.dir); err != nil {
		w.Close()
		return err
	}
	s.watcher = w
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if !strings.HasSuffix(ev.Name, ".yaml") {
					continue
				}
				s.mu.Lock()
				s.pending[ev.Name] = true
				s.mu.Unlock()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fmt.Printf("prefab: watch error: %v\n", err)
			}
		}
	}()
	return nil
}

// Poll reloads the prefabs whose files changed since the last call and
// returns their ids. Called once per frame; an empty result means no
// work.
func (s *Store) Poll() []string {
	s.mu.Lock()
	paths := make([]string, 0, len(s.pending))
	for p := range s.pending {
		paths = append(paths, p)
	}
	s.pending = map[string]bool{}
	s.mu.Unlock()

	var ids []string
	for _, p := range paths {
		if err := s.loadFile(p); err != nil {
			fmt.Printf("prefab: reload failed: %v\n", err)
			continue
		}
		if id, err := s.idFor(p); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Close stops the watcher.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}
