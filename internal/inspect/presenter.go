package inspect

import (
	"inspect3d/internal/cache"
	"inspect3d/internal/engine"
	"inspect3d/internal/undo"
)

// DefaultProvider resolves the default instance a prefab link points at,
// used to build reference snapshots for diffing.
type DefaultProvider interface {
	DefaultInstance(link engine.PrefabLink) (*engine.GameObject, bool)
}

// Features toggles per-session behavior of the whole editor tree.
type Features struct {
	ReadOnly bool
}

// Presenter is the shared root context of an editor tree: the undo
// stack, the project cache and the editor registry. Every node holds the
// same Presenter; no node owns it.
type Presenter struct {
	Undo     *undo.Stack // nil disables undo bookkeeping entirely
	Cache    *cache.Cache
	Registry *Registry
	Defaults DefaultProvider
	Features Features

	rebuild bool
}

func NewPresenter(stack *undo.Stack, c *cache.Cache) *Presenter {
	return &Presenter{
		Undo:     stack,
		Cache:    c,
		Registry: NewRegistry(),
	}
}

// RequestRebuild flags that the layout no longer matches the data shape.
// The root rebuilds the whole tree after the current refresh pass; this
// is the universal recovery path.
func (p *Presenter) RequestRebuild() { p.rebuild = true }

// takeRebuildRequest consumes the pending rebuild flag.
func (p *Presenter) takeRebuildRequest() bool {
	r := p.rebuild
	p.rebuild = false
	return r
}
