package inspect

// Root owns one inspection session: the selection, the editor tree built
// over it and the layout the widget layer renders. The widget layer
// drives it once per frame through Refresh; shape changes anywhere in
// the tree funnel into a full rebuild here, the single recovery path.
type Root struct {
	presenter *Presenter
	objects   []any
	title     string

	values *ValueContainer
	editor Editor
	layout *Layout
}

// NewRoot builds an editor tree over the selected objects. The layout
// node handed to the widget layer stays the same across rebuilds.
func NewRoot(p *Presenter, title string, objects ...any) *Root {
	r := &Root{
		presenter: p,
		objects:   append([]any(nil), objects...),
		title:     title,
		layout:    NewLayout(title),
	}
	r.build()
	return r
}

func (r *Root) build() {
	r.values = NewSelection(r.objects...)
	r.editor = r.presenter.Registry.Resolve(r.values, false, nil)
	initEditor(r.editor, r.presenter, nil, r.values, r.layout)
	r.editor.Base().sync = NewSyncPoint(r.presenter.Undo, r.title, r.objects)
}

// Editor returns the root editor node.
func (r *Root) Editor() Editor { return r.editor }

// Layout returns the stable layout root the widget layer renders.
func (r *Root) Layout() *Layout { return r.layout }

// Values returns the top-level selection container.
func (r *Root) Values() *ValueContainer { return r.values }

// Refresh runs the per-frame pass: children refresh before parents, then
// any rebuild requested during the pass executes once, afterwards.
func (r *Root) Refresh() {
	r.editor.Refresh()
	if r.presenter.takeRebuildRequest() {
		r.Rebuild()
	}
}

// Rebuild tears the tree down and rebuilds it from the live objects.
// Any in-flight undo transaction is sealed first.
func (r *Root) Rebuild() {
	r.editor.Deinitialize()
	r.layout.Clear()
	r.build()
}

// EndGesture seals the in-flight coalesced undo transaction, called on
// mouse release after a scrub.
func (r *Root) EndGesture() {
	r.editor.Base().EndGesture()
}

// Diff computes the prefab-override tree for the current selection, nil
// when nothing is overridden.
func (r *Root) Diff() *DiffNode {
	return ComputeDiff(r.editor)
}

// ApplyAll pushes the live overrides back through propagate (the prefab
// store's save path) and rebuilds, after which the diff is empty because
// the reference now matches the instances.
func (r *Root) ApplyAll(propagate func() error) error {
	if err := propagate(); err != nil {
		return err
	}
	r.Rebuild()
	return nil
}

// Dispose tears the session down, sealing any open undo transaction.
func (r *Root) Dispose() {
	r.editor.Deinitialize()
	r.layout.Clear()
}
