package inspect

// LayoutKind tells the widget layer how to render a layout node.
type LayoutKind int

const (
	LayoutGroup LayoutKind = iota // collapsible section with a header
	LayoutRow                     // children side by side (vector fields)
	LayoutField                   // single labeled widget
)

// Layout is the widget-facing tree an editor tree produces. The widget
// layer walks it every frame; paths are stable across frames and double
// as cache keys for expanded-group state and as input-focus IDs.
type Layout struct {
	Kind     LayoutKind
	Title    string
	Tooltip  string
	Path     string
	Editor   Editor // editor bound to this node, nil for plain groups
	Children []*Layout
}

// NewLayout creates a detached root layout node.
func NewLayout(title string) *Layout {
	return &Layout{Kind: LayoutGroup, Title: title, Path: title}
}

func (l *Layout) add(kind LayoutKind, title, tooltip string) *Layout {
	child := &Layout{
		Kind:    kind,
		Title:   title,
		Tooltip: tooltip,
		Path:    l.Path + "." + title,
	}
	l.Children = append(l.Children, child)
	return child
}

// Group adds a collapsible child section.
func (l *Layout) Group(title, tooltip string) *Layout {
	return l.add(LayoutGroup, title, tooltip)
}

// Row adds a horizontal child container.
func (l *Layout) Row(title string) *Layout {
	return l.add(LayoutRow, title, "")
}

// Field adds a leaf widget slot.
func (l *Layout) Field(title, tooltip string) *Layout {
	return l.add(LayoutField, title, tooltip)
}

// Clear drops all children, keeping the node itself so the widget layer's
// reference to the root stays valid across rebuilds.
func (l *Layout) Clear() {
	l.Children = nil
	l.Editor = nil
}
