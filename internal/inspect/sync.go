package inspect

import (
	"inspect3d/internal/undo"
)

// SyncPoint batches the dirty signals of an edit gesture into one undo
// transaction. At most one transaction is open per SyncPoint at a time;
// the gesture token decides whether a new dirty signal coalesces into the
// open transaction or closes it and starts a fresh one.
type SyncPoint struct {
	stack   *undo.Stack
	targets []undo.Snapshotter
	label   string

	open  bool
	token any
}

// NewSyncPoint builds a sync point over the snapshot-capable selected
// objects. Objects that cannot snapshot are silently excluded; with no
// targets at all the sync point degrades to a no-op.
func NewSyncPoint(stack *undo.Stack, label string, objects []any) *SyncPoint {
	sp := &SyncPoint{stack: stack, label: label}
	for _, obj := range objects {
		if s, ok := obj.(undo.Snapshotter); ok {
			sp.targets = append(sp.targets, s)
		}
	}
	return sp
}

// BeginEdit is called on every dirty signal, before the value applies.
// First signal of a gesture opens the transaction and captures the
// before-snapshots; same-token signals coalesce; a token change closes
// the old transaction before the new one opens.
func (s *SyncPoint) BeginEdit(token any) {
	if s.stack == nil || len(s.targets) == 0 {
		return
	}
	if s.open && s.token != token {
		s.CloseEdit()
	}
	if !s.open {
		s.stack.RecordMultiBegin(s.targets, s.label)
		s.open = true
		s.token = token
	}
}

// CloseEdit finalizes the open transaction, recording the batch as one
// atomic undo action. Safe to call with nothing open.
func (s *SyncPoint) CloseEdit() {
	if !s.open {
		return
	}
	s.stack.RecordMultiEnd(s.targets)
	s.open = false
	s.token = nil
}

// Open reports whether a transaction is in flight.
func (s *SyncPoint) Open() bool { return s.open }

// Close force-closes the transaction during teardown so a half-open
// transaction can never leak past the editor's lifetime.
func (s *SyncPoint) Close() { s.CloseEdit() }
