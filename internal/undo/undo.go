// Package undo provides the editor's shared undo/redo stack. Actions are
// appended by whoever currently owns the open transaction; the stack itself
// does no locking because the editor runs single-threaded.
package undo

import (
	"fmt"
	"reflect"
)

const maxStack = 50

// Action is one undoable step.
type Action interface {
	Label() string
	Undo() error
	Redo() error
}

// Snapshotter is implemented by objects whose full editable state can be
// captured before an edit gesture and restored on undo.
type Snapshotter interface {
	StateID() uint64
	CaptureState() (any, error)
	RestoreState(state any) error
}

// Stack is a bounded undo/redo stack.
type Stack struct {
	undo []Action
	redo []Action

	// open multi-object transaction, at most one at a time
	recording *multiAction
}

func NewStack() *Stack {
	return &Stack{undo: make([]Action, 0, maxStack)}
}

// Add appends a completed action and clears the redo history.
func (s *Stack) Add(a Action) {
	if len(s.undo) >= maxStack {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, a)
	s.redo = s.redo[:0]
}

// RecordMultiBegin opens a transaction over objects, capturing their
// before-state immediately. A transaction already open is finalized first
// so a snapshot is never lost.
func (s *Stack) RecordMultiBegin(objects []Snapshotter, label string) {
	if s.recording != nil {
		s.RecordMultiEnd(s.recording.objects)
	}
	m := &multiAction{label: label, objects: objects}
	for _, obj := range objects {
		state, err := obj.CaptureState()
		if err != nil {
			fmt.Printf("undo: capture %d failed: %v\n", obj.StateID(), err)
		}
		m.before = append(m.before, state)
	}
	s.recording = m
}

// RecordMultiEnd closes the open transaction, capturing the after-state.
// The action is recorded only if something actually changed.
func (s *Stack) RecordMultiEnd(objects []Snapshotter) {
	m := s.recording
	if m == nil {
		return
	}
	s.recording = nil
	for _, obj := range m.objects {
		state, err := obj.CaptureState()
		if err != nil {
			fmt.Printf("undo: capture %d failed: %v\n", obj.StateID(), err)
		}
		m.after = append(m.after, state)
	}
	if reflect.DeepEqual(m.before, m.after) {
		return
	}
	s.Add(m)
}

// Recording reports whether a multi-object transaction is open.
func (s *Stack) Recording() bool { return s.recording != nil }

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }
func (s *Stack) Len() int      { return len(s.undo) }

// Undo pops and reverts the most recent action.
func (s *Stack) Undo() error {
	if len(s.undo) == 0 {
		return nil
	}
	a := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	if err := a.Undo(); err != nil {
		return fmt.Errorf("undo %q: %w", a.Label(), err)
	}
	s.redo = append(s.redo, a)
	return nil
}

// Redo re-applies the most recently undone action.
func (s *Stack) Redo() error {
	if len(s.redo) == 0 {
		return nil
	}
	a := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	if err := a.Redo(); err != nil {
		return fmt.Errorf("redo %q: %w", a.Label(), err)
	}
	s.undo = append(s.undo, a)
	return nil
}

// multiAction is a batched before/after snapshot of several objects,
// recorded as one atomic step.
type multiAction struct {
	label   string
	objects []Snapshotter
	before  []any
	after   []any
}

func (m *multiAction) Label() string { return m.label }

func (m *multiAction) Undo() error { return m.restore(m.before) }
func (m *multiAction) Redo() error { return m.restore(m.after) }

func (m *multiAction) restore(states []any) error {
	for i, obj := range m.objects {
		if i >= len(states) || states[i] == nil {
			continue
		}
		if err := obj.RestoreState(states[i]); err != nil {
			return err
		}
	}
	return nil
}
