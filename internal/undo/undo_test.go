package undo

import (
	"encoding/json"
	"testing"
)

// fakeObject implements Snapshotter over a single float payload.
type fakeObject struct {
	id    uint64
	Value float64
}

func (f *fakeObject) StateID() uint64 { return f.id }

func (f *fakeObject) CaptureState() (any, error) {
	return json.Marshal(f.Value)
}

func (f *fakeObject) RestoreState(state any) error {
	return json.Unmarshal(state.([]byte), &f.Value)
}

func TestMultiTransactionRoundTrip(t *testing.T) {
	s := NewStack()
	a := &fakeObject{id: 1, Value: 1}
	b := &fakeObject{id: 2, Value: 2}
	objs := []Snapshotter{a, b}

	s.RecordMultiBegin(objs, "edit values")
	a.Value = 10
	b.Value = 20
	s.RecordMultiEnd(objs)

	if s.Len() != 1 {
		t.Fatalf("expected 1 recorded action, got %d", s.Len())
	}

	if err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	if a.Value != 1 || b.Value != 2 {
		t.Errorf("undo did not restore before-state: %v %v", a.Value, b.Value)
	}

	if err := s.Redo(); err != nil {
		t.Fatal(err)
	}
	if a.Value != 10 || b.Value != 20 {
		t.Errorf("redo did not restore after-state: %v %v", a.Value, b.Value)
	}
}

func TestNoopTransactionNotRecorded(t *testing.T) {
	s := NewStack()
	a := &fakeObject{id: 1, Value: 5}
	objs := []Snapshotter{a}

	s.RecordMultiBegin(objs, "nothing")
	s.RecordMultiEnd(objs)

	if s.Len() != 0 {
		t.Errorf("unchanged transaction was recorded, stack len %d", s.Len())
	}
}

func TestReopenFinalizesPrevious(t *testing.T) {
	s := NewStack()
	a := &fakeObject{id: 1, Value: 1}
	objs := []Snapshotter{a}

	s.RecordMultiBegin(objs, "first")
	a.Value = 2
	// Second begin without an explicit end: the first transaction must be
	// finalized, not dropped.
	s.RecordMultiBegin(objs, "second")
	a.Value = 3
	s.RecordMultiEnd(objs)

	if s.Len() != 2 {
		t.Fatalf("expected 2 actions, got %d", s.Len())
	}

	s.Undo()
	if a.Value != 2 {
		t.Errorf("after first undo Value = %v, want 2", a.Value)
	}
	s.Undo()
	if a.Value != 1 {
		t.Errorf("after second undo Value = %v, want 1", a.Value)
	}
}

func TestAddClearsRedo(t *testing.T) {
	s := NewStack()
	a := &fakeObject{id: 1, Value: 1}
	objs := []Snapshotter{a}

	s.RecordMultiBegin(objs, "one")
	a.Value = 2
	s.RecordMultiEnd(objs)
	s.Undo()

	if !s.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	s.RecordMultiBegin(objs, "two")
	a.Value = 9
	s.RecordMultiEnd(objs)

	if s.CanRedo() {
		t.Error("new action should clear redo history")
	}
}

func TestStackCap(t *testing.T) {
	s := NewStack()
	a := &fakeObject{id: 1}
	for i := 0; i < maxStack+10; i++ {
		s.RecordMultiBegin([]Snapshotter{a}, "bump")
		a.Value++
		s.RecordMultiEnd([]Snapshotter{a})
	}
	if s.Len() != maxStack {
		t.Errorf("stack len = %d, want cap %d", s.Len(), maxStack)
	}
}
