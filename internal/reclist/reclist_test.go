package reclist

import "testing"

func TestPushFrontOrdersMostRecentFirst(t *testing.T) {
	l := New[int]()
	l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", l.Len())
	}
	// PopBack should return least-recently-pushed first: 1, 2, 3.
	if n := l.PopBack(); n == nil || n.Value != 1 {
		t.Fatalf("PopBack() = %v; want 1", n)
	}
	if n := l.PopBack(); n == nil || n.Value != 2 {
		t.Fatalf("PopBack() = %v; want 2", n)
	}
	if n := l.PopBack(); n == nil || n.Value != 3 {
		t.Fatalf("PopBack() = %v; want 3", n)
	}
	if n := l.PopBack(); n != nil {
		t.Fatalf("PopBack() on empty list = %v; want nil", n)
	}
}

func TestMoveToFrontPromotes(t *testing.T) {
	l := New[int]()
	a := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)

	l.MoveToFront(a)
	// a is now MRU; tail order should be 2 then 3.
	if n := l.PopBack(); n == nil || n.Value != 2 {
		t.Fatalf("PopBack() = %v; want 2", n)
	}
	if n := l.PopBack(); n == nil || n.Value != 3 {
		t.Fatalf("PopBack() = %v; want 3", n)
	}
	if n := l.PopBack(); n == nil || n.Value != 1 {
		t.Fatalf("PopBack() = %v; want 1 (moved to front)", n)
	}
}

func TestMoveToFrontNoOpWhenAlreadyHead(t *testing.T) {
	l := New[int]()
	a := l.PushFront(1)
	l.PushFront(2)
	l.MoveToFront(a) // a is tail, not head; promotes it
	l.MoveToFront(a) // a is already head now; should be a no-op, not corrupt the list
	if l.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", l.Len())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := New[int]()
	a := l.PushFront(1)
	l.PushFront(2)

	if !l.Remove(a) {
		t.Fatalf("first Remove should report true")
	}
	if l.Remove(a) {
		t.Fatalf("second Remove of an already-unlinked node should report false")
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", l.Len())
	}
}

func TestMoveToFronAfterRemoveIsNoOp(t *testing.T) {
	l := New[int]()
	a := l.PushFront(1)
	l.PushFront(2)
	l.Remove(a)

	l.MoveToFront(a) // must not re-link a removed node
	if l.Len() != 1 {
		t.Fatalf("Len() = %d; want 1 after MoveToFront on a removed node", l.Len())
	}
}

func TestPopBackRaceWithRemove(t *testing.T) {
	l := New[int]()
	a := l.PushFront(1)
	n := l.PopBack()
	if n != a {
		t.Fatalf("PopBack() returned a different node than expected")
	}
	// a is now unlinked; Remove must report false, not panic or corrupt state.
	if l.Remove(a) {
		t.Fatalf("Remove on an already-popped node should report false")
	}
}
