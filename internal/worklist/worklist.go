// Package worklist provides uniqueness-preserving work-list containers for
// iterative traversal algorithms. An element cannot be queued twice while it
// is already a member; popping removes membership, so an element may be
// re-inserted later.
package worklist

import "reflect"

// Item is the constraint on work-list elements. An item must be attached to
// its parent structure before it is queued; inserting an item whose Parent
// is nil is a caller bug, not a recoverable condition.
type Item interface {
	comparable
	Parent() any
}

// detached reports whether a Parent value is nil. A typed nil pointer still
// counts as detached.
func detached(parent any) bool {
	if parent == nil {
		return true
	}
	v := reflect.ValueOf(parent)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Queue is a FIFO work-list that silently drops duplicate insertions.
type Queue[T Item] struct {
	members map[T]struct{}
	order   []T
}

// NewQueue creates an empty Queue.
func NewQueue[T Item]() *Queue[T] {
	return &Queue[T]{members: make(map[T]struct{})}
}

// Insert adds item to the queue unless it is already a member.
// Panics if item has a nil parent.
func (q *Queue[T]) Insert(item T) {
	if _, ok := q.members[item]; ok {
		return
	}
	if detached(item.Parent()) {
		panic("worklist: insert of item with nil parent")
	}
	q.members[item] = struct{}{}
	q.order = append(q.order, item)
}

// Pop removes and returns the earliest-inserted surviving member.
// The second return value is false if the queue is empty. A popped item
// is no longer a member and may be inserted again.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.order) == 0 {
		return zero, false
	}
	item := q.order[0]
	q.order = q.order[1:]
	delete(q.members, item)
	return item, true
}

// Len returns the number of members.
func (q *Queue[T]) Len() int {
	return len(q.order)
}

// Empty reports whether the queue has no members.
func (q *Queue[T]) Empty() bool {
	return len(q.order) == 0
}

// Stack is a LIFO work-list that silently drops duplicate insertions.
type Stack[T Item] struct {
	members map[T]struct{}
	order   []T
}

// NewStack creates an empty Stack.
func NewStack[T Item]() *Stack[T] {
	return &Stack[T]{members: make(map[T]struct{})}
}

// Insert adds item to the stack unless it is already a member.
// Panics if item has a nil parent.
func (s *Stack[T]) Insert(item T) {
	if _, ok := s.members[item]; ok {
		return
	}
	if detached(item.Parent()) {
		panic("worklist: insert of item with nil parent")
	}
	s.members[item] = struct{}{}
	s.order = append(s.order, item)
}

// Pop removes and returns the most-recently-inserted member.
// The second return value is false if the stack is empty. A popped item
// is no longer a member and may be inserted again.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.order) == 0 {
		return zero, false
	}
	item := s.order[len(s.order)-1]
	s.order = s.order[:len(s.order)-1]
	delete(s.members, item)
	return item, true
}

// Reverse reverses the pop order in place. Membership is unchanged.
func (s *Stack[T]) Reverse() {
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
}

// Len returns the number of members.
func (s *Stack[T]) Len() int {
	return len(s.order)
}

// Empty reports whether the stack has no members.
func (s *Stack[T]) Empty() bool {
	return len(s.order) == 0
}
