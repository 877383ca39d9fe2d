package sim

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// KeyFunc extracts the ordering key of a task for a ReadySet.
// The key must not change while the task sits in the set.
type KeyFunc func(*Task) int64

// ReadySet is an ordered ready set: the minimum element is the task with the
// smallest key, ties going to the task admitted first.
type ReadySet struct {
	tree *redblacktree.Tree
	key  KeyFunc
}

// readyKey is used as a key in the red-black tree.
type readyKey struct {
	key int64
	seq int64
}

// compareReadyKeys implements the gods Comparator for readyKey.
func compareReadyKeys(a, b any) int {
	ka, kb := a.(readyKey), b.(readyKey)
	switch {
	case ka.key < kb.key:
		return -1
	case ka.key > kb.key:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// NewReadySet creates an empty ReadySet ordered by key.
func NewReadySet(key KeyFunc) *ReadySet {
	if key == nil {
		panic("NewReadySet: key must not be nil")
	}
	return &ReadySet{
		tree: redblacktree.NewWith(compareReadyKeys),
		key:  key,
	}
}

func (rs *ReadySet) keyOf(t *Task) readyKey {
	return readyKey{key: rs.key(t), seq: t.seq}
}

// Put inserts a task.
func (rs *ReadySet) Put(t *Task) {
	t.State = StateReady
	rs.tree.Put(rs.keyOf(t), t)
}

// Len returns the number of ready tasks.
func (rs *ReadySet) Len() int {
	return rs.tree.Size()
}

// Min returns the most eligible task without removing it, or nil when empty.
func (rs *ReadySet) Min() *Task {
	node := rs.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value.(*Task)
}

// PopMin removes and returns the most eligible task.
// Popping from an empty set is a policy bug and panics.
func (rs *ReadySet) PopMin() *Task {
	node := rs.tree.Left()
	if node == nil {
		panic("PopMin: ready set is empty")
	}
	rs.tree.Remove(node.Key)
	return node.Value.(*Task)
}

// Remove deletes a specific task from the set.
func (rs *ReadySet) Remove(t *Task) {
	rs.tree.Remove(rs.keyOf(t))
}

// Items returns the ready tasks in eligibility order.
func (rs *ReadySet) Items() []*Task {
	values := rs.tree.Values()
	out := make([]*Task, len(values))
	for i, v := range values {
		out[i] = v.(*Task)
	}
	return out
}

// RemoveIf drops every task for which fn returns true and returns them in eligibility order.
func (rs *ReadySet) RemoveIf(fn func(*Task) bool) []*Task {
	var removed []*Task
	for _, t := range rs.Items() {
		if fn(t) {
			rs.Remove(t)
			removed = append(removed, t)
		}
	}
	return removed
}
