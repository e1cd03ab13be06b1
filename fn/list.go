package fn

// List is a doubly linked list of values of type V. It mirrors the
// standard library's container/list but carries its element type, so
// callers never touch interface{} or type assertions. The zero List is
// not ready for use; construct with NewList.
type List[V any] struct {
	// root is the sentinel node. root.next is the front of the list
	// and root.prev is the back.
	root Node[V]

	len int
}

// Node is an element of a List.
type Node[V any] struct {
	next, prev *Node[V]

	// list is the List this node currently belongs to.
	list *List[V]

	// Value is the payload carried by this node.
	Value V
}

// Next returns the next list node or nil.
func (n *Node[V]) Next() *Node[V] {
	if p := n.next; n.list != nil && p != &n.list.root {
		return p
	}

	return nil
}

// Prev returns the previous list node or nil.
func (n *Node[V]) Prev() *Node[V] {
	if p := n.prev; n.list != nil && p != &n.list.root {
		return p
	}

	return nil
}

// NewList returns an initialized empty List.
func NewList[V any]() *List[V] {
	return new(List[V]).Init()
}

// Init initializes or clears the list.
func (l *List[V]) Init() *List[V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0

	return l
}

// Len returns the number of nodes in the list. The complexity is O(1).
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first node of the list or nil if the list is
// empty.
func (l *List[V]) Front() *Node[V] {
	if l.len == 0 {
		return nil
	}

	return l.root.next
}

// Back returns the last node of the list or nil if the list is empty.
func (l *List[V]) Back() *Node[V] {
	if l.len == 0 {
		return nil
	}

	return l.root.prev
}

// lazyInit lazily initializes a zero List value.
func (l *List[V]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// insert inserts n after at, increments l.len, and returns n.
func (l *List[V]) insert(n, at *Node[V]) *Node[V] {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	n.list = l
	l.len++

	return n
}

// insertValue is a convenience wrapper for
// insert(&Node[V]{Value: v}, at).
func (l *List[V]) insertValue(v V, at *Node[V]) *Node[V] {
	return l.insert(&Node[V]{Value: v}, at)
}

// remove removes n from its list and decrements l.len.
func (l *List[V]) remove(n *Node[V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.list = nil
	l.len--
}

// move moves n to the position after at.
func (l *List[V]) move(n, at *Node[V]) {
	if n == at {
		return
	}

	n.prev.next = n.next
	n.next.prev = n.prev

	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
}

// Remove removes n from l if n is a node of list l. It returns the
// node's value.
func (l *List[V]) Remove(n *Node[V]) V {
	if n.list == l {
		l.remove(n)
	}

	return n.Value
}

// PushFront inserts a new node with value v at the front of the list
// and returns the new node.
func (l *List[V]) PushFront(v V) *Node[V] {
	l.lazyInit()
	return l.insertValue(v, &l.root)
}

// PushBack inserts a new node with value v at the back of the list and
// returns the new node.
func (l *List[V]) PushBack(v V) *Node[V] {
	l.lazyInit()
	return l.insertValue(v, l.root.prev)
}

// InsertBefore inserts a new node with value v immediately before mark
// and returns the new node. If mark is not a node of l, the list is
// not modified and nil is returned.
func (l *List[V]) InsertBefore(v V, mark *Node[V]) *Node[V] {
	if mark.list != l {
		return nil
	}

	return l.insertValue(v, mark.prev)
}

// InsertAfter inserts a new node with value v immediately after mark
// and returns the new node. If mark is not a node of l, the list is
// not modified and nil is returned.
func (l *List[V]) InsertAfter(v V, mark *Node[V]) *Node[V] {
	if mark.list != l {
		return nil
	}

	return l.insertValue(v, mark)
}

// MoveToFront moves node n to the front of the list. If n is not a
// node of l, the list is not modified.
func (l *List[V]) MoveToFront(n *Node[V]) {
	if n.list != l || l.root.next == n {
		return
	}

	l.move(n, &l.root)
}

// MoveToBack moves node n to the back of the list. If n is not a node
// of l, the list is not modified.
func (l *List[V]) MoveToBack(n *Node[V]) {
	if n.list != l || l.root.prev == n {
		return
	}

	l.move(n, l.root.prev)
}

// MoveBefore moves node n to its new position before mark. If n or
// mark is not a node of l, or n == mark, the list is not modified.
func (l *List[V]) MoveBefore(n, mark *Node[V]) {
	if n.list != l || n == mark || mark.list != l {
		return
	}

	l.move(n, mark.prev)
}

// MoveAfter moves node n to its new position after mark. If n or mark
// is not a node of l, or n == mark, the list is not modified.
func (l *List[V]) MoveAfter(n, mark *Node[V]) {
	if n.list != l || n == mark || mark.list != l {
		return
	}

	l.move(n, mark)
}

// PushBackList inserts a copy of another list at the back of list l.
// The lists l and other may be the same.
func (l *List[V]) PushBackList(other *List[V]) {
	l.lazyInit()
	for i, n := other.Len(), other.Front(); i > 0; i, n = i-1, n.Next() {
		l.insertValue(n.Value, l.root.prev)
	}
}

// PushFrontList inserts a copy of another list at the front of list l.
// The lists l and other may be the same.
func (l *List[V]) PushFrontList(other *List[V]) {
	l.lazyInit()
	for i, n := other.Len(), other.Back(); i > 0; i, n = i-1, n.Prev() {
		l.insertValue(n.Value, &l.root)
	}
}

// MapList is the functor capability for List: it builds a fresh list
// whose values are the images of the original values, in order. The
// receiver is left untouched, matching the no-mutation convention the
// container operations in this package follow.
func MapList[A, B any](f func(A) B) func(*List[A]) *List[B] {
	return func(l *List[A]) *List[B] {
		out := NewList[B]()
		for n := l.Front(); n != nil; n = n.Next() {
			out.PushBack(f(n.Value))
		}

		return out
	}
}

// ToSlice copies the list's values into a slice, front to back.
func (l *List[V]) ToSlice() []V {
	out := make([]V, 0, l.len)
	for n := l.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value)
	}

	return out
}
