package ds

// Stack is a singly-linked LIFO stack.
// The zero value is an empty stack ready to use. A Stack must not be copied
// after first use and is not safe for concurrent use.
type Stack[T any] struct {
	head link[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

type stackNode[T any] struct {
	value T
	next  link[T]
}

// link is either empty or owns the next node of the chain.
type link[T any] struct {
	node *stackNode[T]
}

func (l link[T]) isEmpty() bool {
	return l.node == nil
}

// take moves the link out, leaving an empty link behind.
func (l *link[T]) take() link[T] {
	old := *l
	*l = link[T]{}
	return old
}

func (s *Stack[T]) Push(v T) {
	node := &stackNode[T]{
		value: v,
		next:  s.head.take(),
	}
	s.head = link[T]{node: node}
}

// Pop removes the most recently pushed value.
// It returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	top := s.head.take()
	if top.isEmpty() {
		return zero, false
	}
	node := top.node
	s.head = node.next.take()
	v := node.value
	node.value = zero
	return v, true
}

// Reset releases every node, one at a time, leaving the stack empty.
func (s *Stack[T]) Reset() {
	var zero T
	cur := s.head.take()
	for !cur.isEmpty() {
		node := cur.node
		cur = node.next.take()
		node.value = zero
	}
}
