package treequery

import "fmt"

// IntegrityError reports a broken parent/child invariant or a node that is
// reachable more than once (a cycle or shared subtree). Child is nil when
// the offending child slot itself holds nil.
type IntegrityError struct {
	Parent Node
	Child  Node
	Index  int
	Reason string
}

func (e *IntegrityError) Error() string {
	if e.Child == nil {
		return fmt.Sprintf("treequery: integrity violation at child %d of %s: %s",
			e.Index, e.Parent.Kind(), e.Reason)
	}
	return fmt.Sprintf("treequery: integrity violation at child %d (kind %s of %s): %s",
		e.Index, e.Child.Kind(), e.Parent.Kind(), e.Reason)
}

// Verify walks the whole tree under root and checks that every child's
// Parent() points back at its structural parent, and that no node is
// reachable twice. Queries do not run this check themselves; callers that
// transform trees should Verify before querying again.
func Verify(root Node) error {
	if root == nil {
		return ErrNilNode
	}
	seen := map[Node]bool{root: true}
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, c := range n.Children() {
			if c == nil {
				return &IntegrityError{Parent: n, Index: i, Reason: "nil child"}
			}
			if c.Parent() != n {
				return &IntegrityError{Parent: n, Child: c, Index: i, Reason: "parent link does not point at structural parent"}
			}
			if seen[c] {
				return &IntegrityError{Parent: n, Child: c, Index: i, Reason: "node reachable twice"}
			}
			seen[c] = true
			stack = append(stack, c)
		}
	}
	return nil
}
