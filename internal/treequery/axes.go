package treequery

// Axis functions. Each takes a start node, a kind filter (nil = any kind)
// and a predicate (nil = always true), and returns the matching nodes in
// the axis's documented order. No match is an empty slice, never an error;
// errors only signal caller preconditions. The descendant walks use an
// explicit stack rather than recursion so adversarially deep trees cannot
// exhaust the call stack.

// ChildrenOf returns the matching immediate children of start, in document
// order.
func ChildrenOf(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	var out []Node
	for _, c := range start.Children() {
		if matches(c, filter, pred) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Descendants returns all matching proper descendants of start in pre-order.
func Descendants(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	var out []Node
	stack := pushReversed(nil, start.Children())
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if matches(n, filter, pred) {
			out = append(out, n)
		}
		stack = pushReversed(stack, n.Children())
	}
	return out, nil
}

// DescendantsOrSelf is Descendants with start itself tested first.
func DescendantsOrSelf(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	var out []Node
	if matches(start, filter, pred) {
		out = append(out, start)
	}
	rest, err := Descendants(start, filter, pred)
	if err != nil {
		return nil, err
	}
	return append(out, rest...), nil
}

// Ancestors returns the matching proper ancestors of start, nearest first,
// root last.
func Ancestors(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	var out []Node
	for p := start.Parent(); p != nil; p = p.Parent() {
		if matches(p, filter, pred) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AncestorsOrSelf is Ancestors with start itself tested first.
func AncestorsOrSelf(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	var out []Node
	if matches(start, filter, pred) {
		out = append(out, start)
	}
	rest, err := Ancestors(start, filter, pred)
	if err != nil {
		return nil, err
	}
	return append(out, rest...), nil
}

// Topmost returns, in pre-order, the outermost matching descendants of
// start: once a node matches, its subtree is not descended into, so nested
// matches beneath it are suppressed. Non-matching nodes still have their
// children explored, and sibling branches are unaffected by a match
// elsewhere. The kind filter applies before the predicate on each node.
func Topmost(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	var out []Node
	stack := pushReversed(nil, start.Children())
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if matches(n, filter, pred) {
			out = append(out, n)
			continue // prune: do not descend into a match
		}
		stack = pushReversed(stack, n.Children())
	}
	return out, nil
}

// TopmostOrSelf tests start first: if it matches, the result is exactly
// [start] and nothing below is visited. Otherwise it behaves as Topmost.
func TopmostOrSelf(start Node, filter KindSet, pred Predicate) ([]Node, error) {
	if err := checkQuery(start, filter); err != nil {
		return nil, err
	}
	if matches(start, filter, pred) {
		return []Node{start}, nil
	}
	return Topmost(start, filter, pred)
}

// Convenience forms: identical to the predicate-taking forms called with a
// nil predicate (same elements, same order).

func ChildrenOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return ChildrenOf(start, Kinds(kinds...), nil)
}

func DescendantsOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return Descendants(start, Kinds(kinds...), nil)
}

func DescendantsOrSelfOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return DescendantsOrSelf(start, Kinds(kinds...), nil)
}

func AncestorsOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return Ancestors(start, Kinds(kinds...), nil)
}

func AncestorsOrSelfOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return AncestorsOrSelf(start, Kinds(kinds...), nil)
}

func TopmostOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return Topmost(start, Kinds(kinds...), nil)
}

func TopmostOrSelfOfKind(start Node, kinds ...Kind) ([]Node, error) {
	return TopmostOrSelf(start, Kinds(kinds...), nil)
}

// pushReversed pushes children right-to-left so the leftmost child is
// popped first, preserving document order in a stack-driven pre-order walk.
func pushReversed(stack []Node, children []Node) []Node {
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}
	return stack
}
