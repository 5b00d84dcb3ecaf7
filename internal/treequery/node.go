// Package treequery implements XPath-style axis queries over an immutable,
// parent-linked tree of kinded nodes. It is agnostic to what the nodes mean:
// producers (see internal/gotree) build the tree, callers filter it by kind
// and predicate along an axis.
package treequery

import "errors"

// Kind discriminates node variants (e.g. "func", "call", "literal").
// Each producer declares its own closed set of kinds.
type Kind string

// Node is one element of an immutable tree. Children are in document order.
// Parent returns nil for the root. For every child c of n, c.Parent() == n
// must hold before any query runs; the traversals do not re-check it
// (Verify does, as a separate utility).
type Node interface {
	Kind() Kind
	Children() []Node
	Parent() Node
}

// Predicate is a boolean test over a node. It is only evaluated on nodes
// that already passed the kind filter. A nil Predicate means "always true".
type Predicate func(Node) bool

// KindSet is a kind filter. A nil or empty set matches every kind.
type KindSet map[Kind]struct{}

// Kinds builds a KindSet from the given kinds.
func Kinds(kinds ...Kind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Matches reports whether k passes the filter.
func (s KindSet) Matches(k Kind) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[k]
	return ok
}

// CheckAgainst validates the filter against a producer's declared universe
// of kinds. A filter naming a kind the producer never emits is a caller
// error, not an empty result waiting to be misread.
func (s KindSet) CheckAgainst(universe KindSet) error {
	for k := range s {
		if !universe.Matches(k) {
			return &UnknownKindError{Kind: k}
		}
	}
	return nil
}

var (
	// ErrNilNode is returned when a query starts from a nil node.
	ErrNilNode = errors.New("treequery: nil start node")

	// ErrBadFilter is returned when a filter contains the empty kind.
	ErrBadFilter = errors.New("treequery: filter contains empty kind")
)

// UnknownKindError reports a filter kind outside a checked universe.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return "treequery: unknown kind " + string(e.Kind)
}

// ErrUnknownKind matches any *UnknownKindError via errors.Is.
var ErrUnknownKind = errors.New("treequery: unknown kind")

func (e *UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

// checkQuery validates the call-boundary preconditions shared by every axis.
func checkQuery(start Node, filter KindSet) error {
	if start == nil {
		return ErrNilNode
	}
	if _, ok := filter[Kind("")]; ok {
		return ErrBadFilter
	}
	return nil
}

// matches applies the kind filter, then the predicate.
func matches(n Node, filter KindSet, pred Predicate) bool {
	if !filter.Matches(n.Kind()) {
		return false
	}
	return pred == nil || pred(n)
}
