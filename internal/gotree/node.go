// Package gotree builds treequery node trees from parsed Go source. It is
// the tree-producing collaborator for the exploratory tools in cmd/: no
// type checking, no symbol resolution, just the syntax shape plus enough
// metadata (names, literal text, line spans) for rules to report on.
package gotree

import "github.com/sourcescout/treescout/internal/treequery"

// SourceNode is the concrete tree element for Go source. Nodes are built
// once per file and never mutated; the parent link is set after a node's
// children exist and only serves upward traversal.
type SourceNode struct {
	kind      treequery.Kind
	name      string // identifier, callee path, or "" where not applicable
	value     string // literal text (KindLiteral only)
	path      string // rel path, set on KindFile
	startLine int
	endLine   int
	parent    *SourceNode
	children  []treequery.Node
}

func (n *SourceNode) Kind() treequery.Kind       { return n.kind }
func (n *SourceNode) Children() []treequery.Node { return n.children }

// Parent returns nil (the untyped interface nil) at the root.
func (n *SourceNode) Parent() treequery.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Name is the identifier attached to the node: declaration name for
// funcs/types/fields, "recv.Name" for methods, the rendered callee path
// for calls ("http.HandleFunc"), the identifier for idents.
func (n *SourceNode) Name() string { return n.name }

// Value is the source text of a literal node.
func (n *SourceNode) Value() string { return n.value }

// Path is the file-relative path; set on file nodes, empty elsewhere.
func (n *SourceNode) Path() string { return n.path }

func (n *SourceNode) StartLine() int { return n.startLine }
func (n *SourceNode) EndLine() int   { return n.endLine }

// File walks up to the enclosing file node, or nil if n is detached.
func (n *SourceNode) File() *SourceNode {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.kind == KindFile {
			return cur
		}
	}
	return nil
}
