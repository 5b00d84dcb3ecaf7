package gotree

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/sourcescout/treescout/internal/treequery"
)

// FromFile translates a parsed file into a SourceNode tree rooted at a
// KindFile node. The walk mirrors ast.Inspect's enter/leave pairing with an
// explicit frame stack; a node's parent link is wired when its parent frame
// is popped, i.e. only after all of the parent's children exist.
func FromFile(fu FileUnit) *SourceNode {
	root := &SourceNode{
		kind:      KindFile,
		name:      fu.File.Name.Name,
		path:      fu.RelPath,
		startLine: fu.Fset.Position(fu.File.Pos()).Line,
		endLine:   fu.Fset.Position(fu.File.End()).Line,
	}

	type frame struct {
		an ast.Node
		sn *SourceNode
	}
	stack := []frame{{an: fu.File, sn: root}}

	ast.Inspect(fu.File, func(n ast.Node) bool {
		if n == nil {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range top.sn.children {
				c.(*SourceNode).parent = top.sn
			}
			return true
		}
		if n == ast.Node(fu.File) {
			return true // root frame is pre-pushed
		}
		parent := stack[len(stack)-1]
		sn := &SourceNode{
			startLine: fu.Fset.Position(n.Pos()).Line,
			endLine:   fu.Fset.Position(n.End()).Line,
		}
		sn.kind, sn.name, sn.value = classify(n, parent.an)
		parent.sn.children = append(parent.sn.children, treequery.Node(sn))
		stack = append(stack, frame{an: n, sn: sn})
		return true
	})
	return root
}

// classify maps an ast node to its kind plus the name/value metadata rules
// report on. parentAst disambiguates value specs (const vs var group).
func classify(n ast.Node, parentAst ast.Node) (treequery.Kind, string, string) {
	switch t := n.(type) {
	case *ast.FuncDecl:
		if t.Recv != nil && len(t.Recv.List) > 0 {
			return KindMethod, receiverBase(t.Recv.List[0].Type) + "." + t.Name.Name, ""
		}
		return KindFunc, t.Name.Name, ""
	case *ast.FuncLit:
		return KindFunc, "", ""
	case *ast.TypeSpec:
		return KindType, t.Name.Name, ""
	case *ast.StructType:
		return KindStruct, "", ""
	case *ast.InterfaceType:
		return KindInterface, "", ""
	case *ast.ImportSpec:
		return KindImport, strings.Trim(t.Path.Value, `"`), ""
	case *ast.ValueSpec:
		name := identList(t.Names)
		if gd, ok := parentAst.(*ast.GenDecl); ok && gd.Tok == token.CONST {
			return KindConst, name, ""
		}
		return KindVar, name, ""
	case *ast.Field:
		return KindField, identList(t.Names), ""
	case *ast.CallExpr:
		return KindCall, exprPath(t.Fun), ""
	case *ast.SelectorExpr:
		return KindSelector, exprPath(t), ""
	case *ast.Ident:
		return KindIdent, t.Name, ""
	case *ast.BasicLit:
		return KindLiteral, "", t.Value
	case *ast.CompositeLit:
		return KindComposite, exprPath(t.Type), ""
	case *ast.BlockStmt:
		return KindBlock, "", ""
	case *ast.AssignStmt:
		return KindAssign, "", ""
	case *ast.ReturnStmt:
		return KindReturn, "", ""
	case *ast.IfStmt:
		return KindIf, "", ""
	case *ast.ForStmt:
		return KindFor, "", ""
	case *ast.RangeStmt:
		return KindRange, "", ""
	case *ast.SwitchStmt, *ast.TypeSwitchStmt:
		return KindSwitch, "", ""
	case *ast.GoStmt:
		return KindGo, "", ""
	case *ast.DeferStmt:
		return KindDefer, "", ""
	default:
		return KindOther, "", ""
	}
}

// exprPath renders a dotted callee/selector path: "http.HandleFunc",
// "s.mux.Handle". Non-path shapes (calls on call results, index
// expressions) collapse to their tail where possible, else "".
func exprPath(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		base := exprPath(t.X)
		if base == "" {
			return t.Sel.Name
		}
		return base + "." + t.Sel.Name
	case *ast.StarExpr:
		return exprPath(t.X)
	case *ast.IndexExpr:
		return exprPath(t.X)
	case *ast.ParenExpr:
		return exprPath(t.X)
	default:
		return ""
	}
}

// receiverBase extracts "T" from a receiver type like *T, T, or T[...].
func receiverBase(e ast.Expr) string {
	if name := exprPath(e); name != "" {
		return name
	}
	return "_"
}

func identList(ids []*ast.Ident) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.Name)
	}
	return strings.Join(names, ", ")
}
