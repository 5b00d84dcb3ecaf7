package gotree

import "github.com/sourcescout/treescout/internal/treequery"

// The closed set of kinds this producer emits. Anything in the Go grammar
// without its own kind maps to KindOther so filters stay a set-membership
// test, never reflection.
const (
	KindFile      treequery.Kind = "file"
	KindImport    treequery.Kind = "import"
	KindConst     treequery.Kind = "const"
	KindVar       treequery.Kind = "var"
	KindType      treequery.Kind = "type"
	KindStruct    treequery.Kind = "struct"
	KindInterface treequery.Kind = "interface"
	KindFunc      treequery.Kind = "func"
	KindMethod    treequery.Kind = "method"
	KindField     treequery.Kind = "field"
	KindBlock     treequery.Kind = "block"
	KindCall      treequery.Kind = "call"
	KindSelector  treequery.Kind = "selector"
	KindIdent     treequery.Kind = "ident"
	KindLiteral   treequery.Kind = "literal"
	KindComposite treequery.Kind = "composite"
	KindAssign    treequery.Kind = "assign"
	KindReturn    treequery.Kind = "return"
	KindIf        treequery.Kind = "if"
	KindFor       treequery.Kind = "for"
	KindRange     treequery.Kind = "range"
	KindSwitch    treequery.Kind = "switch"
	KindGo        treequery.Kind = "go"
	KindDefer     treequery.Kind = "defer"
	KindOther     treequery.Kind = "other"
)

// Universe lists every kind FromFile can emit. Rule filters are validated
// against it before a run.
var Universe = treequery.Kinds(
	KindFile, KindImport, KindConst, KindVar, KindType, KindStruct,
	KindInterface, KindFunc, KindMethod, KindField, KindBlock, KindCall,
	KindSelector, KindIdent, KindLiteral, KindComposite, KindAssign,
	KindReturn, KindIf, KindFor, KindRange, KindSwitch, KindGo, KindDefer,
	KindOther,
)
