package rules

import (
	"fmt"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/treequery"
)

// SymbolsRule reports metadata for every named declaration in a file:
// funcs, methods and type declarations with their line spans.
type SymbolsRule struct{}

func NewSymbolsRule() *SymbolsRule { return &SymbolsRule{} }

func (*SymbolsRule) Name() string { return "symbols" }

func (*SymbolsRule) Kinds() treequery.KindSet {
	return treequery.Kinds(gotree.KindFunc, gotree.KindMethod, gotree.KindType)
}

func (r *SymbolsRule) Check(file *gotree.SourceNode) ([]Finding, error) {
	named := func(n treequery.Node) bool {
		return n.(*gotree.SourceNode).Name() != "" // skip func literals
	}
	nodes, err := treequery.Descendants(file, r.Kinds(), named)
	if err != nil {
		return nil, err
	}

	var out []Finding
	for _, n := range nodes {
		sn := n.(*gotree.SourceNode)
		out = append(out, Finding{
			Rule:     r.Name(),
			Path:     file.Path(),
			Line:     sn.StartLine(),
			Symbol:   sn.Name(),
			Kind:     string(sn.Kind()),
			Severity: SevInfo,
			Message:  fmt.Sprintf("%s %s spans lines %d-%d", sn.Kind(), sn.Name(), sn.StartLine(), sn.EndLine()),
		})
	}
	return out, nil
}
