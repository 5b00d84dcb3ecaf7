package rules

import (
	"fmt"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/treequery"
)

// TopDeclsRule reports the outermost struct and interface type expressions
// of a file. It rides on the Topmost axis so a struct embedded inside
// another struct's field list is not double-reported: once the outer type
// expression matches, its subtree is pruned.
type TopDeclsRule struct{}

func NewTopDeclsRule() *TopDeclsRule { return &TopDeclsRule{} }

func (*TopDeclsRule) Name() string { return "topdecls" }

func (*TopDeclsRule) Kinds() treequery.KindSet {
	return treequery.Kinds(gotree.KindStruct, gotree.KindInterface)
}

func (r *TopDeclsRule) Check(file *gotree.SourceNode) ([]Finding, error) {
	tops, err := treequery.Topmost(file, r.Kinds(), nil)
	if err != nil {
		return nil, err
	}

	var out []Finding
	for _, n := range tops {
		sn := n.(*gotree.SourceNode)
		out = append(out, Finding{
			Rule:     r.Name(),
			Path:     file.Path(),
			Line:     sn.StartLine(),
			Symbol:   declaredName(sn),
			Kind:     string(sn.Kind()),
			Severity: SevInfo,
			Message:  fmt.Sprintf("topmost %s declaration %s", sn.Kind(), declaredName(sn)),
		})
	}
	return out, nil
}

// declaredName walks up to the enclosing type spec; anonymous type
// expressions (struct literals in signatures etc.) report as "_".
func declaredName(n *gotree.SourceNode) string {
	ancs, err := treequery.AncestorsOfKind(n, gotree.KindType)
	if err != nil || len(ancs) == 0 {
		return "_"
	}
	return ancs[0].(*gotree.SourceNode).Name()
}
