package rules

import (
	"fmt"
	"strings"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/treequery"
)

// HTTPHandlersRule reports net/http handler registrations: http.Handle,
// http.HandleFunc, and any *.Handle / *.HandleFunc call (mux methods).
// Extra callee paths can be added via config for router libraries.
type HTTPHandlersRule struct {
	ExtraCallees []string
}

func NewHTTPHandlersRule(extra []string) *HTTPHandlersRule {
	return &HTTPHandlersRule{ExtraCallees: extra}
}

func (*HTTPHandlersRule) Name() string { return "httphandlers" }

func (*HTTPHandlersRule) Kinds() treequery.KindSet {
	return treequery.Kinds(gotree.KindCall)
}

func (r *HTTPHandlersRule) Check(file *gotree.SourceNode) ([]Finding, error) {
	calls, err := treequery.Descendants(file, r.Kinds(), func(n treequery.Node) bool {
		return r.isRegistration(n.(*gotree.SourceNode).Name())
	})
	if err != nil {
		return nil, err
	}

	var out []Finding
	for _, n := range calls {
		call := n.(*gotree.SourceNode)
		route := firstLiteral(call)
		msg := fmt.Sprintf("handler registered via %s", call.Name())
		if route != "" {
			msg = fmt.Sprintf("handler for %s registered via %s", route, call.Name())
		}
		out = append(out, Finding{
			Rule:     r.Name(),
			Path:     file.Path(),
			Line:     call.StartLine(),
			Symbol:   enclosingSymbol(call),
			Kind:     string(gotree.KindCall),
			Severity: SevInfo,
			Message:  msg,
		})
	}
	return out, nil
}

func (r *HTTPHandlersRule) isRegistration(callee string) bool {
	if callee == "" {
		return false
	}
	if callee == "http.Handle" || callee == "http.HandleFunc" {
		return true
	}
	if strings.HasSuffix(callee, ".Handle") || strings.HasSuffix(callee, ".HandleFunc") {
		return true
	}
	for _, extra := range r.ExtraCallees {
		if callee == extra {
			return true
		}
	}
	return false
}

// firstLiteral returns the text of the first literal argument under a call,
// typically the route pattern.
func firstLiteral(call *gotree.SourceNode) string {
	lits, err := treequery.DescendantsOfKind(call, gotree.KindLiteral)
	if err != nil || len(lits) == 0 {
		return ""
	}
	return lits[0].(*gotree.SourceNode).Value()
}

// enclosingSymbol names the func or method a node sits in, or "" at file
// scope.
func enclosingSymbol(n *gotree.SourceNode) string {
	ancs, err := treequery.Ancestors(n, treequery.Kinds(gotree.KindFunc, gotree.KindMethod), func(a treequery.Node) bool {
		return a.(*gotree.SourceNode).Name() != ""
	})
	if err != nil || len(ancs) == 0 {
		return ""
	}
	return ancs[0].(*gotree.SourceNode).Name()
}
