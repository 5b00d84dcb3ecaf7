package rules

import (
	"fmt"
	"strings"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/treequery"
)

// SQLCallsRule reports database/sql-style query call sites: .Query,
// .QueryRow, .QueryContext, .Exec and .ExecContext calls whose first
// literal argument looks like a SQL statement.
type SQLCallsRule struct{}

func NewSQLCallsRule() *SQLCallsRule { return &SQLCallsRule{} }

func (*SQLCallsRule) Name() string { return "sqlcalls" }

func (*SQLCallsRule) Kinds() treequery.KindSet {
	return treequery.Kinds(gotree.KindCall)
}

var sqlMethods = []string{".Query", ".QueryRow", ".QueryContext", ".QueryRowContext", ".Exec", ".ExecContext"}

var sqlVerbs = []string{"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER"}

func (r *SQLCallsRule) Check(file *gotree.SourceNode) ([]Finding, error) {
	calls, err := treequery.Descendants(file, r.Kinds(), func(n treequery.Node) bool {
		return isSQLMethod(n.(*gotree.SourceNode).Name())
	})
	if err != nil {
		return nil, err
	}

	var out []Finding
	for _, n := range calls {
		call := n.(*gotree.SourceNode)
		stmt := firstLiteral(call)
		verb := sqlVerb(stmt)
		if verb == "" {
			continue // query builder or prepared statement; not ours to guess
		}
		out = append(out, Finding{
			Rule:     r.Name(),
			Path:     file.Path(),
			Line:     call.StartLine(),
			Symbol:   enclosingSymbol(call),
			Kind:     string(gotree.KindCall),
			Severity: SevInfo,
			Message:  fmt.Sprintf("%s statement issued via %s", verb, call.Name()),
		})
	}
	return out, nil
}

func isSQLMethod(callee string) bool {
	for _, m := range sqlMethods {
		if strings.HasSuffix(callee, m) {
			return true
		}
	}
	return false
}

// sqlVerb returns the leading SQL keyword of a quoted statement literal,
// or "" if the literal does not look like SQL.
func sqlVerb(lit string) string {
	s := strings.Trim(lit, "`\"")
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, v := range sqlVerbs {
		if strings.HasPrefix(s, v+" ") || s == v {
			return v
		}
	}
	return ""
}
