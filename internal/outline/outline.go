// Package outline renders a bodies-stripped overview of Go files: the
// top-level type, func and method declarations with their signatures, one
// per line. It selects declarations through the Topmost axis so func
// literals and locally declared types never show up.
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/treequery"
	"github.com/sourcescout/treescout/internal/utils"
)

// Entry is one outlined declaration.
type Entry struct {
	Symbol    string
	Kind      treequery.Kind
	Signature string // declaration text up to (excluding) the body brace
	Elided    bool   // true when a body was stripped
	StartLine int
	EndLine   int
}

// File outlines a single parsed file.
func File(fu gotree.FileUnit) ([]Entry, error) {
	root := gotree.FromFile(fu)
	decls, err := treequery.TopmostOfKind(root, gotree.KindFunc, gotree.KindMethod, gotree.KindType)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(fu.Src, "\n")
	var out []Entry
	for _, n := range decls {
		sn := n.(*gotree.SourceNode)
		sig, elided := signatureOf(lines, sn.StartLine(), sn.EndLine())
		out = append(out, Entry{
			Symbol:    sn.Name(),
			Kind:      sn.Kind(),
			Signature: sig,
			Elided:    elided,
			StartLine: sn.StartLine(),
			EndLine:   sn.EndLine(),
		})
	}
	return out, nil
}

// Write renders one file's outline.
func Write(w io.Writer, relPath string, entries []Entry) error {
	if _, err := fmt.Fprintf(w, "%s:\n", relPath); err != nil {
		return err
	}
	for _, e := range entries {
		text := e.Signature
		if e.Elided {
			text += " { ... }"
		}
		if _, err := fmt.Fprintf(w, "  %4d  %s\n", e.StartLine, text); err != nil {
			return err
		}
	}
	return nil
}

// signatureOf collects the declaration text from its first line up to the
// opening body brace, comments stripped. Brace-less declarations (aliases,
// grouped type specs) keep their full span.
func signatureOf(lines []string, start, end int) (string, bool) {
	var parts []string
	for i := start - 1; i < utils.Min(end, len(lines)); i++ {
		ln := stripLineComment(lines[i])
		if idx := strings.Index(ln, "{"); idx >= 0 {
			parts = append(parts, strings.TrimRight(ln[:idx], " \t"))
			return joinSignature(parts), true
		}
		parts = append(parts, ln)
	}
	return joinSignature(parts), false
}

func joinSignature(parts []string) string {
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func stripLineComment(s string) string {
	// good enough for signature lines; string literals with "//" do not
	// appear before a body brace
	if idx := strings.Index(s, "//"); idx >= 0 {
		return s[:idx]
	}
	return s
}
