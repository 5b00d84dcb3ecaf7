// Package rules holds the linter-style reports that run over gotree file
// trees. Each rule is a thin consumer of the treequery axes: filter some
// nodes, shape findings, no state between files.
package rules

import (
	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/treequery"
)

type Severity string

const (
	SevInfo Severity = "info"
	SevWarn Severity = "warn"
)

// Finding is one reported line of a rule run. Repo and Commit identify the
// run; the pipeline stamps them onto every finding.
type Finding struct {
	Rule     string   `json:"rule"`
	Repo     string   `json:"repo,omitempty"`
	Commit   string   `json:"commit,omitempty"`
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Symbol   string   `json:"symbol,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Severity Severity `json:"severity,omitempty"`
	Message  string   `json:"message"`
}

// Rule inspects one file tree at a time. Kinds declares every kind the
// rule filters on; the pipeline validates it against gotree.Universe
// before any file is checked, so a rule naming a kind the producer never
// emits fails the run up front instead of silently matching nothing.
type Rule interface {
	Name() string
	Kinds() treequery.KindSet
	Check(file *gotree.SourceNode) ([]Finding, error)
}
