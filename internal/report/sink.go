// Package report writes rule findings to pluggable sinks. The engine and
// the rules never print; everything human-facing goes through a Sink so
// traversal logic stays testable against a buffer.
package report

import "github.com/sourcescout/treescout/internal/rules"

type Sink interface {
	Write(findings []rules.Finding) error
	Close() error
}
