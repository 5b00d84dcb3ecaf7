package report

import (
	"fmt"
	"io"

	"github.com/sourcescout/treescout/internal/rules"
	"github.com/sourcescout/treescout/internal/utils"
)

// TextSink renders findings as "path:line: [rule] message" lines.
type TextSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink { return &TextSink{w: w} }

func (s *TextSink) Write(findings []rules.Finding) error {
	for _, f := range findings {
		marker := utils.If(f.Severity == rules.SevWarn, "W").ElseIf(f.Severity == rules.SevInfo, "I").Else("-")
		if _, err := fmt.Fprintf(s.w, "%s %s:%d: [%s] %s\n", marker, f.Path, f.Line, f.Rule, f.Message); err != nil {
			return err
		}
	}
	return nil
}

func (s *TextSink) Close() error { return nil }
