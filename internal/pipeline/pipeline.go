package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/report"
	"github.com/sourcescout/treescout/internal/rules"
	"github.com/sourcescout/treescout/internal/treequery"
)

// Options carries run metadata stamped onto every finding.
type Options struct {
	RepoName   string
	CommitHash string
}

type Pipeline struct {
	Reader gotree.SourceReader
	Rules  []rules.Rule
	Sink   report.Sink
}

func New(reader gotree.SourceReader, rs []rules.Rule, sink report.Sink) *Pipeline {
	return &Pipeline{Reader: reader, Rules: rs, Sink: sink}
}

func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	// A filter naming a kind the producer never emits fails the run before
	// any file is touched.
	for _, r := range p.Rules {
		if err := r.Kinds().CheckAgainst(gotree.Universe); err != nil {
			return fmt.Errorf("rule %s: %w", r.Name(), err)
		}
	}

	units, err := p.Reader.List()
	if err != nil {
		return err
	}

	var findings []rules.Finding
	for _, fu := range units {
		if err := ctx.Err(); err != nil {
			return err
		}
		file := gotree.FromFile(fu)
		if err := treequery.Verify(file); err != nil {
			return fmt.Errorf("%s: %w", fu.RelPath, err)
		}
		for _, r := range p.Rules {
			fs, err := r.Check(file)
			if err != nil {
				return fmt.Errorf("rule %s on %s: %w", r.Name(), fu.RelPath, err)
			}
			for i := range fs {
				fs[i].Repo = opts.RepoName
				fs[i].Commit = opts.CommitHash
			}
			findings = append(findings, fs...)
		}
	}

	// Stable order: path asc, line asc, rule asc
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Rule < findings[j].Rule
	})

	if err := p.Sink.Write(findings); err != nil {
		return err
	}
	return p.Sink.Close()
}
