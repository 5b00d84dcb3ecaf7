package pipeline

import (
	"context"
	"errors"
	"go/parser"
	"go/token"
	"testing"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/rules"
	"github.com/sourcescout/treescout/internal/treequery"
)

type memReader struct {
	files map[string]string
	order []string
}

func (m *memReader) List() ([]gotree.FileUnit, error) {
	var out []gotree.FileUnit
	for _, rel := range m.order {
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, rel, m.files[rel], 0)
		if err != nil {
			return nil, err
		}
		out = append(out, gotree.FileUnit{
			Filename: rel, RelPath: rel, File: f, Fset: fset, Src: m.files[rel],
		})
	}
	return out, nil
}

type memSink struct {
	findings []rules.Finding
	closed   bool
}

func (s *memSink) Write(fs []rules.Finding) error { s.findings = append(s.findings, fs...); return nil }
func (s *memSink) Close() error                   { s.closed = true; return nil }

func TestRunCollectsSortedFindings(t *testing.T) {
	reader := &memReader{
		files: map[string]string{
			"b.go": "package p\n\nfunc Later() {}\n",
			"a.go": "package p\n\ntype T struct{}\n\nfunc Earlier() {}\n",
		},
		order: []string{"b.go", "a.go"},
	}
	sink := &memSink{}
	p := New(reader, []rules.Rule{rules.NewSymbolsRule(), rules.NewTopDeclsRule()}, sink)

	if err := p.Run(context.Background(), Options{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !sink.closed {
		t.Error("sink not closed")
	}
	// Sorted path asc, line asc even though b.go was read first.
	want := []struct {
		path   string
		symbol string
	}{
		{"a.go", "T"}, // symbols finding for type T
		{"a.go", "T"}, // topdecls finding for the same line
		{"a.go", "Earlier"},
		{"b.go", "Later"},
	}
	if len(sink.findings) != len(want) {
		t.Fatalf("got %d findings, want %d: %+v", len(sink.findings), len(want), sink.findings)
	}
	for i, f := range sink.findings {
		if f.Path != want[i].path || f.Symbol != want[i].symbol {
			t.Errorf("finding %d = %s/%s, want %s/%s", i, f.Path, f.Symbol, want[i].path, want[i].symbol)
		}
	}
}

type badKindsRule struct{}

func (badKindsRule) Name() string             { return "badkinds" }
func (badKindsRule) Kinds() treequery.KindSet { return treequery.Kinds("case-class") }
func (badKindsRule) Check(*gotree.SourceNode) ([]rules.Finding, error) {
	return nil, nil
}

func TestRunRejectsUnknownRuleKinds(t *testing.T) {
	p := New(&memReader{}, []rules.Rule{badKindsRule{}}, &memSink{})
	err := p.Run(context.Background(), Options{})
	if !errors.Is(err, treequery.ErrUnknownKind) {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
}

func TestRunStampsRunMetadata(t *testing.T) {
	reader := &memReader{
		files: map[string]string{"a.go": "package p\n\nfunc F() {}\n"},
		order: []string{"a.go"},
	}
	sink := &memSink{}
	p := New(reader, []rules.Rule{rules.NewSymbolsRule()}, sink)

	opts := Options{RepoName: "acme/widgets", CommitHash: "deadbeef"}
	if err := p.Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.findings) == 0 {
		t.Fatal("no findings emitted")
	}
	for _, f := range sink.findings {
		if f.Repo != "acme/widgets" || f.Commit != "deadbeef" {
			t.Errorf("finding missing run metadata: %+v", f)
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	reader := &memReader{
		files: map[string]string{"a.go": "package p\n"},
		order: []string{"a.go"},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(reader, rules.Enabled(rules.Options{}), &memSink{})
	if err := p.Run(ctx, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
