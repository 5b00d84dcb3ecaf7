package outline

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/sourcescout/treescout/internal/gotree"
)

const src = `package store

import "database/sql"

type ID = int64

type Store struct {
	db *sql.DB
}

func Open(
	dsn string, // data source
	retries int,
) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	cleanup := func() {}
	cleanup()
	return s.db.Close()
}
`

func outlineOf(t *testing.T) []Entry {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "store.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	entries, err := File(gotree.FileUnit{
		Filename: "store.go", RelPath: "store.go", File: f, Fset: fset, Src: src,
	})
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	return entries
}

func TestFileEntries(t *testing.T) {
	entries := outlineOf(t)
	want := []struct {
		symbol string
		sig    string
		elided bool
	}{
		{"ID", "type ID = int64", false},
		{"Store", "type Store struct", true},
		{"Open", "func Open( dsn string, retries int, ) (*Store, error)", true},
		{"Store.Close", "func (s *Store) Close() error", true},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, e := range entries {
		if e.Symbol != want[i].symbol || e.Signature != want[i].sig || e.Elided != want[i].elided {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestFileSkipsNestedFuncs(t *testing.T) {
	for _, e := range outlineOf(t) {
		if e.Symbol == "" {
			t.Errorf("anonymous declaration leaked into outline: %+v", e)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "store.go", outlineOf(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "store.go:\n") {
		t.Errorf("missing file header: %q", out)
	}
	if !strings.Contains(out, "func (s *Store) Close() error { ... }") {
		t.Errorf("missing elided method: %q", out)
	}
	if strings.Contains(out, "cleanup") {
		t.Errorf("body content leaked: %q", out)
	}
}
