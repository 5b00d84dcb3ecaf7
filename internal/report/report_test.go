package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sourcescout/treescout/internal/rules"
)

func sampleFindings() []rules.Finding {
	return []rules.Finding{
		{Rule: "symbols", Repo: "acme/widgets", Commit: "deadbeef", Path: "a.go", Line: 3, Symbol: "Open", Kind: "func", Severity: rules.SevInfo, Message: "func Open spans lines 3-9"},
		{Rule: "httphandlers", Path: "b.go", Line: 12, Symbol: "routes", Kind: "call", Severity: rules.SevWarn, Message: `handler for "/x" registered via http.HandleFunc`},
	}
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewTextSink(&buf)
	if err := s.Write(sampleFindings()); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "I a.go:3: [symbols] func Open spans lines 3-9" {
		t.Errorf("unexpected line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "W b.go:12: [httphandlers] ") {
		t.Errorf("warn finding not marked: %q", lines[1])
	}
}

func TestJSONLSinkRoundTrip(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "findings.jsonl")
	s := NewJSONLSink(outPath)
	if err := s.Write(sampleFindings()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got []rules.Finding
	var header int
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if strings.HasPrefix(line, "#") {
			header++
			continue
		}
		var f rules.Finding
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			t.Fatalf("bad JSONL line %q: %v", line, err)
		}
		got = append(got, f)
	}
	if header != 1 {
		t.Errorf("got %d run headers, want 1", header)
	}
	if len(got) != 2 || got[0].Rule != "symbols" || got[1].Symbol != "routes" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got[0].Repo != "acme/widgets" || got[0].Commit != "deadbeef" {
		t.Errorf("run metadata lost in round trip: %+v", got[0])
	}
}

func TestJSONLEmitterAppends(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	first := NewJSONLEmitter[int](outPath, nil, false)
	if err := first.Emit([]int{1, 2}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	second := NewJSONLEmitter[int](outPath, nil, false)
	if err := second.EmitOne(3); err != nil {
		t.Fatalf("emit: %v", err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := strings.TrimSpace(string(b)); got != "1\n2\n3" {
		t.Errorf("got %q, want three appended lines", got)
	}
}
