package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treescout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
format: jsonl
exclude: (^|/)vendor/
rules:
  symbols:
    enabled: true
  httphandlers:
    enabled: true
    handler_callees:
      - r.GET
      - r.POST
  sqlcalls:
    enabled: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "jsonl" || cfg.Exclude != "(^|/)vendor/" {
		t.Errorf("top-level fields wrong: %+v", cfg)
	}

	enabled := cfg.EnabledRules()
	if !enabled["symbols"] || !enabled["httphandlers"] {
		t.Errorf("enabled rules wrong: %v", enabled)
	}
	if enabled["sqlcalls"] || enabled["topdecls"] {
		t.Errorf("disabled/unlisted rules on: %v", enabled)
	}

	callees := cfg.HandlerCallees()
	if len(callees) != 2 {
		t.Errorf("handler callees = %v, want r.GET and r.POST", callees)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("default format %q, want text", cfg.Format)
	}
	if cfg.EnabledRules() != nil {
		t.Errorf("no rules section should mean run everything")
	}
}

func TestLoadRejectsUnknownRule(t *testing.T) {
	path := writeConfig(t, "rules:\n  nosuchrule:\n    enabled: true\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown rule") {
		t.Errorf("got %v, want unknown rule error", err)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "format: csv\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("got %v, want unknown format error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
