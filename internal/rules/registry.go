package rules

import (
	"fmt"
	"strings"
)

// Options selects and parameterizes the rule set for a run. A nil Enabled
// map means every rule runs.
type Options struct {
	Enabled        map[string]bool
	HandlerCallees []string
}

// Enabled assembles the configured rules in a stable order.
func Enabled(opts Options) []Rule {
	all := []Rule{
		NewSymbolsRule(),
		NewHTTPHandlersRule(opts.HandlerCallees),
		NewSQLCallsRule(),
		NewTopDeclsRule(),
	}
	if opts.Enabled == nil {
		return all
	}
	var out []Rule
	for _, r := range all {
		if opts.Enabled[r.Name()] {
			out = append(out, r)
		}
	}
	return out
}

// Names lists every registered rule, in registry order.
func Names() []string {
	var out []string
	for _, r := range Enabled(Options{}) {
		out = append(out, r.Name())
	}
	return out
}

// ParseSelection turns a comma-separated list of rule names (the -rules
// flag) into an Enabled map, rejecting names no rule carries.
func ParseSelection(csv string) (map[string]bool, error) {
	known := make(map[string]bool)
	for _, name := range Names() {
		known[name] = true
	}
	out := make(map[string]bool)
	for _, name := range strings.Split(csv, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown rule %q (have %s)", name, strings.Join(Names(), ", "))
		}
		out[name] = true
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty rule selection")
	}
	return out, nil
}
