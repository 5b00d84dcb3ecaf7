package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/sourcescout/treescout/internal/config"
	"github.com/sourcescout/treescout/internal/gitutil"
	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/pipeline"
	"github.com/sourcescout/treescout/internal/report"
	"github.com/sourcescout/treescout/internal/rules"
)

func main() {
	var (
		repoRoot   = flag.String("repo", ".", "Path to repo root")
		commitRef  = flag.String("commit", "", "Commit hash/ref (metadata only)")
		configPath = flag.String("config", "", "Path to YAML config (optional)")
		rulesCSV   = flag.String("rules", "", "Comma-separated rule names to run (overrides config rules section)")
		format     = flag.String("format", "", "Output format: text|jsonl (overrides config)")
		outPath    = flag.String("out", "", "Path to JSONL output file (optional, defaults to stdout)")
		excludeCSV = flag.String("exclude", "(^|/)(vendor|third_party|\\.git|build|dist)/", "Comma-separated regex to exclude paths")
		debug      = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	log.SetFlags(0)
	if *debug {
		log.SetPrefix("[DEBUG] ")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		cfg = loaded
	}
	if *format != "" {
		cfg.Format = *format
	}
	exclude := *excludeCSV
	if cfg.Exclude != "" && !flagWasSet("exclude") {
		exclude = cfg.Exclude
	}

	var sink report.Sink
	switch cfg.Format {
	case "jsonl":
		sink = report.NewJSONLSink(*outPath)
	case "text":
		w := os.Stdout
		if *outPath != "" {
			f, err := os.Create(*outPath)
			if err != nil {
				log.Fatalf("open output: %v", err)
			}
			defer f.Close()
			w = f
		}
		sink = report.NewTextSink(w)
	default:
		log.Fatalf("unknown format %q", cfg.Format)
	}

	enabled := cfg.EnabledRules()
	if *rulesCSV != "" {
		sel, err := rules.ParseSelection(*rulesCSV)
		if err != nil {
			log.Fatalf("bad -rules: %v", err)
		}
		enabled = sel
	}
	rs := rules.Enabled(rules.Options{
		Enabled:        enabled,
		HandlerCallees: cfg.HandlerCallees(),
	})
	if len(rs) == 0 {
		log.Fatalf("no rules enabled")
	}
	if *debug {
		for _, r := range rs {
			log.Printf("rule enabled: %s", r.Name())
		}
	}

	opts := pipeline.Options{
		RepoName:   gitutil.InferRepoName(*repoRoot),
		CommitHash: gitutil.ResolveCommit(*repoRoot, *commitRef),
	}

	reader := gotree.NewGoPackagesReader(*repoRoot, exclude, *debug)
	pl := pipeline.New(reader, rs, sink)
	if err := pl.Run(context.Background(), opts); err != nil {
		log.Fatalf("scan error: %v", err)
	}
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
