package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/sourcescout/treescout/internal/gotree"
	"github.com/sourcescout/treescout/internal/outline"
	"github.com/sourcescout/treescout/internal/utils"
)

func main() {
	var (
		repoRoot   = flag.String("repo", ".", "Path to repo root")
		outPath    = flag.String("out", "", "Output file (optional, defaults to stdout)")
		excludeCSV = flag.String("exclude", "(^|/)(vendor|third_party|\\.git|build|dist)/", "Comma-separated regex to exclude paths")
		skipTests  = flag.Bool("skip-tests", true, "Skip _test.go files")
		debug      = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	log.SetFlags(0)
	if *debug {
		log.SetPrefix("[DEBUG] ")
	}

	exclude := *excludeCSV
	if *skipTests {
		exclude += ",_test\\.go$"
	}

	reader := gotree.NewGoPackagesReader(*repoRoot, exclude, *debug)
	units, err := reader.List()
	utils.MustNotErr(err)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		utils.MustNotErr(err)
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, fu := range units {
		entries, err := outline.File(fu)
		if err != nil {
			log.Fatalf("outline %s: %v", fu.RelPath, err)
		}
		if len(entries) == 0 {
			if *debug {
				log.Printf("no declarations in %s", fu.RelPath)
			}
			continue
		}
		utils.MustNotErr(outline.Write(w, fu.RelPath, entries))
	}
}
