package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// eachdir runs one shell command in every immediate subdirectory of -dir,
// prefixing output with the directory name. Handy for sweeping a checkout
// of many small repos ("git status" across everything).
func main() {
	var (
		baseDir = flag.String("dir", ".", "Directory whose subdirectories to visit")
		quiet   = flag.Bool("q", false, "Suppress directory headers for commands with no output")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: eachdir [-dir path] [-q] command [args...]")
		os.Exit(2)
	}

	log.SetFlags(0)

	entries, err := os.ReadDir(*baseDir)
	if err != nil {
		log.Fatalf("read dir: %v", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && e.Name()[0] != '.' {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	failed := 0
	for _, d := range dirs {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = filepath.Join(*baseDir, d)
		out, err := cmd.CombinedOutput()
		if len(out) == 0 && err == nil && *quiet {
			continue
		}
		fmt.Printf("== %s\n", d)
		if len(out) > 0 {
			os.Stdout.Write(out)
		}
		if err != nil {
			failed++
			fmt.Printf("   error: %v\n", err)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
