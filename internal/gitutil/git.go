// Package gitutil shells out to git for run metadata (repo name, commit).
// Failures fall back to filesystem-derived values; scans of non-git trees
// must still work.
package gitutil

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

var remoteRe = regexp.MustCompile(`[:/](?P<owner>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?$`)

// InferRepoName derives "owner/repo" from the origin remote, falling back
// to the directory base name.
func InferRepoName(repoRoot string) string {
	cmd := exec.Command("git", "-C", repoRoot, "remote", "get-url", "origin")
	out, err := cmd.Output()
	if err != nil {
		return filepath.Base(repoRoot)
	}
	m := remoteRe.FindStringSubmatch(strings.TrimSpace(string(out)))
	if len(m) == 0 {
		return filepath.Base(repoRoot)
	}
	return m[1] + "/" + m[2]
}

// ResolveCommit resolves commitRef (or HEAD when empty) to a full hash,
// "unknown" when git cannot answer.
func ResolveCommit(repoRoot, commitRef string) string {
	if commitRef != "" {
		cmd := exec.Command("git", "-C", repoRoot, "rev-parse", commitRef)
		if b, err := cmd.Output(); err == nil {
			return strings.TrimSpace(string(b))
		}
	}
	cmd := exec.Command("git", "-C", repoRoot, "rev-parse", "HEAD")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out.String())
}
