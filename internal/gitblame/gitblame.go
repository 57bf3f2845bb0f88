// Package gitblame retrieves, for each line of a tracked file, the date of
// the commit that last touched it.
package gitblame

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// LineDates maps 1-based line numbers to the UTC time the line was last
// modified. Lines git cannot attribute are absent.
type LineDates map[int]time.Time

// Date looks up the attribution for a line.
func (d LineDates) Date(line int) (time.Time, bool) {
	t, ok := d[line]
	return t, ok
}

// RepoRoot returns the top level of the git work tree containing dir.
// An empty dir means the current working directory.
func RepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("`git rev-parse` failed: %s", strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// Blame runs git blame over path (relative to repoRoot, or absolute) and
// returns the last-modification date of every line it attributes.
func Blame(repoRoot, path string) (LineDates, error) {
	cmd := exec.Command("git", "blame", "--line-porcelain", "--", path)
	cmd.Dir = repoRoot

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("`git blame` failed for %s: %s", path, strings.TrimSpace(stderr.String()))
	}
	return parsePorcelain(out.String())
}

// parsePorcelain walks --line-porcelain output. Every content line is
// prefixed with a tab and preceded by the full headers of its commit, so an
// author-time header is always seen before the line it attributes. Content
// lines advance the 1-based counter; a pending timestamp binds to exactly
// one of them.
func parsePorcelain(out string) (LineDates, error) {
	dates := make(LineDates)
	var pending time.Time
	havePending := false
	lineNo := 0

	for _, raw := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(raw, "author-time "):
			fields := strings.Fields(raw)
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed blame header: %q", raw)
			}
			ts, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed author-time %q: %w", fields[1], err)
			}
			pending = time.Unix(ts, 0).UTC()
			havePending = true
		case strings.HasPrefix(raw, "\t"):
			lineNo++
			if havePending {
				dates[lineNo] = pending
			}
			pending = time.Time{}
			havePending = false
		}
	}
	return dates, nil
}
