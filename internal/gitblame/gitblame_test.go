package gitblame

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// commitDate pins every test commit so blame output is deterministic.
const commitDate = "2023-05-06T12:00:00+0000"

func TestParsePorcelain(t *testing.T) {
	t.Run("binds author-time to content lines", func(t *testing.T) {
		porcelain := "" +
			"abc123 1 1 1\n" +
			"author Alice\n" +
			"author-time 1683331200\n" +
			"author-tz +0000\n" +
			"committer Alice\n" +
			"committer-time 1700000000\n" +
			"summary add entries\n" +
			"filename hotlines.json\n" +
			"\t\"hotlineName\": \"Emergency\",\n" +
			"def456 2 2 1\n" +
			"author Bob\n" +
			"author-time 1700006400\n" +
			"author-tz +0000\n" +
			"committer Bob\n" +
			"committer-time 1800000000\n" +
			"summary update number\n" +
			"filename hotlines.json\n" +
			"\t\"number\": \"911\",\n"

		dates, err := parsePorcelain(porcelain)
		if err != nil {
			t.Fatalf("parsePorcelain failed: %v", err)
		}
		if len(dates) != 2 {
			t.Fatalf("expected 2 attributed lines, got %d", len(dates))
		}

		got, ok := dates.Date(1)
		if !ok {
			t.Fatal("line 1 has no attribution")
		}
		want := time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("line 1 date = %v, want %v", got, want)
		}

		// committer-time must not leak into the attribution.
		got, _ = dates.Date(2)
		want = time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("line 2 date = %v, want %v", got, want)
		}
	})

	t.Run("content line without header is unattributed", func(t *testing.T) {
		porcelain := "\torphan line\n" +
			"abc123 1 2 1\n" +
			"author Alice\n" +
			"author-time 1683331200\n" +
			"\tattributed line\n"

		dates, err := parsePorcelain(porcelain)
		if err != nil {
			t.Fatalf("parsePorcelain failed: %v", err)
		}
		if _, ok := dates.Date(1); ok {
			t.Error("line 1 should have no attribution")
		}
		if _, ok := dates.Date(2); !ok {
			t.Error("line 2 should be attributed")
		}
	})

	t.Run("header binds to one line only", func(t *testing.T) {
		porcelain := "author-time 1683331200\n" +
			"\tfirst\n" +
			"\tsecond\n"

		dates, err := parsePorcelain(porcelain)
		if err != nil {
			t.Fatalf("parsePorcelain failed: %v", err)
		}
		if _, ok := dates.Date(1); !ok {
			t.Error("line 1 should be attributed")
		}
		if _, ok := dates.Date(2); ok {
			t.Error("line 2 should not inherit line 1's attribution")
		}
	})

	t.Run("malformed author-time", func(t *testing.T) {
		if _, err := parsePorcelain("author-time notanumber\n\tline\n"); err == nil {
			t.Fatal("expected an error for a non-numeric timestamp")
		}
		if _, err := parsePorcelain("author-time \n\tline\n"); err == nil {
			t.Fatal("expected an error for a missing timestamp")
		}
	})

	t.Run("empty output", func(t *testing.T) {
		dates, err := parsePorcelain("")
		if err != nil {
			t.Fatalf("parsePorcelain failed: %v", err)
		}
		if len(dates) != 0 {
			t.Errorf("expected no attributions, got %d", len(dates))
		}
	})
}

func TestBlame(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	writeTestFile(t, dir, "hotlines.json", "alpha\nbeta\ngamma\n")
	runGit(t, dir, "add", "hotlines.json")
	runGit(t, dir, "commit", "-m", "add hotlines")

	dates, err := Blame(dir, "hotlines.json")
	if err != nil {
		t.Fatalf("Blame failed: %v", err)
	}

	want := time.Date(2023, 5, 6, 12, 0, 0, 0, time.UTC)
	for line := 1; line <= 3; line++ {
		got, ok := dates.Date(line)
		if !ok {
			t.Fatalf("line %d has no attribution", line)
		}
		if !got.Equal(want) {
			t.Errorf("line %d date = %v, want %v", line, got, want)
		}
	}
	if _, ok := dates.Date(4); ok {
		t.Error("unexpected attribution past the end of the file")
	}
}

func TestBlameMissingFile(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	writeTestFile(t, dir, "present.txt", "here\n")
	runGit(t, dir, "add", "present.txt")
	runGit(t, dir, "commit", "-m", "initial")

	if _, err := Blame(dir, "missing.json"); err == nil {
		t.Fatal("expected an error for an untracked path")
	}
}

func TestRepoRoot(t *testing.T) {
	requireGit(t)
	dir := initRepo(t)

	sub := filepath.Join(dir, "public", "data")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	wantRoot, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	for _, start := range []string{dir, sub} {
		got, err := RepoRoot(start)
		if err != nil {
			t.Fatalf("RepoRoot(%s) failed: %v", start, err)
		}
		gotResolved, err := filepath.EvalSymlinks(got)
		if err != nil {
			t.Fatalf("failed to resolve %s: %v", got, err)
		}
		if gotResolved != wantRoot {
			t.Errorf("RepoRoot(%s) = %s, want %s", start, gotResolved, wantRoot)
		}
	}
}

func TestRepoRootOutsideRepo(t *testing.T) {
	requireGit(t)
	if _, err := RepoRoot(t.TempDir()); err == nil {
		t.Fatal("expected an error outside a work tree")
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a temporary repository with identity configured so
// commits succeed on a clean machine.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "dev@example.com")
	runGit(t, dir, "config", "user.name", "Dev")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE="+commitDate,
		"GIT_COMMITTER_DATE="+commitDate,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
