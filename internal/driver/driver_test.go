package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"commentfmt/internal/comment"
	"commentfmt/internal/diag"
	"commentfmt/internal/source"
)

func defaultOpts() comment.Options {
	return comment.Options{
		Style:         comment.StyleStarredBlock,
		IgnorePattern: comment.DefaultIgnorePattern,
	}
}

func bagCodes(bag *diag.Bag) []diag.Code {
	codes := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func TestCheckSourceReportsStyleFindings(t *testing.T) {
	fs := source.NewFileSet()
	res := CheckSource(fs, "test.js", []byte("// a\n// b\nvar x;\n"), defaultOpts(), 64)

	if res.Groups != 1 {
		t.Fatalf("expected 1 group, got %d", res.Groups)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", res.Bag.Len(), bagCodes(res.Bag))
	}
	if res.Bag.Items()[0].Code != diag.StyleExpectedBlock {
		t.Fatalf("expected StyleExpectedBlock, got %s", res.Bag.Items()[0].Code.ID())
	}
}

func TestCheckSourceReportsUnterminatedComment(t *testing.T) {
	fs := source.NewFileSet()
	res := CheckSource(fs, "test.js", []byte("/* never closed\n a\n"), defaultOpts(), 64)

	found := false
	for _, code := range bagCodes(res.Bag) {
		if code == diag.ScanUnterminatedBlockComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unterminated-comment warning, got %v", bagCodes(res.Bag))
	}
}

func TestCheckFileMissingFile(t *testing.T) {
	fs := source.NewFileSet()
	res := CheckFile(fs, filepath.Join(t.TempDir(), "absent.js"), defaultOpts(), 64)

	if !res.Bag.HasErrors() {
		t.Fatalf("expected an IO error diagnostic")
	}
	if res.Bag.Items()[0].Code != diag.IOReadFailed {
		t.Fatalf("expected IOReadFailed, got %s", res.Bag.Items()[0].Code.ID())
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestCheckPathsDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.js", "// a\n// b\nvar x;\n")
	writeFile(t, dir, "a.js", "// a\n// b\nvar x;\n")
	writeFile(t, dir, "skip.txt", "// a\n// b\n")

	var mu sync.Mutex
	var events []Event

	_, results, err := CheckPaths(context.Background(), []string{dir}, WalkOptions{
		Options:        defaultOpts(),
		Extensions:     []string{".js"},
		MaxDiagnostics: 64,
		Jobs:           4,
		Progress: func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("CheckPaths failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.js" || filepath.Base(results[1].Path) != "b.js" {
		t.Fatalf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, res := range results {
		if res.Bag.Len() != 1 {
			t.Fatalf("%s: expected 1 diagnostic, got %d", res.Path, res.Bag.Len())
		}
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 progress events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Total != 2 || ev.Done < 1 || ev.Done > 2 {
			t.Fatalf("bad progress event %+v", ev)
		}
	}
}

func TestCheckPathsExplicitFileBypassesFilter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "// a\n// b\n")

	_, results, err := CheckPaths(context.Background(), []string{path}, WalkOptions{
		Options:        defaultOpts(),
		Extensions:     []string{".js"},
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("CheckPaths failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected the named file to be checked, got %d results", len(results))
	}
}

func TestCheckPathsUnreadableEntryKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.js", "/*\n * fine\n */\n")
	bad := writeFile(t, dir, "bad.js", "// a\n// b\n")
	if err := os.Chmod(bad, 0o000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, chmod 000 does not block reads")
	}
	defer func() { _ = os.Chmod(bad, 0o644) }()

	_, results, err := CheckPaths(context.Background(), []string{dir}, WalkOptions{
		Options:        defaultOpts(),
		Extensions:     []string{".js"},
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("CheckPaths failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Bag.HasErrors() {
		t.Fatalf("expected an IO diagnostic for the unreadable file")
	}
	if results[1].Bag.Len() != 0 {
		t.Fatalf("clean file should have no findings, got %v", bagCodes(results[1].Bag))
	}
}

func TestMergeBagsPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "// a\n// b\nvar x;\n")
	writeFile(t, dir, "b.js", "// c\n// d\nvar y;\n")

	_, results, err := CheckPaths(context.Background(), []string{dir}, WalkOptions{
		Options:        defaultOpts(),
		Extensions:     []string{".js"},
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("CheckPaths failed: %v", err)
	}

	merged := MergeBags(results, 64)
	if merged.Len() != 2 {
		t.Fatalf("expected 2 merged diagnostics, got %d", merged.Len())
	}
}
