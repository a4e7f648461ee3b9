package fix

import (
	"os"
	"path/filepath"
	"testing"

	"commentfmt/internal/diag"
	"commentfmt/internal/source"
)

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(""))
	span := source.Span{File: fileID, Start: 0, End: 0}

	diagnostics := []diag.Diagnostic{{
		Code:    diag.StyleMissingStar,
		Message: "Expected a '*' at the start of this line.",
		Primary: span,
		Fixes: []diag.Fix{
			{
				ID:    "fix-duplicate",
				Title: "insert a leading '*'",
				Edits: []diag.TextEdit{{Span: span, NewText: " * "}},
			},
			{
				ID:    "fix-duplicate",
				Title: "insert a leading '*' again",
				Edits: []diag.TextEdit{{Span: span, NewText: " * "}},
			},
		},
	}}

	ctx := diag.FixBuildContext{FileSet: fs}
	candidates, skips := gatherCandidates(ctx, diagnostics)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	if len(skips) != 1 {
		t.Fatalf("expected 1 skipped fix, got %d", len(skips))
	}

	skip := skips[0]
	if skip.ID != "fix-duplicate" {
		t.Fatalf("expected skipped fix id 'fix-duplicate', got %q", skip.ID)
	}
	if skip.Reason != "duplicate fix id" {
		t.Fatalf("expected duplicate fix reason, got %q", skip.Reason)
	}
}

func TestApplyRewritesFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.js")
	content := "// first\n// second\nvar x = 1;\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := source.NewFileSet()
	fs.SetBaseDir(dir)
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	span := source.Span{File: fileID, Start: 0, End: 18}
	diagnostics := []diag.Diagnostic{
		diag.NewWarning(diag.StyleExpectedBlock, span, "Expected a block comment instead of consecutive line comments.").
			WithFixSuggestion(RewriteSpan("rewrite as a starred block", span, "/*\n * first\n * second\n */", "// first\n// second")),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("expected 1 applied fix, got %d (skipped: %+v)", len(result.Applied), result.Skipped)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "/*\n * first\n * second\n */\nvar x = 1;\n"
	if string(got) != want {
		t.Fatalf("file after apply:\n%q\nwant:\n%q", got, want)
	}
}

func TestApplySkipsWhenGuardMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.js")
	if err := os.WriteFile(path, []byte("// actual text\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	span := source.Span{File: fileID, Start: 0, End: 14}
	diagnostics := []diag.Diagnostic{
		diag.NewWarning(diag.StyleExpectedBlock, span, "stale").
			WithFixSuggestion(ReplaceSpan("rewrite", span, "/* new */", "// stale text!")),
	}

	_, applyErr := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if applyErr != ErrNoFixes {
		t.Fatalf("expected ErrNoFixes on guard mismatch, got %v", applyErr)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "// actual text\n" {
		t.Fatalf("file must stay untouched, got %q", got)
	}
}

func TestApplySkipsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("stdin.js", []byte("// a\n// b\n"))
	span := source.Span{File: fileID, Start: 0, End: 9}

	diagnostics := []diag.Diagnostic{
		diag.NewWarning(diag.StyleExpectedBlock, span, "virtual").
			WithFixSuggestion(ReplaceSpan("rewrite", span, "/* a b */", "// a\n// b")),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != ErrNoFixes {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(result.Skipped) == 0 || result.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("expected virtual-file skip, got %+v", result.Skipped)
	}
}

func TestApplyModeAllSkipsHeuristicFixes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.js")
	if err := os.WriteFile(path, []byte("/*\nfoo\n */\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	span := source.Span{File: fileID, Start: 3, End: 6}
	diagnostics := []diag.Diagnostic{
		diag.NewWarning(diag.StyleMissingStar, span, "Expected a '*' at the start of this line.").
			WithFixSuggestion(ReplaceSpan("insert a leading '*'",
				source.Span{File: fileID, Start: 3, End: 3}, " * ", "",
				WithApplicability(diag.FixApplicabilitySafeWithHeuristics))),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != ErrNoFixes {
		t.Fatalf("expected ErrNoFixes in all-mode, got %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "applicability is safe-with-heuristics" {
		t.Fatalf("expected applicability skip, got %+v", result.Skipped)
	}
}

func TestApplyModeOncePrefersSafeFix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.js")
	if err := os.WriteFile(path, []byte("/*\nfoo\nbar\n */\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	heuristic := ReplaceSpan("guessed", source.Span{File: fileID, Start: 3, End: 3}, " * ", "",
		WithID("guessed"), WithApplicability(diag.FixApplicabilitySafeWithHeuristics))
	safe := ReplaceSpan("safe", source.Span{File: fileID, Start: 7, End: 7}, " * ", "", WithID("safe"))

	diagnostics := []diag.Diagnostic{
		diag.NewWarning(diag.StyleMissingStar, source.Span{File: fileID, Start: 3, End: 6}, "first").WithFixSuggestion(heuristic),
		diag.NewWarning(diag.StyleMissingStar, source.Span{File: fileID, Start: 7, End: 10}, "second").WithFixSuggestion(safe),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("expected exactly 1 applied fix, got %d", len(result.Applied))
	}
	if result.Applied[0].ID != "safe" {
		t.Fatalf("once-mode must prefer always-safe fix, applied %q", result.Applied[0].ID)
	}
}

func TestApplyModeIDTargetsSpecificFix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.js")
	if err := os.WriteFile(path, []byte("// a\n// b\nvar x;\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	span := source.Span{File: fileID, Start: 0, End: 9}
	diagnostics := []diag.Diagnostic{
		diag.NewWarning(diag.StyleExpectedBlock, span, "group").
			WithFixSuggestion(RewriteSpan("rewrite", span, "/*\n * a\n * b\n */", "// a\n// b", WithID("target"))),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeID, TargetID: "missing"})
	if err != ErrNoFixes {
		t.Fatalf("expected ErrNoFixes for unknown id, got %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "fix id not found" {
		t.Fatalf("expected id-not-found skip, got %+v", result.Skipped)
	}

	result, err = Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeID, TargetID: "target"})
	if err != nil {
		t.Fatalf("Apply by id returned error: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0].ID != "target" {
		t.Fatalf("expected applied fix 'target', got %+v", result.Applied)
	}
}

func TestCumulativeDeltaAccountsForEarlierEdits(t *testing.T) {
	edits := []diag.TextEdit{
		{Span: source.Span{Start: 0, End: 2}, NewText: "abcd"}, // +2
		{Span: source.Span{Start: 5, End: 5}, NewText: "x"},    // +1
	}

	if d := cumulativeDelta(edits, 4); d != 2 {
		t.Fatalf("expected delta 2 at pos 4, got %d", d)
	}
	if d := cumulativeDelta(edits, 10); d != 3 {
		t.Fatalf("expected delta 3 at pos 10, got %d", d)
	}
	if d := cumulativeDelta(edits, 0); d != 0 {
		t.Fatalf("expected delta 0 at pos 0, got %d", d)
	}
}
