package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"commentfmt/internal/diag"
	"commentfmt/internal/source"
)

func TestJSONBasicShape(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "STY2001" {
		t.Fatalf("expected code STY2001, got %q", d.Code)
	}
	if d.Severity != "warning" {
		t.Fatalf("expected severity warning, got %q", d.Severity)
	}
	if d.Location.File != "test.js" {
		t.Fatalf("unexpected file %q", d.Location.File)
	}
	if d.Location.StartLine != 1 || d.Location.EndLine != 2 {
		t.Fatalf("unexpected positions %+v", d.Location)
	}
}

func TestJSONIncludesFixesAndPreviews(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("// a\n// b\n"))

	span := source.Span{File: id, Start: 0, End: 9}
	d := diag.NewWarning(diag.StyleExpectedBlock, span, "group")
	d = d.WithFixSuggestion(diag.Fix{
		ID:    "rewrite-1",
		Title: "rewrite as a starred block",
		Kind:  diag.FixKindRefactorRewrite,
		Edits: []diag.TextEdit{{Span: span, NewText: "/*\n * a\n * b\n */", OldText: "// a\n// b"}},
	})

	bag := diag.NewBag(8)
	bag.Add(d)

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludeFixes: true, IncludePreviews: true})
	if err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	fixes := out.Diagnostics[0].Fixes
	if len(fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(fixes))
	}
	fix := fixes[0]
	if fix.ID != "rewrite-1" || fix.Kind != "refactor.rewrite" {
		t.Fatalf("unexpected fix metadata %+v", fix)
	}
	if len(fix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(fix.Edits))
	}
	edit := fix.Edits[0]
	if edit.NewText != "/*\n * a\n * b\n */" {
		t.Fatalf("unexpected edit text %q", edit.NewText)
	}
	if len(edit.BeforeLines) != 2 || edit.BeforeLines[0] != "// a" {
		t.Fatalf("unexpected preview before-lines %v", edit.BeforeLines)
	}
	if len(edit.AfterLines) != 4 || edit.AfterLines[0] != "/*" {
		t.Fatalf("unexpected preview after-lines %v", edit.AfterLines)
	}
}

func TestJSONHonorsMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("// a\n// b\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.NewWarning(diag.StyleExpectedBlock, source.Span{File: id, Start: 0, End: 1}, "one"))
	bag.Add(diag.NewWarning(diag.StyleExpectedLines, source.Span{File: id, Start: 2, End: 3}, "two"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON returned error: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("expected truncation to 1 diagnostic, got %d", out.Count)
	}
}
