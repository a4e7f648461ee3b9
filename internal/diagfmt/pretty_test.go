package diagfmt

import (
	"strings"
	"testing"

	"commentfmt/internal/diag"
	"commentfmt/internal/source"
)

func testBag(fs *source.FileSet) (*diag.Bag, source.FileID) {
	id := fs.AddVirtual("test.js", []byte("// a\n// b\nvar x;\n"))
	bag := diag.NewBag(16)
	bag.Add(diag.NewWarning(
		diag.StyleExpectedBlock,
		source.Span{File: id, Start: 0, End: 9},
		"Expected a block comment instead of consecutive line comments.",
	))
	return bag, id
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	out := sb.String()
	if !strings.Contains(out, "test.js:1:1: WARNING STY2001: Expected a block comment") {
		t.Fatalf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "    1 | // a") {
		t.Fatalf("missing context line in output:\n%s", out)
	}
	// Span уходит на следующую строку, поэтому подчёркиваем до конца строки.
	if !strings.Contains(out, "        ^~~~") {
		t.Fatalf("missing caret marker in output:\n%s", out)
	}
}

func TestPrettyShowsFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("/*\n a\n */\n"))
	bag := diag.NewBag(16)

	d := diag.NewWarning(diag.StyleMissingStar,
		source.Span{File: id, Start: 3, End: 5},
		"Expected a '*' at the start of this line.")
	d = d.WithFixSuggestion(diag.Fix{
		Title: "insert a leading '*'",
		Edits: []diag.TextEdit{{Span: source.Span{File: id, Start: 3, End: 4}, NewText: " * "}},
	})
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowFixes: true})

	if !strings.Contains(sb.String(), "fix: insert a leading '*' (always-safe)") {
		t.Fatalf("missing fix line in output:\n%s", sb.String())
	}
}

func TestPrettyShowsNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("// a\n// b\n"))
	bag := diag.NewBag(16)

	d := diag.NewWarning(diag.StyleExpectedBlock,
		source.Span{File: id, Start: 0, End: 9}, "group")
	d = d.WithNote(source.Span{File: id, Start: 5, End: 9}, "second comment of the group")
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})

	if !strings.Contains(sb.String(), "note: test.js:2:1: second comment of the group") {
		t.Fatalf("missing note in output:\n%s", sb.String())
	}
}
