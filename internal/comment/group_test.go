package comment

import (
	"regexp"
	"testing"

	"commentfmt/internal/scanner"
	"commentfmt/internal/source"
)

func scanGroups(t *testing.T, src string, ignore *regexp.Regexp) (*source.File, []*Group) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(src))
	f := fs.Get(id)
	toks := scanner.Scan(f, scanner.Options{})
	return f, BuildGroups(f, toks, ignore)
}

func TestBuildGroupsMergesAdjacentLineComments(t *testing.T) {
	_, groups := scanGroups(t, "// a\n// b\n// c\nvar x;\n", nil)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Tokens) != 3 {
		t.Fatalf("expected 3 tokens in group, got %d", len(groups[0].Tokens))
	}
}

func TestBuildGroupsBlankLineBreaksGroup(t *testing.T) {
	_, groups := scanGroups(t, "// a\n// b\n\n// c\n// d\n", nil)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Tokens) != 2 || len(groups[1].Tokens) != 2 {
		t.Fatalf("expected 2+2 tokens, got %d+%d", len(groups[0].Tokens), len(groups[1].Tokens))
	}
}

func TestBuildGroupsCodeBetweenBreaksGroup(t *testing.T) {
	_, groups := scanGroups(t, "// a\nvar x;\n// b\n// c\n", nil)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group (// a alone is single-line), got %d", len(groups))
	}
	if groups[0].First().Text != " b" {
		t.Fatalf("expected group to start at '// b', got %q", groups[0].First().Text)
	}
}

func TestBuildGroupsDropsInlineComments(t *testing.T) {
	_, groups := scanGroups(t, "var x; // trailing\n// next\n// line\n", nil)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Tokens) != 2 {
		t.Fatalf("trailing comment must not join the group, got %d tokens", len(groups[0].Tokens))
	}
	if groups[0].First().Text != " next" {
		t.Fatalf("unexpected group start %q", groups[0].First().Text)
	}
}

func TestBuildGroupsIgnoredCommentBreaksAdjacency(t *testing.T) {
	ignore := regexp.MustCompile(`^\s*eslint`)
	_, groups := scanGroups(t, "// a\n// b\n// eslint-disable-next-line\n// c\n// d\n", ignore)

	// Игнорируемый комментарий не входит в группы, но разрывает соседство.
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[1].First().Text != " c" {
		t.Fatalf("expected second group to start at '// c', got %q", groups[1].First().Text)
	}
}

func TestBuildGroupsDiscardsSingleLineComments(t *testing.T) {
	_, groups := scanGroups(t, "// alone\n\n/* one line */\nvar x;\n", nil)

	if len(groups) != 0 {
		t.Fatalf("single-line comments must not form groups, got %d", len(groups))
	}
}

func TestBuildGroupsBlockCommentIsSingleton(t *testing.T) {
	_, groups := scanGroups(t, "/*\n * a\n */\n// b\n// c\n", nil)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Tokens) != 1 {
		t.Fatalf("block comment must stay a singleton, got %d tokens", len(groups[0].Tokens))
	}
}

func TestBuildGroupsAnchor(t *testing.T) {
	f, groups := scanGroups(t, "    // a\n    // b\n", nil)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Anchor != "    " {
		t.Fatalf("expected 4-space anchor, got %q", groups[0].Anchor)
	}
	if got := groups[0].Text(f); got != "// a\n    // b" {
		t.Fatalf("unexpected group text %q", got)
	}
}

func TestBuildGroupsTrailedSameLine(t *testing.T) {
	_, groups := scanGroups(t, "/*\n * a\n */ var x;\n", nil)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if !groups[0].TrailedSameLine {
		t.Fatal("expected TrailedSameLine to be set")
	}

	_, groups = scanGroups(t, "/*\n * a\n */\nvar x;\n", nil)
	if len(groups) != 1 || groups[0].TrailedSameLine {
		t.Fatal("expected TrailedSameLine to be unset when code starts on the next line")
	}
}
