package comment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func contentOf(t *testing.T, src string) []string {
	t.Helper()
	_, groups := scanGroups(t, src, nil)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	return ContentLines(groups[0])
}

func TestContentLinesSeparate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "uniform single space stripped",
			src:  "// a\n// b\n",
			want: []string{"a", "b"},
		},
		{
			name: "blank token stays empty and does not block stripping",
			src:  "// a\n//\n// b\n",
			want: []string{"a", "", "b"},
		},
		{
			name: "commented-out code kept verbatim",
			src:  "//const x = 1;\n// aligned\n",
			want: []string{"const x = 1;", " aligned"},
		},
		{
			name: "deeper offsets keep the extra spaces",
			src:  "// a\n//   b\n",
			want: []string{"a", "  b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentOf(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentLinesStarred(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "uniform space after star stripped",
			src:  "/*\n * a\n * b\n */\n",
			want: []string{"a", "b"},
		},
		{
			name: "star without space keeps all offsets",
			src:  "/*\n *a\n * b\n */\n",
			want: []string{"a", " b"},
		},
		{
			name: "star-only line does not veto space stripping",
			src:  "/*\n * a\n *\n * b\n */\n",
			want: []string{"a", "", "b"},
		},
		{
			name: "relative indentation survives",
			src:  "/*\n * if (x) {\n *   y();\n * }\n */\n",
			want: []string{"if (x) {", "  y();", "}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentOf(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentLinesBareBaseline(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "aligned under the delimiter",
			src:  "/* foo\n   bar */\n",
			want: []string{"foo", "bar"},
		},
		{
			name: "deeper lines keep relative extra indentation",
			src:  "/* if (x) {\n     y();\n   } */\n",
			want: []string{"if (x) {", "  y();", "}"},
		},
		{
			name: "shallow line gets the correction",
			src:  "/* foo\n bar */\n",
			want: []string{"foo", "  bar"},
		},
		{
			name: "anchored comment measures against anchor width",
			src:  "  /* foo\n     bar */\n",
			want: []string{"foo", "bar"},
		},
		{
			name: "whitespace-only interior line blanks out",
			src:  "/* foo\n\n   bar */\n",
			want: []string{"foo", "", "bar"},
		},
		{
			name: "trailing space before closing delimiter dropped",
			src:  "/* foo\n   bar   */\n",
			want: []string{"foo", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentOf(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContentLinesJSDocUsesBarePath(t *testing.T) {
	got := contentOf(t, "/**\n * valid jsdoc\n */\n")
	want := []string{"*", "valid jsdoc", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

// Round-trip: normalize then render in the same form must reproduce the
// original bytes for well-formed input.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		anchor string
		render func([]string, string) string
	}{
		{
			name:   "starred block",
			src:    "/*\n * a\n * b\n */",
			render: ToStarredBlock,
		},
		{
			name:   "starred block with anchor",
			src:    "  /*\n   * a\n   */",
			anchor: "  ",
			render: ToStarredBlock,
		},
		{
			name:   "bare block",
			src:    "/* foo\n   bar */",
			render: ToBareBlock,
		},
		{
			name:   "bare block with anchor",
			src:    "    /* foo\n       bar */",
			anchor: "    ",
			render: ToBareBlock,
		},
		{
			name:   "separate lines",
			src:    "// a\n// b",
			render: ToSeparateLines,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, groups := scanGroups(t, tt.src+"\n", nil)
			if len(groups) != 1 {
				t.Fatalf("expected 1 group, got %d", len(groups))
			}
			g := groups[0]
			if g.Anchor != tt.anchor {
				t.Fatalf("anchor = %q, want %q", g.Anchor, tt.anchor)
			}
			got := tt.render(ContentLines(g), g.Anchor)
			if got != g.Text(f) {
				t.Fatalf("round trip:\n%q\nwant:\n%q", got, g.Text(f))
			}
		})
	}
}

// Content preservation: converting A -> B and normalizing B's text again
// yields the same content list.
func TestContentPreservationAcrossForms(t *testing.T) {
	srcs := []string{
		"// a\n// b\n",
		"/*\n * if (x) {\n *   y();\n * }\n */\n",
		"/* foo\n   bar */\n",
	}

	for _, src := range srcs {
		_, groups := scanGroups(t, src, nil)
		if len(groups) != 1 {
			t.Fatalf("expected 1 group for %q, got %d", src, len(groups))
		}
		lines := ContentLines(groups[0])

		for _, render := range []func([]string, string) string{ToStarredBlock, ToBareBlock, ToSeparateLines} {
			rendered := render(lines, "")
			_, regrouped := scanGroups(t, rendered+"\nvar x;\n", nil)
			if len(regrouped) != 1 {
				t.Fatalf("re-scan of %q produced %d groups", rendered, len(regrouped))
			}
			back := ContentLines(regrouped[0])
			if diff := cmp.Diff(lines, back); diff != "" {
				t.Fatalf("content changed after re-render of %q (-want +got):\n%s", rendered, diff)
			}
		}
	}
}

func TestContainsEndDelimiter(t *testing.T) {
	if !ContainsEndDelimiter([]string{"a", "b */ c"}) {
		t.Fatal("expected delimiter detection")
	}
	if ContainsEndDelimiter([]string{"a", "b * / c"}) {
		t.Fatal("false positive on split delimiter")
	}
}
