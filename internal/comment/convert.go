package comment

import "strings"

// Converters render a content line list in one of the three target forms.
// They are total functions of (lines, anchor) and never look at the original
// decoration. The first rendered line carries no anchor because the rewrite
// span starts at the old comment's first delimiter, which already sits after
// the anchor in the source.

// ToStarredBlock renders lines as a block comment with aligned leading stars.
func ToStarredBlock(lines []string, anchor string) string {
	var b strings.Builder
	b.WriteString("/*\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(anchor + " * " + line)
	}
	b.WriteString("\n" + anchor + " */")
	return b.String()
}

// ToSeparateLines renders lines as a run of // comments.
func ToSeparateLines(lines []string, anchor string) string {
	prefixed := make([]string, len(lines))
	for i, line := range lines {
		prefixed[i] = "// " + line
	}
	return strings.Join(prefixed, "\n"+anchor)
}

// ToBareBlock renders lines as a block comment without padding stars. The
// three-space continuation aligns content with the opening "/* ".
func ToBareBlock(lines []string, anchor string) string {
	return "/* " + strings.Join(lines, "\n"+anchor+"   ") + " */"
}
