package comment

import (
	"strings"

	"commentfmt/internal/token"
)

// ContentLines strips decoration and shared indentation from the group,
// producing the canonical content lines every validator and converter works
// on. Dispatch follows the group's current form; JSDoc-shaped blocks fall
// through to the bare-block path because their padding stars are part of the
// raw interior lines, not starred decoration in our sense.
func ContentLines(g *Group) []string {
	if g.First().Kind == token.KindLineComment {
		return separateLineContents(g)
	}
	if IsStarredBlock(g) {
		return starredContents(g.First().Text)
	}
	return bareBlockContents(g.First().Text, g.Anchor)
}

// ContainsEndDelimiter reports whether any content line carries a literal
// "*/". Rendering such content inside a block comment would terminate the
// comment early, so every rewrite for the group must be withheld.
func ContainsEndDelimiter(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(line, "*/") {
			return true
		}
	}
	return false
}

// separateLineContents takes each token's raw text. When every non-blank
// text begins with a space, exactly one is stripped from the non-blank ones;
// commented-out code with no uniform offset is left untouched.
func separateLineContents(g *Group) []string {
	lines := make([]string, len(g.Tokens))
	for i, tok := range g.Tokens {
		lines[i] = tok.Text
	}

	allSpaced := true
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if !strings.HasPrefix(line, " ") {
			allSpaced = false
			break
		}
	}
	if allSpaced {
		for i, line := range lines {
			if !isBlank(line) {
				lines[i] = line[1:]
			}
		}
	}
	return lines
}

// starredContents drops the delimiter-only first and last raw lines, blanks
// whitespace-only lines, and strips the star decoration. The extra space
// after the star is stripped only when every line that has content after its
// star carries one, so uneven authored offsets survive.
func starredContents(text string) []string {
	raw := strings.Split(text, "\n")
	if len(raw) < 2 {
		return nil
	}
	lines := make([]string, 0, len(raw)-2)
	for _, line := range raw[1 : len(raw)-1] {
		if isBlank(line) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, line)
	}

	allSpaced := true
	for _, line := range lines {
		if line == "" {
			continue
		}
		rest := stripStarPrefix(line)
		if isBlank(rest) {
			continue
		}
		if !strings.HasPrefix(rest, " ") {
			allSpaced = false
			break
		}
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		rest := stripStarPrefix(line)
		if allSpaced && strings.HasPrefix(rest, " ") {
			rest = rest[1:]
		}
		lines[i] = rest
	}
	return lines
}

// stripStarPrefix removes leading whitespace and the star that follows it.
// Lines without that shape are returned as-is.
func stripStarPrefix(line string) string {
	i := leadingWSLen(line)
	if i < len(line) && line[i] == '*' {
		return line[i+1:]
	}
	return line
}

// bareBlockContents runs baseline indentation detection over the raw
// interior lines of a bare block.
//
// The anchor is padded to the width of the opening "/* " so that content
// aligned under the delimiter comes out flush. Lines indented deeper than
// that keep their relative extra indentation; the single largest shortfall
// across the group becomes a uniform correction pulling shallow lines up to
// a common minimum. Two explicit passes: measure, then render.
func bareBlockContents(text, anchor string) []string {
	raw := strings.Split(text, "\n")
	leading := anchor + "   "

	// Первый проход: наибольший дефицит отступа.
	correction := ""
	for i, line := range raw {
		if i == 0 || isBlank(line) {
			// Строка с открывающим /* в анализе отступов не участвует.
			continue
		}
		offset, _ := splitLineOffset(line)
		if len(offset) < len(leading) {
			if cand := leading[len(offset):]; len(cand) > len(correction) {
				correction = cand
			}
		}
	}

	// Второй проход: рендер с учётом коррекции.
	out := make([]string, len(raw))
	for i, line := range raw {
		if i == 0 {
			out[i] = strings.TrimLeft(line, " \t")
			continue
		}
		if isBlank(line) {
			out[i] = ""
			continue
		}
		offset, contents := splitLineOffset(line)
		switch {
		case len(offset) > len(leading):
			keep := len(correction) + len(offset) - len(leading)
			out[i] = offset[len(offset)-keep:] + contents
		case len(offset) < len(leading):
			out[i] = correction + contents
		default:
			out[i] = contents
		}
	}

	// Последняя строка прилегает к закрывающему */.
	if n := len(out); n > 0 {
		out[n-1] = strings.TrimRight(out[n-1], " \t")
	}
	return out
}

// splitLineOffset splits a line into its leading (whitespace)(optional
// '*')(whitespace) run and the remaining contents.
func splitLineOffset(line string) (offset, contents string) {
	i := leadingWSLen(line)
	if i < len(line) && line[i] == '*' {
		i++
		i += leadingWSLen(line[i:])
	}
	return line[:i], line[i:]
}

// leadingWSLen returns the length of the leading space/tab run.
func leadingWSLen(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
