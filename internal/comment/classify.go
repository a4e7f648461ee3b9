package comment

import (
	"strings"

	"commentfmt/internal/token"
)

// Form is the shape a group currently has, as opposed to the shape the
// configured Style wants.
type Form uint8

const (
	FormSeparateLines Form = iota
	FormStarredBlock
	FormJSDoc
	FormBareBlock
)

func (f Form) String() string {
	switch f {
	case FormSeparateLines:
		return "separate-lines"
	case FormStarredBlock:
		return "starred-block"
	case FormJSDoc:
		return "jsdoc"
	case FormBareBlock:
		return "bare-block"
	}
	return "unknown"
}

// Classify names the group's current form. Line-comment groups are always
// separate-lines; block comments are starred, JSDoc, or bare.
func Classify(g *Group) Form {
	if g.First().Kind == token.KindLineComment {
		return FormSeparateLines
	}
	switch {
	case IsJSDoc(g):
		return FormJSDoc
	case IsStarredBlock(g):
		return FormStarredBlock
	default:
		return FormBareBlock
	}
}

// IsStarredBlock reports whether the group is a single block comment whose
// first and last raw lines hold no content and whose interior lines each
// open with a star after optional indentation.
func IsStarredBlock(g *Group) bool {
	first := g.First()
	if first.Kind != token.KindBlockComment {
		return false
	}
	lines := strings.Split(first.Text, "\n")
	for i, line := range lines {
		if i == 0 || i == len(lines)-1 {
			if !isBlank(line) {
				return false
			}
			continue
		}
		rest := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(rest, "*") {
			return false
		}
	}
	return true
}

// IsJSDoc reports whether the group is a documentation block: the raw text
// opens with a bare star (so the source reads "/**"), every interior line
// begins with whitespace that includes a space, and the final line holds
// only the indentation before "*/".
func IsJSDoc(g *Group) bool {
	first := g.First()
	if first.Kind != token.KindBlockComment {
		return false
	}
	lines := strings.Split(first.Text, "\n")
	if len(lines) < 2 {
		return false
	}
	if !strings.HasPrefix(lines[0], "*") || !isBlank(lines[0][1:]) {
		return false
	}
	if !isBlank(lines[len(lines)-1]) {
		return false
	}
	for _, line := range lines[1 : len(lines)-1] {
		if !leadingWSHasSpace(line) {
			return false
		}
	}
	return true
}

// isBlank reports whether the string is empty or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// leadingWSHasSpace reports whether the line's leading whitespace run
// contains at least one plain space. "\t* x" fails, " * x" and "\t x" pass.
func leadingWSHasSpace(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			return true
		case '\t':
			continue
		default:
			return false
		}
	}
	return false
}
