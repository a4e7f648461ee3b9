package comment

import (
	"fmt"
	"regexp"
)

// Style is the configured target form for multi-line comments.
type Style uint8

const (
	// StyleStarredBlock expects block comments whose continuation lines all
	// carry an aligned leading star.
	StyleStarredBlock Style = iota
	// StyleBareBlock expects block comments without padding stars.
	StyleBareBlock
	// StyleSeparateLines expects runs of // line comments.
	StyleSeparateLines
)

func (s Style) String() string {
	switch s {
	case StyleStarredBlock:
		return "starred-block"
	case StyleBareBlock:
		return "bare-block"
	case StyleSeparateLines:
		return "separate-lines"
	}
	return "unknown"
}

// ParseStyle converts a configuration string into a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "starred-block":
		return StyleStarredBlock, nil
	case "bare-block":
		return StyleBareBlock, nil
	case "separate-lines":
		return StyleSeparateLines, nil
	}
	return StyleStarredBlock, fmt.Errorf("unknown comment style %q (want starred-block, bare-block, or separate-lines)", s)
}

// DefaultIgnorePattern matches directive-style comments that must never be
// reflowed: tool pragmas, lint suppressions, and our own markers.
var DefaultIgnorePattern = regexp.MustCompile(`^\s*(?:commentfmt:|eslint|istanbul|jscs|jshint|globals?\s|exported\s|go:[a-z]+|nolint)`)

// Options configures a single checker run.
type Options struct {
	Style Style
	// CheckJSDoc extends separate-lines checking to documentation blocks
	// that open with /**. They are left alone otherwise.
	CheckJSDoc bool
	// IgnorePattern drops matching comments before grouping. Nil disables
	// the filter entirely; DefaultIgnorePattern is the usual value.
	IgnorePattern *regexp.Regexp
}
