package comment

import (
	"strings"

	"commentfmt/internal/diag"
	"commentfmt/internal/fix"
	"commentfmt/internal/source"
	"commentfmt/internal/token"
)

// Diagnostic messages follow the upstream wording so editors surface
// familiar text.
const (
	msgExpectedBlock     = "Expected a block comment instead of consecutive line comments."
	msgExpectedBareBlock = "Expected a block comment without padding stars."
	msgStartNewline      = "Expected a linebreak after '/*'."
	msgEndNewline        = "Expected a linebreak before '*/'."
	msgMissingStar       = "Expected a '*' at the start of this line."
	msgAlignment         = "Expected this line to be aligned with the start of the comment."
	msgExpectedLines     = "Expected multiple line comments instead of a block comment."
)

// Checker validates comment groups of one file against the configured style.
type Checker struct {
	File *source.File
	Opts Options
}

// NewChecker builds a checker for one file.
func NewChecker(f *source.File, opts Options) *Checker {
	return &Checker{File: f, Opts: opts}
}

// Check runs the configured validator over every group in source order.
func (c *Checker) Check(groups []*Group, r diag.Reporter) {
	for _, g := range groups {
		c.checkGroup(g, r)
	}
}

func (c *Checker) checkGroup(g *Group, r diag.Reporter) {
	lines := ContentLines(g)
	// Содержимое с литеральным */ нельзя безопасно переписывать.
	unsafe := ContainsEndDelimiter(lines)

	switch c.Opts.Style {
	case StyleStarredBlock:
		c.checkStarredBlock(g, lines, unsafe, r)
	case StyleBareBlock:
		c.checkBareBlock(g, lines, unsafe, r)
	case StyleSeparateLines:
		c.checkSeparateLines(g, lines, unsafe, r)
	}
}

// checkStarredBlock handles the default style. Line-comment groups are asked
// to become one starred block; singleton blocks are checked structurally,
// line by line.
func (c *Checker) checkStarredBlock(g *Group, lines []string, unsafe bool, r diag.Reporter) {
	if len(g.Tokens) > 1 {
		b := diag.ReportWarning(r, diag.StyleExpectedBlock, g.Span(), msgExpectedBlock)
		if !unsafe && !anyLineOpensDelimiter(lines) {
			b.WithFixSuggestion(fix.RewriteSpan(
				"rewrite as a starred block",
				g.Span(), ToStarredBlock(lines, g.Anchor), g.Text(c.File),
			))
		}
		b.Emit()
		return
	}

	first := g.First()
	valueLines := strings.Split(first.Text, "\n")
	prefix := g.Anchor + " *"

	if !isOpenerTail(valueLines[0]) {
		sp := source.Span{File: first.Span.File, Start: first.Span.Start, End: first.Span.Start + 2}
		b := diag.ReportWarning(r, diag.StyleStartNewline, sp, msgStartNewline)
		if !unsafe {
			at := first.Span.Start + 2
			if strings.HasPrefix(first.Text, "*") {
				// Вставляем после звёздочки /**, а не между / и *.
				at++
			}
			b.WithFixSuggestion(fix.InsertText(
				"move content to the next line",
				source.Span{File: first.Span.File, Start: at, End: at}, "\n"+prefix, "",
			))
		}
		b.Emit()
	}

	if !isBlank(valueLines[len(valueLines)-1]) {
		sp := source.Span{File: first.Span.File, Start: first.Span.End - 2, End: first.Span.End}
		b := diag.ReportWarning(r, diag.StyleEndNewline, sp, msgEndNewline)
		if !unsafe {
			b.WithFixSuggestion(fix.ReplaceSpan(
				"move '*/' to its own line",
				sp, "\n"+g.Anchor+" */", "*/",
			))
		}
		b.Emit()
	}

	for ln := first.Start.Line + 1; ln <= first.End.Line; ln++ {
		lineText := c.File.GetLine(ln)
		if strings.HasPrefix(lineText, prefix) {
			continue
		}

		lineStart := c.File.LineStart(ln)
		lineSpan := source.Span{
			File:  first.Span.File,
			Start: lineStart,
			End:   lineStart + uint32(len(lineText)),
		}

		if starLen := starPrefixLen(lineText); starLen >= 0 {
			b := diag.ReportWarning(r, diag.StyleAlignment, lineSpan, msgAlignment)
			if !unsafe {
				b.WithFixSuggestion(fix.ReplaceSpan(
					"realign this line",
					source.Span{File: first.Span.File, Start: lineStart, End: lineStart + uint32(starLen)},
					prefix, lineText[:starLen],
				))
			}
			b.Emit()
			continue
		}

		wsLen := leadingWSLen(lineText)
		b := diag.ReportWarning(r, diag.StyleMissingStar, lineSpan, msgMissingStar)
		if !unsafe {
			offset, guessed := c.starOffset(g, ln)
			f := fix.ReplaceSpan(
				"insert a leading '*'",
				source.Span{File: first.Span.File, Start: lineStart, End: lineStart + uint32(wsLen)},
				prefix+offset, lineText[:wsLen],
			)
			if guessed {
				f.Applicability = diag.FixApplicabilitySafeWithHeuristics
			}
			b.WithFixSuggestion(f)
		}
		b.Emit()
	}
}

// checkBareBlock asks line-comment groups and starred blocks to become one
// bare block. JSDoc shapes are left alone.
func (c *Checker) checkBareBlock(g *Group, lines []string, unsafe bool, r diag.Reporter) {
	if IsJSDoc(g) {
		return
	}

	if g.First().Kind == token.KindLineComment {
		if len(g.Tokens) > 1 {
			b := diag.ReportWarning(r, diag.StyleExpectedBlock, g.Span(), msgExpectedBlock)
			if !unsafe {
				b.WithFixSuggestion(fix.RewriteSpan(
					"rewrite as a block comment",
					g.Span(), ToBareBlock(lines, g.Anchor), g.Text(c.File),
				))
			}
			b.Emit()
		}
		return
	}

	if IsStarredBlock(g) {
		b := diag.ReportWarning(r, diag.StyleExpectedBareBlock, g.Span(), msgExpectedBareBlock)
		if !unsafe {
			b.WithFixSuggestion(fix.RewriteSpan(
				"strip the padding stars",
				g.Span(), ToBareBlock(lines, g.Anchor), g.Text(c.File),
			))
		}
		b.Emit()
	}
}

// checkSeparateLines asks singleton block comments to become a run of line
// comments. Line-comment groups are already compliant by construction.
func (c *Checker) checkSeparateLines(g *Group, lines []string, unsafe bool, r diag.Reporter) {
	if g.First().Kind != token.KindBlockComment {
		return
	}

	isDoc := IsJSDoc(g)
	if isDoc && !c.Opts.CheckJSDoc {
		return
	}
	if g.TrailedSameLine {
		// Разбивать комментарий с хвостовым кодом на // нельзя.
		return
	}

	content := lines
	if isDoc && len(content) >= 2 {
		// Синтетические строки-разделители JSDoc не переносятся.
		content = content[1 : len(content)-1]
	}
	kept := make([]string, 0, len(content))
	for _, line := range content {
		if line != "" {
			kept = append(kept, line)
		}
	}

	b := diag.ReportWarning(r, diag.StyleExpectedLines, g.Span(), msgExpectedLines)
	if !unsafe && len(kept) > 0 {
		b.WithFixSuggestion(fix.RewriteSpan(
			"rewrite as line comments",
			g.Span(), ToSeparateLines(kept, g.Anchor), g.Text(c.File),
		))
	}
	b.Emit()
}

// starOffset finds the post-star whitespace gap of the nearest previous
// physical line in the comment that has recognizable structure, so a fixed
// line lines up with its neighbours. The opening delimiter line terminates
// the search; when it carries nothing after "/*" the offset is a guessed
// single space.
func (c *Checker) starOffset(g *Group, ln uint32) (offset string, guessed bool) {
	first := g.First()
	for prev := ln - 1; prev >= first.Start.Line; prev-- {
		lineText := c.File.GetLine(prev)
		gap, ok := structureGap(lineText)
		if !ok {
			if prev == first.Start.Line {
				break
			}
			continue
		}
		if gap == "" && prev == first.Start.Line && openerHasNoContent(lineText) {
			return " ", true
		}
		return gap, false
	}
	return " ", true
}

// structureGap parses `whitespace, "/*" or "*", whitespace` and returns the
// trailing whitespace run.
func structureGap(line string) (gap string, ok bool) {
	i := leadingWSLen(line)
	if i >= len(line) {
		return "", false
	}
	if line[i] == '/' {
		i++
	}
	if i >= len(line) || line[i] != '*' {
		return "", false
	}
	for i < len(line) && line[i] == '*' {
		i++
	}
	j := i + leadingWSLen(line[i:])
	return line[i:j], true
}

// openerHasNoContent reports whether the line holds only indentation and the
// opening delimiter.
func openerHasNoContent(line string) bool {
	i := leadingWSLen(line)
	if i >= len(line) || line[i] != '/' {
		return false
	}
	i++
	for i < len(line) && line[i] == '*' {
		i++
	}
	return isBlank(line[i:])
}

// starPrefixLen returns the length of a leading whitespace-then-star run, or
// -1 when the line has no star.
func starPrefixLen(line string) int {
	i := leadingWSLen(line)
	if i < len(line) && line[i] == '*' {
		return i + 1
	}
	return -1
}

// isOpenerTail reports whether the first raw line of a block comment holds
// nothing after the opening delimiter: blank, or a bare star for "/**".
func isOpenerTail(line string) bool {
	if strings.HasPrefix(line, "*") {
		return isBlank(line[1:])
	}
	return isBlank(line)
}

// anyLineOpensDelimiter guards against nesting a comment opener inside a
// freshly rendered block.
func anyLineOpensDelimiter(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, "/") {
			return true
		}
	}
	return false
}
