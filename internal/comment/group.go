package comment

import (
	"regexp"

	"commentfmt/internal/source"
	"commentfmt/internal/token"
)

// Group is a maximal run of comments that is checked and rewritten as one
// unit. Block comments always form singleton groups; adjacent standalone
// line comments merge.
type Group struct {
	// Tokens holds the member comments in source order. Never empty.
	Tokens []token.Token
	// Anchor is the whitespace prefix before the first token on its line.
	// Rewrites reuse it to indent every emitted line.
	Anchor string
	// TrailedSameLine is set when another token starts on the same line the
	// group ends on. Conversions that would push that token onto a comment
	// line are suppressed.
	TrailedSameLine bool
}

// First returns the opening token of the group.
func (g *Group) First() token.Token {
	return g.Tokens[0]
}

// Last returns the closing token of the group.
func (g *Group) Last() token.Token {
	return g.Tokens[len(g.Tokens)-1]
}

// Span covers the group from the first delimiter to the last.
func (g *Group) Span() source.Span {
	return g.First().Span.Cover(g.Last().Span)
}

// Text returns the exact source text the group occupies, delimiters included.
func (g *Group) Text(f *source.File) string {
	return g.Span().Slice(f.Content)
}

// BuildGroups filters the token stream down to standalone comments and merges
// adjacent line comments into groups.
//
// A comment is dropped when it matches ignore, or when any preceding token
// (code or comment, retained or not) ends on the comment's starting line:
// trailing comments annotate the code next to them and are out of scope.
//
// Two line comments merge only when the earlier one is the token immediately
// before the later one in the full stream and their lines are consecutive.
// Anything between them, an ignored comment included, breaks the group.
//
// Groups that consist of a single comment confined to one physical line are
// discarded: there is nothing multi-line to check.
func BuildGroups(f *source.File, tokens []token.Token, ignore *regexp.Regexp) []*Group {
	groups := make([]*Group, 0)
	lastIdx := make([]int, 0) // индекс последнего токена каждой группы

	var cur *Group
	prevRetained := -1 // индекс последнего оставленного комментария

	for i := range tokens {
		tok := tokens[i]
		if !tok.IsComment() {
			continue
		}
		if ignore != nil && ignore.MatchString(tok.Text) {
			continue
		}
		if i > 0 && tokens[i-1].End.Line == tok.Start.Line {
			// Комментарий после кода на той же строке.
			continue
		}

		merge := cur != nil &&
			tok.Kind == token.KindLineComment &&
			prevRetained == i-1 &&
			tokens[i-1].Kind == token.KindLineComment &&
			tokens[i-1].End.Line+1 == tok.Start.Line

		if merge {
			cur.Tokens = append(cur.Tokens, tok)
			lastIdx[len(lastIdx)-1] = i
		} else {
			cur = &Group{
				Tokens: []token.Token{tok},
				Anchor: lineAnchor(f, tok),
			}
			groups = append(groups, cur)
			lastIdx = append(lastIdx, i)
		}
		prevRetained = i
	}

	kept := groups[:0]
	for gi, g := range groups {
		if len(g.Tokens) == 1 && g.First().SingleLine() {
			continue
		}
		li := lastIdx[gi]
		if li+1 < len(tokens) && tokens[li+1].Start.Line == tokens[li].End.Line {
			g.TrailedSameLine = true
		}
		kept = append(kept, g)
	}
	return kept
}

// lineAnchor returns the text before the token on its starting line. For a
// standalone comment that is the line's indentation.
func lineAnchor(f *source.File, tok token.Token) string {
	line := f.GetLine(tok.Start.Line)
	col := int(tok.Start.Col) - 1
	if col < 0 || col > len(line) {
		return ""
	}
	return line[:col]
}
