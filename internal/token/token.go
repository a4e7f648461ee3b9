package token

import (
	"commentfmt/internal/source"
)

// Token represents a single scanned token with its location.
// For comments, Text is the raw content between the delimiters ("//" or
// "/*"/"*/"), exactly as authored. Start/End are resolved once at scan
// time so later passes never re-derive them.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Start source.LineCol
	End   source.LineCol
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == KindLineComment || t.Kind == KindBlockComment
}

// SingleLine reports whether the token starts and ends on one physical line.
func (t Token) SingleLine() bool {
	return t.Start.Line == t.End.Line
}
