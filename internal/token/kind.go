package token

// Kind classifies a scanned token.
type Kind uint8

const (
	// KindCode is a coalesced run of non-comment source text. Code tokens
	// carry no semantic content here; they exist so the grouper can answer
	// "does a token end/start on this line".
	KindCode Kind = iota
	// KindLineComment is a //-comment. Text excludes the delimiter.
	KindLineComment
	// KindBlockComment is a /* */-comment. Text excludes both delimiters.
	KindBlockComment
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "Code"
	case KindLineComment:
		return "LineComment"
	case KindBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}
