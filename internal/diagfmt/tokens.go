package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"commentfmt/internal/comment"
	"commentfmt/internal/source"
	"commentfmt/internal/token"
)

// TokenOutput описывает один токен в JSON-выводе команды scan.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Start string      `json:"start"`
	End   string      `json:"end"`
}

// GroupOutput описывает одну группу комментариев в JSON-выводе.
type GroupOutput struct {
	Form    string      `json:"form"`
	Tokens  int         `json:"tokens"`
	Span    source.Span `json:"span"`
	Anchor  string      `json:"anchor"`
	Trailed bool        `json:"trailed,omitempty"`
	Content []string    `json:"content"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String())
		if tok.IsComment() {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Span:  tok.Span,
			Start: fmt.Sprintf("%d:%d", tok.Start.Line, tok.Start.Col),
			End:   fmt.Sprintf("%d:%d", tok.End.Line, tok.End.Col),
		}
		if tok.IsComment() {
			out.Text = tok.Text
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatGroupsPretty выводит группы комментариев с их формой и содержимым.
func FormatGroupsPretty(w io.Writer, groups []*comment.Group, fs *source.FileSet) error {
	for i, g := range groups {
		startPos, endPos := fs.Resolve(g.Span())
		fmt.Fprintf(w, "group %d: %s, %d token(s) at %d:%d-%d:%d",
			i+1, comment.Classify(g), len(g.Tokens),
			startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if g.TrailedSameLine {
			fmt.Fprint(w, " (trailed)")
		}
		fmt.Fprintln(w)
		for _, line := range comment.ContentLines(g) {
			fmt.Fprintf(w, "    | %s\n", line)
		}
	}
	return nil
}

// FormatGroupsJSON выводит группы комментариев в JSON формате.
func FormatGroupsJSON(w io.Writer, groups []*comment.Group) error {
	output := make([]GroupOutput, 0, len(groups))
	for _, g := range groups {
		output = append(output, GroupOutput{
			Form:    comment.Classify(g).String(),
			Tokens:  len(g.Tokens),
			Span:    g.Span(),
			Anchor:  g.Anchor,
			Trailed: g.TrailedSameLine,
			Content: comment.ContentLines(g),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
