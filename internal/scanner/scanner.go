package scanner

import (
	"commentfmt/internal/source"
	"commentfmt/internal/token"
)

// Scanner walks file bytes and extracts comment tokens plus coalesced
// code runs. It is language-agnostic: it only understands //-comments,
// /* */-comments and string literals (so comment markers inside strings
// stay inert). Block comments do not nest — the first */ terminates,
// which is the model every rewrite safety check below relies on.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
	tokens []token.Token

	codeStart int64 // -1, если код-ран не начат
	codeEnd   uint32
}

// Scan tokenizes the file and returns the token stream in source order.
func Scan(f *source.File, opts Options) []token.Token {
	s := &Scanner{
		file:      f,
		cursor:    NewCursor(f),
		opts:      opts,
		tokens:    make([]token.Token, 0, 16),
		codeStart: -1,
	}
	s.run()
	return s.tokens
}

func (s *Scanner) run() {
	for !s.cursor.EOF() {
		b := s.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			// пробелы не расширяют код-ран, но и не закрывают его
			s.cursor.Bump()
			continue
		}

		if b == '/' {
			if b0, b1, ok := s.cursor.Peek2(); ok && b0 == '/' {
				if b1 == '/' {
					s.flushCode()
					s.scanLineComment()
					continue
				}
				if b1 == '*' {
					s.flushCode()
					s.scanBlockComment()
					continue
				}
			}
		}

		if b == '"' || b == '\'' || b == '`' {
			s.extendCode(func() { s.scanString(b) })
			continue
		}

		s.extendCode(func() { s.cursor.Bump() })
	}
	s.flushCode()
}

// extendCode runs consume and folds the consumed bytes into the current
// code run.
func (s *Scanner) extendCode(consume func()) {
	if s.codeStart < 0 {
		s.codeStart = int64(s.cursor.Off)
	}
	consume()
	s.codeEnd = s.cursor.Off
}

func (s *Scanner) flushCode() {
	if s.codeStart < 0 {
		return
	}
	sp := source.Span{File: s.file.ID, Start: uint32(s.codeStart), End: s.codeEnd}
	s.tokens = append(s.tokens, token.Token{
		Kind:  token.KindCode,
		Span:  sp,
		Text:  sp.Slice(s.file.Content),
		Start: s.file.Pos(sp.Start),
		End:   s.file.Pos(sp.End),
	})
	s.codeStart = -1
}

// //... до конца строки; Text без "//".
func (s *Scanner) scanLineComment() {
	mark := s.cursor.Mark()
	s.cursor.Bump()
	s.cursor.Bump()
	for !s.cursor.EOF() && s.cursor.Peek() != '\n' {
		s.cursor.Bump()
	}
	sp := s.cursor.SpanFrom(mark)
	s.tokens = append(s.tokens, token.Token{
		Kind:  token.KindLineComment,
		Span:  sp,
		Text:  string(s.file.Content[sp.Start+2 : sp.End]),
		Start: s.file.Pos(sp.Start),
		End:   s.file.Pos(sp.End),
	})
}

// /* ... */ без вложенности; незакрытый — репорт и обрезаем на EOF.
func (s *Scanner) scanBlockComment() {
	mark := s.cursor.Mark()
	s.cursor.Bump()
	s.cursor.Bump()
	closed := false
	for !s.cursor.EOF() {
		if b0, b1, ok := s.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			s.cursor.Bump()
			s.cursor.Bump()
			closed = true
			break
		}
		s.cursor.Bump()
	}
	sp := s.cursor.SpanFrom(mark)

	textEnd := sp.End
	if closed {
		textEnd -= 2
	} else if s.opts.Reporter != nil {
		s.opts.Reporter.Report(ReportKindUnterminatedBlock, sp, "unterminated block comment")
	}

	s.tokens = append(s.tokens, token.Token{
		Kind:  token.KindBlockComment,
		Span:  sp,
		Text:  string(s.file.Content[sp.Start+2 : textEnd]),
		Start: s.file.Pos(sp.Start),
		End:   s.file.Pos(sp.End),
	})
}

// Строковые литералы: " и ' с экранированием и до конца строки,
// ` — сырой, до закрывающего бектика или EOF.
func (s *Scanner) scanString(quote byte) {
	s.cursor.Bump()
	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		if b == '\n' && quote != '`' {
			// незакрытая строка: не съедаем перевод строки
			return
		}
		s.cursor.Bump()
		if b == '\\' && quote != '`' {
			if !s.cursor.EOF() && s.cursor.Peek() != '\n' {
				s.cursor.Bump()
			}
			continue
		}
		if b == quote {
			return
		}
	}
}
