// Package token defines the token model shared by the scanner and the
// comment checker.
//
// The stream is deliberately coarse: comments are first-class tokens (they
// are what the tool analyses), while everything between them collapses
// into opaque Code runs. The checker only ever asks positional questions
// about code — whether something ends on the line a comment starts on, or
// starts on the line a comment ends on — so code tokens keep their spans
// and line/column endpoints but no further structure.
package token
