package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка — на первое время
	UnknownCode Code = 0

	// Сканер
	ScanInfo                     Code = 1000
	ScanUnterminatedBlockComment Code = 1001

	// Стиль многострочных комментариев
	StyleInfo              Code = 2000
	StyleExpectedBlock     Code = 2001
	StyleExpectedBareBlock Code = 2002
	StyleStartNewline      Code = 2003
	StyleEndNewline        Code = 2004
	StyleMissingStar       Code = 2005
	StyleAlignment         Code = 2006
	StyleExpectedLines     Code = 2007

	// IO/конфигурация (зарезервируем)
	IOInfo            Code = 4000
	IOReadFailed      Code = 4001
	ConfBadStyle      Code = 4002
	ConfBadIgnoreExpr Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:                  "Unknown error",
	ScanInfo:                     "Scanner information",
	ScanUnterminatedBlockComment: "Unterminated block comment",
	StyleInfo:                    "Comment style information",
	StyleExpectedBlock:           "Expected a block comment instead of consecutive line comments",
	StyleExpectedBareBlock:       "Expected a block comment without padding stars",
	StyleStartNewline:            "Expected a linebreak after '/*'",
	StyleEndNewline:              "Expected a linebreak before '*/'",
	StyleMissingStar:             "Expected a '*' at the start of this line",
	StyleAlignment:               "Expected this line to be aligned with the start of the comment",
	StyleExpectedLines:           "Expected multiple line comments instead of a block comment",
	IOInfo:                       "IO information",
	IOReadFailed:                 "Failed to read source file",
	ConfBadStyle:                 "Unknown target comment style",
	ConfBadIgnoreExpr:            "Invalid ignore pattern",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
