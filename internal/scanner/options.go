package scanner

import (
	"commentfmt/internal/source"
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
// Сканер только вызывает его; форматирует diag внешний слой.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// ReportKindUnterminatedBlock identifies an unterminated block comment.
const ReportKindUnterminatedBlock = "unterminated-block-comment"

// Options configures a scan pass.
type Options struct {
	Reporter Reporter // может быть nil — тогда проблемы игнорируем, но сканируем дальше
}
