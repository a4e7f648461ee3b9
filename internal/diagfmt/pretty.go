package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"commentfmt/internal/diag"
	"commentfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с
// аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.printDiagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) printDiagnostic(d diag.Diagnostic) {
	file := p.fs.Get(d.Primary.File)
	start, end := p.fs.Resolve(d.Primary)

	sev := strings.ToUpper(d.Severity.String())
	head := fmt.Sprintf("%s:%d:%d: %s %s: %s",
		formatPath(file, p.fs, p.opts.PathMode),
		start.Line, start.Col,
		p.colorSeverity(sev, d.Severity), d.Code.ID(), d.Message)
	fmt.Fprintln(p.w, head)

	p.printContext(file, d.Primary, start, end)

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			nf := p.fs.Get(note.Span.File)
			ns, _ := p.fs.Resolve(note.Span)
			fmt.Fprintf(p.w, "  note: %s:%d:%d: %s\n",
				formatPath(nf, p.fs, p.opts.PathMode), ns.Line, ns.Col, note.Msg)
		}
	}

	if p.opts.ShowFixes {
		for _, fix := range d.Fixes {
			label := fix.Title
			if fix.ID != "" {
				label = fmt.Sprintf("%s [%s]", fix.Title, fix.ID)
			}
			fmt.Fprintf(p.w, "  fix: %s (%s)\n", label, fix.Applicability)
		}
	}
}

// printContext shows the first line of the span with a caret run under the
// highlighted range.
func (p *prettyPrinter) printContext(file *source.File, span source.Span, start, end source.LineCol) {
	lineText := file.GetLine(start.Line)
	if lineText == "" && span.Empty() {
		return
	}

	gutter := fmt.Sprintf("%5d | ", start.Line)
	fmt.Fprintf(p.w, "%s%s\n", gutter, lineText)

	startCol := int(start.Col) - 1
	if startCol > len(lineText) {
		startCol = len(lineText)
	}
	endCol := len(lineText)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol < startCol {
		endCol = startCol
	}

	// Ширина в колонках терминала, не в байтах.
	pad := runewidth.StringWidth(lineText[:startCol])
	width := runewidth.StringWidth(lineText[startCol:endCol])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", len(gutter)+pad), p.colorMarker(marker))
}

func (p *prettyPrinter) colorSeverity(text string, sev diag.Severity) string {
	if !p.opts.Color {
		return text
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(text)
	default:
		return color.New(color.FgCyan).Sprint(text)
	}
}

func (p *prettyPrinter) colorMarker(marker string) string {
	if !p.opts.Color {
		return marker
	}
	return color.New(color.FgGreen, color.Bold).Sprint(marker)
}
