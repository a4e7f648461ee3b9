package driver

import (
	"commentfmt/internal/comment"
	"commentfmt/internal/diag"
	"commentfmt/internal/scanner"
	"commentfmt/internal/source"
	"commentfmt/internal/token"
)

// Result is the outcome of checking one file.
type Result struct {
	Path   string        // путь, как его указал вызывающий
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // токены файла (для команды scan)
	Groups int           // сколько групп комментариев было проверено
	Bag    *diag.Bag     // диагностики
}

// scanReporterAdapter переводит репорты сканера в диагностики.
type scanReporterAdapter struct {
	r diag.Reporter
}

func (a *scanReporterAdapter) Report(kind string, span source.Span, msg string) {
	if kind == scanner.ReportKindUnterminatedBlock {
		diag.ReportWarning(a.r, diag.ScanUnterminatedBlockComment, span, msg).Emit()
	}
}

// CheckFile loads a file from disk and checks its comment groups. Load
// failures become an IO diagnostic in the bag, never a hard error: a
// directory run keeps going past one unreadable file.
func CheckFile(fs *source.FileSet, path string, opts comment.Options, maxDiagnostics int) Result {
	bag := diag.NewBag(maxDiagnostics)

	id, err := fs.Load(path)
	if err != nil {
		bag.Add(diag.NewError(diag.IOReadFailed, source.Span{}, "failed to read file: "+err.Error()))
		return Result{Path: path, Bag: bag}
	}
	return checkLoaded(fs, id, path, opts, bag)
}

// CheckSource checks an in-memory buffer (stdin, tests).
func CheckSource(fs *source.FileSet, name string, content []byte, opts comment.Options, maxDiagnostics int) Result {
	bag := diag.NewBag(maxDiagnostics)
	id := fs.AddVirtual(name, content)
	return checkLoaded(fs, id, name, opts, bag)
}

func checkLoaded(fs *source.FileSet, id source.FileID, path string, opts comment.Options, bag *diag.Bag) Result {
	file := fs.Get(id)
	reporter := &diag.BagReporter{Bag: bag}

	tokens := scanner.Scan(file, scanner.Options{Reporter: &scanReporterAdapter{r: reporter}})
	groups := comment.BuildGroups(file, tokens, opts.IgnorePattern)
	comment.NewChecker(file, opts).Check(groups, reporter)
	bag.Sort()

	return Result{
		Path:   path,
		FileID: id,
		Tokens: tokens,
		Groups: len(groups),
		Bag:    bag,
	}
}
