package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"commentfmt/internal/comment"
	"commentfmt/internal/diag"
	"commentfmt/internal/source"
)

// Event is one unit of progress in a multi-file run.
type Event struct {
	Path     string
	Findings int // сколько диагностик набрал файл
	Done     int
	Total    int
}

// WalkOptions configures path expansion and the parallel run.
type WalkOptions struct {
	Options        comment.Options
	Extensions     []string // фильтр по расширениям при обходе директорий
	MaxDiagnostics int
	Jobs           int            // <=0 означает GOMAXPROCS
	Progress       func(ev Event) // может быть nil
}

// ExpandPaths resolves a mix of files and directories into a sorted,
// deduplicated file list. Files named explicitly bypass the extension
// filter; directory walks honor it.
func ExpandPaths(paths []string, extensions []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && matchesExtension(p, extensions) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func matchesExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// CheckPaths expands paths and checks every file concurrently. Results come
// back in the expanded (sorted) path order regardless of completion order.
func CheckPaths(ctx context.Context, paths []string, opts WalkOptions) (*source.FileSet, []Result, error) {
	files, err := ExpandPaths(paths, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагружаем все файлы: FileSet не потокобезопасен на запись.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]Result, len(files))

	var progressMu sync.Mutex
	done := 0
	report := func(path string, findings int) {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		done++
		ev := Event{Path: path, Findings: findings, Done: done, Total: len(files)}
		progressMu.Unlock()
		opts.Progress(ev)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOReadFailed, source.Span{}, "failed to read file: "+loadErr.Error()))
				results[i] = Result{Path: path, Bag: bag}
				report(path, bag.Len())
				return nil
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			results[i] = checkLoaded(fileSet, fileIDs[path], path, opts.Options, bag)
			report(path, results[i].Bag.Len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags folds per-file bags into one, preserving result order.
func MergeBags(results []Result, maxDiagnostics int) *diag.Bag {
	merged := diag.NewBag(maxDiagnostics)
	for _, res := range results {
		if res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	return merged
}
