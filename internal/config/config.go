package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"commentfmt/internal/comment"
	"commentfmt/internal/diag"
)

// FileName is the manifest looked up from the target path upward.
const FileName = "commentfmt.toml"

// fileConfig зеркалит структуру commentfmt.toml как есть.
type fileConfig struct {
	Style styleSection `toml:"style"`
	Files filesSection `toml:"files"`
}

type styleSection struct {
	Target        string `toml:"target"`
	CheckJSDoc    bool   `toml:"check_jsdoc"`
	IgnorePattern string `toml:"ignore_pattern"`
}

type filesSection struct {
	Extensions []string `toml:"extensions"`
}

// Resolved is a manifest after defaulting and validation, ready to hand to
// the checker and the directory walker.
type Resolved struct {
	Options    comment.Options
	Extensions []string
}

// Manifest ties a resolved configuration to the file it came from.
// Root is the directory holding the manifest.
type Manifest struct {
	Path     string
	Root     string
	Resolved Resolved
}

// Error is a configuration failure with a diagnostic code attached, so the
// CLI can report it the same way it reports style findings.
type Error struct {
	Code diag.Code
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Code.ID(), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Default returns the configuration used when no manifest is found.
func Default() Resolved {
	return Resolved{
		Options: comment.Options{
			Style:         comment.StyleStarredBlock,
			CheckJSDoc:    false,
			IgnorePattern: comment.DefaultIgnorePattern,
		},
		Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".go", ".c", ".h", ".java"},
	}
}

// Find walks from startDir toward the filesystem root looking for a
// commentfmt.toml. Returns ok=false when none exists.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses and validates a manifest file. Keys that are absent keep
// their defaults; keys that are present are validated strictly.
func Load(path string) (Resolved, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Resolved{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	res := Default()

	if meta.IsDefined("style", "target") {
		style, err := comment.ParseStyle(cfg.Style.Target)
		if err != nil {
			return Resolved{}, &Error{Code: diag.ConfBadStyle, Path: path, Err: err}
		}
		res.Options.Style = style
	}
	if meta.IsDefined("style", "check_jsdoc") {
		res.Options.CheckJSDoc = cfg.Style.CheckJSDoc
	}
	if meta.IsDefined("style", "ignore_pattern") {
		// Пустая строка явно отключает фильтр директив.
		if cfg.Style.IgnorePattern == "" {
			res.Options.IgnorePattern = nil
		} else {
			re, err := regexp.Compile(cfg.Style.IgnorePattern)
			if err != nil {
				return Resolved{}, &Error{Code: diag.ConfBadIgnoreExpr, Path: path, Err: err}
			}
			res.Options.IgnorePattern = re
		}
	}
	if meta.IsDefined("files", "extensions") {
		res.Extensions = cfg.Files.Extensions
	}
	return res, nil
}

// Discover combines Find and Load. When no manifest exists the defaults are
// returned with ok=false so callers can still run.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Resolved: Default()}, false, nil
	}
	res, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:     path,
		Root:     filepath.Dir(path),
		Resolved: res,
	}, true, nil
}
