package diag

import (
	"fmt"

	"commentfmt/internal/source"
)

// Note is a secondary span with extra context for a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is a single byte-range replacement. OldText, when non-empty,
// acts as a guard: the fix engine refuses to apply the edit if the file
// no longer contains exactly that text at the span.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind coarsely classifies a fix suggestion.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	case FixKindSourceAction:
		return "source"
	}
	return "unknown"
}

// FixApplicability describes how confident the producer is that the fix
// can be applied without human review.
type FixApplicability uint8

const (
	FixApplicabilityAlwaysSafe FixApplicability = iota
	FixApplicabilitySafeWithHeuristics
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

// FixBuildContext carries what lazy fix builders need to produce edits.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk lazily builds edits for a fix. Producers attach thunks when the
// edits are expensive to construct up front.
type FixThunk func(FixBuildContext) ([]TextEdit, error)

// Fix represents a possible automated correction. Data-only: the fix
// engine decides whether and when to apply it.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
	Thunk         FixThunk
}

// Resolve materializes the fix's edits, invoking the thunk if needed.
func (f Fix) Resolve(ctx FixBuildContext) (Fix, error) {
	if len(f.Edits) > 0 || f.Thunk == nil {
		return f, nil
	}
	edits, err := f.Thunk(ctx)
	if err != nil {
		return f, fmt.Errorf("build fix %q: %w", f.Title, err)
	}
	f.Edits = edits
	f.Thunk = nil
	return f, nil
}

// MaterializeFixes resolves every fix in the slice deterministically.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	out := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		resolved, err := f.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// Diagnostic is the central record produced by every pass.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix appends a ready-to-use fix with default metadata.
func (d Diagnostic) WithFix(title string, edits ...TextEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

// WithFixSuggestion appends a fully configured fix (materialised or lazy).
func (d Diagnostic) WithFixSuggestion(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}
