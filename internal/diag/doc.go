// Package diag defines the core diagnostic model shared by all phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the scanner and the comment-style checker.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting.
//   - Model fix suggestions as structured edits that the CLI can
//     materialise and optionally apply.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; selection and application of fixes lives in
// internal/fix and the driver layer.
//
// # Data model
//
// Diagnostic is the central record: Severity, Code (compact numeric
// identifier with a stable string form), Message, primary source.Span,
// optional Notes, optional Fixes.
//
// Fix is data-only: Title, Kind, Applicability (AlwaysSafe,
// SafeWithHeuristics, ManualReview), IsPreferred, Edits, and an optional
// Thunk for lazily built edits. TextEdit carries an optional OldText guard
// the fix engine validates before applying.
//
// A withheld fix is not an error: when a producer cannot guarantee a safe
// rewrite it reports the diagnostic with no Fixes attached, and consumers
// must treat that as a deliberate, final answer.
package diag
