// Package comment implements the multi-line comment style checker.
//
// # Pipeline
//
//   - BuildGroups filters the token stream down to standalone comments and
//     merges adjacent // runs into groups (internal/scanner supplies the
//     tokens).
//   - Classify / IsStarredBlock / IsJSDoc name the group's current form.
//   - ContentLines strips decoration and shared indentation into the
//     canonical content line list; for bare blocks this runs baseline
//     indentation detection, the most delicate computation in the package.
//   - Checker validates each group against the configured Style and reports
//     diagnostics with rewrite fixes through internal/diag.
//   - ToStarredBlock / ToBareBlock / ToSeparateLines render content lines in
//     a target form. They are pure functions of (lines, anchor).
//
// # Safety
//
// A rewrite is withheld (the diagnostic is reported without fixes) whenever
// applying it could corrupt the source: content holding a literal "*/",
// content lines opening with a delimiter character, or a trailing token on
// the comment's last line. The whole pass is a pure function of (tokens,
// source lines, options); groups are independent and processed in source
// order.
package comment
