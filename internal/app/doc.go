// Package app assembles the sales reporting pipeline: configuration,
// logging, the four processing stages, and the writer collaborators.
//
// The run discipline is build-then-write: Compute produces the complete
// result bundle as pure values, and only then does Write hand it to the
// CSV, report, workbook, and chart exporters. A failure while writing can
// therefore never leave half-computed aggregates behind.
package app
