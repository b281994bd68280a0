// Package exporter writes the computed result bundle to the output
// directory: per-aggregate CSV files, a combined text report, a
// multi-sheet Excel workbook, and PNG charts.
//
// Exporters are thin serialization wrappers. They consume fully computed
// values from the pipeline and never aggregate, re-order, or mutate them;
// computation correctness is decided before any file is opened.
//
// Every output is regenerated whole on each run. CSV files carry a UTF-8
// BOM so Excel opens them correctly.
package exporter
