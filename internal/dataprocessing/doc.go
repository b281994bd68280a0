// Package dataprocessing implements the core of the sales reporting
// pipeline: reading the raw dataset and turning it into aggregates and
// rank selections.
//
// # Architecture
//
// Data flows strictly forward through four stages, each consuming the
// previous stage's output and producing a new value:
//
//	Raw rows → Normalizer → Validity filter → Aggregator → Rank selector
//
// 1. ReadFile: loads the CSV or Excel dataset and maps the required
// columns (Order_Date, Product, Total_Sales, State_Code)
//
// 2. Normalizer: parses day-month-year dates and currency-prefixed
// amounts; unparsable cells become absent fields, never errors. Raw
// missing-field counters are tallied here, against original cell
// presence, independent of parse success.
//
// 3. FilterValid: keeps records with all four fields present and orders
// them chronologically by month (stable within a month).
//
// 4. Aggregate / Select: exact-decimal grouped sums and counts, then
// extrema extraction with deterministic tie-breaking.
//
// # Error Handling
//
// Only the reader can fail a run (missing file, missing required column).
// Everything after it treats bad cells as per-record data-quality facts:
// the record is dropped by the filter and the drop is visible only through
// the missing-value summary.
//
// # Empty Input
//
// An empty valid set produces empty aggregates and a Selections bundle
// with HasData=false. Report generation renders that state legibly instead
// of failing.
package dataprocessing
