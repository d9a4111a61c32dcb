// Package metals reconciles and values a personal precious-metals ledger.
// It is designed to be local-first and auditable: flat CSV records in, flat
// records and daily series out, with no hidden state in between.
//
// The core functionalities include:
//   - Amount Extraction: Parsing gold and silver quantities and order
//     identifiers out of unstructured order-confirmation text (fractional
//     ounces, decimal ounces, grams, with per-line quantity multipliers).
//   - Ledger Reconciliation: Merging heterogeneous purchase records
//     (spreadsheet-resident and freshly parsed) into a single deduplicated
//     ledger, keyed by order, vendor and metal, with field-level precedence.
//   - Spot Resolution: Building continuous daily spot-price series in the
//     reporting currency, preferring native quotes and falling back to a
//     USD cross rate, with forward and backward gap filling.
//   - Valuation: Walking the ledger's date span day by day, maintaining
//     running inventory and weighted-average cost, and deriving unrealized
//     profit and loss per metal and portfolio-wide.
//   - Aggregation: Grouped summaries of the ledger by metal, vendor and
//     month.
//
// This package is the foundational logic of the `mtl` command-line tool;
// network transports live in the quote package and markdown presentation in
// the renderer package.
package metals
