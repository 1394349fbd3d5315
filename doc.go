// Package folio computes per-asset portfolio reports from a brokerage
// transaction export.
//
// The core of the package is the cost-basis matching engine: given the
// full set of buy/sell records for an account, it groups them by
// instrument, establishes chronological order, and matches every sell
// against the oldest open purchase lots (first-in-first-out) to compute
// realized profit and loss, break-even price, and the remaining open
// position per instrument.
//
// The engine is a pure in-memory computation. Reading the broker's
// delimited text export lives in the degiro subpackage, and turning the
// computed reports into displayable text lives in the renderer
// subpackage; data flows one way, from ingestion through the engine to
// the renderer.
//
// All quantities and monetary amounts are carried as exact decimals
// (shopspring/decimal) so that lot matching and weighted averages do not
// accumulate binary floating-point drift.
package folio
