package folio

// Transaction is one ledger event for one instrument, as produced by the
// ingestion step. All monetary fields are already converted to the
// account's single reporting currency, and locale-specific decimal
// representations have been normalized upstream; the engine treats every
// numeric field as well-formed. A Transaction is immutable once built.
type Transaction struct {
	Date Date      // trade date
	Time TimeOfDay // trade time, minute granularity

	Name string // instrument display name, as printed on the export
	ISIN string // instrument unique identifier

	Quantity Quantity // signed: positive is a buy, negative is a sell
	Price    Money    // unit price, always positive
	Value    Money    // quantity times price; sign varies by source convention
	Fees     Money    // transaction costs; sign varies by source convention
	Total    Money    // settled amount including fees
}

// IsBuy reports whether the transaction is a purchase. Anything that is
// not strictly positive, including a zero quantity, is handled by the
// engine's sell branch; see ComputeReports.
func (t Transaction) IsBuy() bool { return t.Quantity.IsPositive() }

// CompareChronological orders two transactions by their composite
// timestamp (date, then time of day), suitable for the slices sort
// functions. It deliberately returns 0 for equal timestamps so that a
// stable sort preserves the export's original order, which is part of
// the matching contract; callers that list or match transactions must
// all sort with this single comparator.
func CompareChronological(a, b Transaction) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Time.Compare(b.Time)
}
