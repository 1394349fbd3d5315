package folio

import (
	"slices"
	"strings"
)

// AssetReport is the engine's output for a single instrument: position
// aggregates, the weighted average prices on both sides, and the realized
// gain computed by FIFO lot matching. Reports are computed once and
// handed to the renderer as-is; the renderer never recomputes aggregates.
type AssetReport struct {
	Name string // instrument display name
	ISIN string // instrument unique identifier

	Bought      Quantity // total purchased quantity
	BoughtValue Money    // sum of absolute trade values of purchases
	Sold        Quantity // total sold quantity
	SoldValue   Money    // sum of absolute trade values of sales
	Fees        Money    // sum of absolute fee magnitudes, buys and sells alike

	BreakEven Money    // weighted average purchase price, zero if nothing was bought
	AvgSell   Money    // weighted average sale price, zero if nothing was sold
	Remaining Quantity // open position, bought minus sold
	Realized  Money    // gain on quantity matched against purchase lots
}

// ComputeReports runs the cost-basis matching engine over an unordered
// set of transactions and returns one report per distinct instrument,
// sorted by display name ascending. Records are grouped by ISIN and every
// group is re-sorted chronologically before matching, so no ordering is
// assumed on the input; the result is deterministic for a given set.
//
// The engine performs no I/O and never fails. Inputs the matching cannot
// account for, a sell exceeding all open lot quantity or a negative unit
// price, are reported as warnings; the figures are still computed from
// the records as given, so a sell-only instrument yields a negative
// remaining quantity rather than an error.
func ComputeReports(txs []Transaction) ([]AssetReport, []Warning) {
	// Phase one: partition by instrument into owned groups.
	groups := make(map[string][]Transaction)
	for _, tx := range txs {
		groups[tx.ISIN] = append(groups[tx.ISIN], tx)
	}

	// Phase two: process groups in a fixed order so that warnings come
	// out deterministically too. The final report order is imposed by
	// the sort on display name below, not by processing order.
	isins := make([]string, 0, len(groups))
	for isin := range groups {
		isins = append(isins, isin)
	}
	slices.Sort(isins)

	reports := make([]AssetReport, 0, len(groups))
	var warnings []Warning
	for _, isin := range isins {
		report, ws := computeAsset(groups[isin])
		reports = append(reports, report)
		warnings = append(warnings, ws...)
	}

	slices.SortFunc(reports, func(a, b AssetReport) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ISIN, b.ISIN)
	})
	return reports, warnings
}

// computeAsset matches one instrument's transactions chronologically and
// derives its report.
func computeAsset(group []Transaction) (AssetReport, []Warning) {
	// The sort must be stable: trades sharing a timestamp keep the
	// export's original order, and matching depends on that.
	slices.SortStableFunc(group, CompareChronological)

	// Seed every monetary total with the group's currency so that sides
	// with no trades still render uniformly.
	zero := M(0, group[0].Price.Currency())
	report := AssetReport{
		Name: group[0].Name, ISIN: group[0].ISIN,
		BoughtValue: zero, SoldValue: zero, Fees: zero,
		BreakEven: zero, AvgSell: zero, Realized: zero,
	}
	var warnings []Warning

	var queue lotQueue
	for i, tx := range group {
		if i > 0 && CompareChronological(group[i-1], tx) == 0 {
			warnings = append(warnings, newWarning(WarnAmbiguousOrder, tx, Q(0)))
		}
		if tx.Price.IsNegative() {
			warnings = append(warnings, newWarning(WarnNegativePrice, tx, Q(0)))
		}

		report.Fees = report.Fees.Add(tx.Fees.Abs())

		if tx.IsBuy() {
			queue.push(tx.Quantity, tx.Price)
			report.Bought = report.Bought.Add(tx.Quantity)
			report.BoughtValue = report.BoughtValue.Add(tx.Value.Abs())
			continue
		}

		// Everything else is a sale, including a zero quantity, which
		// accumulates zero everywhere and matches nothing.
		sellQty := tx.Quantity.Abs()
		report.Sold = report.Sold.Add(sellQty)
		report.SoldValue = report.SoldValue.Add(tx.Value.Abs())

		realized, unmatched := queue.sell(sellQty, tx.Price)
		report.Realized = report.Realized.Add(realized)
		if unmatched.IsPositive() {
			warnings = append(warnings, newWarning(WarnOversell, tx, unmatched))
		}
	}

	// Weighted averages are derived from the accumulated totals; a side
	// with no trades has no meaningful average and reports zero.
	if report.Bought.IsPositive() {
		report.BreakEven = report.BoughtValue.Div(report.Bought)
	}
	if report.Sold.IsPositive() {
		report.AvgSell = report.SoldValue.Div(report.Sold)
	}
	report.Remaining = report.Bought.Sub(report.Sold)

	return report, warnings
}
