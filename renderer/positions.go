// Package renderer turns computed reports into markdown for terminal
// display. It is purely presentational: it orders nothing and recomputes
// no per-asset aggregate, only the portfolio totals line.
package renderer

import (
	"fmt"
	"strings"

	"github.com/foliotool/folio"
)

// Positions renders the per-asset reports as a markdown document with a
// concluding portfolio totals row. The reports arrive already sorted by
// display name and are rendered in that order.
func Positions(assets []folio.AssetReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Portfolio Positions\n\n")

	if len(assets) == 0 {
		fmt.Fprint(&b, "No transactions.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Bought | Break-even | Sold | Avg. sell | Fees | Remaining | Realized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")

	var fees, realized folio.Money
	for _, a := range assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			a.Name,
			a.Bought,
			a.BreakEven,
			a.Sold,
			a.AvgSell,
			a.Fees,
			a.Remaining,
			a.Realized.SignedString(),
		)
		fees = fees.Add(a.Fees)
		realized = realized.Add(a.Realized)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** | | **%s** |\n",
		fees,
		realized.SignedString(),
	)

	return b.String()
}

// Warnings renders the engine's diagnostics as a bulleted section, or
// nothing when there are none.
func Warnings(warnings []folio.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprint(&b, "## Warnings\n\n")
	for _, w := range warnings {
		fmt.Fprintf(&b, "- %s\n", w)
	}
	return b.String()
}
