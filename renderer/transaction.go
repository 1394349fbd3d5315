package renderer

import (
	"fmt"
	"strings"

	"github.com/foliotool/folio"
)

// Transactions renders parsed transactions as a markdown table, in the
// order given.
func Transactions(txs []folio.Transaction) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")

	if len(txs) == 0 {
		fmt.Fprint(&b, "No transactions.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Time | Asset | ISIN | Quantity | Price | Value | Fees | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Time, tx.Name, tx.ISIN,
			tx.Quantity, tx.Price, tx.Value, tx.Fees, tx.Total,
		)
	}
	return b.String()
}
