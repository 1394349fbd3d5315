// Package degiro reads the "Transactions" CSV export of a DeGiro
// account and converts each row into a folio.Transaction.
//
// The export is row-oriented, comma-delimited with quoted fields, uses
// the broker's locale for decimal numbers (comma as decimal separator),
// and reports every amount both in the instrument's local currency and
// in the account's single reporting currency. Only the reporting
// currency columns are carried over; the matching engine never sees the
// local amounts.
package degiro

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/foliotool/folio"
	"github.com/shopspring/decimal"
)

// Column layout of a DeGiro transactions export.
const (
	colDate         = 0  // "02-01-2006"
	colTime         = 1  // "15:04"
	colProduct      = 2  // instrument display name
	colISIN         = 3  // instrument identifier
	colVenue        = 5  // execution venue, unused
	colQuantity     = 6  // signed, negative for sales
	colPrice        = 7  // unit price in the pricing currency
	colValue        = 11 // trade value in the reporting currency
	colFees         = 14 // transaction costs in the reporting currency
	colTotal        = 16 // settled amount in the reporting currency
	colTotalCur     = 17 // reporting currency code
	columnsPerTrade = 19
)

// Parse reads a DeGiro transactions CSV and returns one transaction per
// row, in file order. The engine re-sorts per instrument, so the export
// may be newest-first or oldest-first.
//
// Rows that do not describe a trade (too few columns, unparseable date,
// no instrument) are skipped with a notice. Unparseable numeric fields
// are normalized to zero so that the matching engine only ever sees
// well-formed numbers.
func Parse(r io.Reader) ([]folio.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the export pads some rows differently

	// Discard the header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("degiro: cannot read CSV header: %w", err)
	}

	var txs []folio.Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("degiro: cannot read CSV line %d: %w", line, err)
		}
		if len(record) < columnsPerTrade {
			log.Printf("degiro: skipping line %d: %d columns, want %d", line, len(record), columnsPerTrade)
			continue
		}

		date, err := folio.ParseDate(isoDate(record[colDate]))
		if err != nil {
			log.Printf("degiro: skipping line %d: %v", line, err)
			continue
		}

		name := strings.TrimSpace(record[colProduct])
		isin := strings.TrimSpace(record[colISIN])
		if name == "" && isin == "" {
			log.Printf("degiro: skipping line %d: no instrument", line)
			continue
		}

		// A blank time is kept as midnight; trades on the same day then
		// fall back to file order, which the engine's stable sort keeps.
		tod, err := folio.ParseTimeOfDay(record[colTime])
		if err != nil && strings.TrimSpace(record[colTime]) != "" {
			log.Printf("degiro: line %d: %v, using 00:00", line, err)
		}

		currency := strings.TrimSpace(record[colTotalCur])

		// The price column is quoted in the instrument's pricing
		// currency. The engine works in the single reporting currency,
		// so the unit price is re-derived from the reporting-currency
		// trade value whenever possible.
		quantity := parseDecimal(record[colQuantity])
		value := parseDecimal(record[colValue])
		price := parseDecimal(record[colPrice])
		if !quantity.IsZero() && !value.IsZero() {
			price = value.Abs().Div(quantity.Abs())
		}

		txs = append(txs, folio.Transaction{
			Date:     date,
			Time:     tod,
			Name:     name,
			ISIN:     isin,
			Quantity: folio.Q(quantity),
			Price:    folio.M(price, currency),
			Value:    folio.M(value, currency),
			Fees:     folio.M(parseDecimal(record[colFees]), currency),
			Total:    folio.M(parseDecimal(record[colTotal]), currency),
		})
	}
	return txs, nil
}

// isoDate rewrites the export's "02-01-2006" day-first date as ISO-8601.
func isoDate(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return strings.TrimSpace(s)
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// parseDecimal converts a locale-formatted decimal string to an exact
// decimal. Numbers the export leaves blank or malformed become zero; the
// engine must never receive a non-numeric value.
func parseDecimal(s string) decimal.Decimal {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.Trim(cleaned, `"`)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
