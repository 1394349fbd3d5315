package folio

import "time"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// day is a helper for test to create a date in June 2025.
func day(d int) Date { return NewDate(2025, time.June, d) }

// trade builds a transaction the way the ingestion step would: a positive
// quantity is a buy, a negative one a sell, and the trade value carries
// the source's sign convention (negative for buys, positive for sells) so
// tests exercise the engine's absolute-value handling.
func trade(d Date, tod TimeOfDay, name, isin string, qty, price float64) Transaction {
	return Transaction{
		Date:     d,
		Time:     tod,
		Name:     name,
		ISIN:     isin,
		Quantity: Q(qty),
		Price:    EUR(price),
		Value:    EUR(-qty * price),
		Fees:     EUR(0),
		Total:    EUR(-qty * price),
	}
}

// withFees returns a copy of tx with the given fee magnitude, negated the
// way broker exports report costs.
func withFees(tx Transaction, fees float64) Transaction {
	tx.Fees = EUR(-fees)
	tx.Total = tx.Total.Sub(EUR(fees))
	return tx
}
