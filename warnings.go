package folio

import "fmt"

// WarningCode identifies the kind of inconsistency the engine noticed.
type WarningCode string

const (
	// WarnOversell flags a sale whose quantity exceeded all open lot
	// quantity; the excess is excluded from realized gain.
	WarnOversell WarningCode = "oversell"
	// WarnNegativePrice flags a record carrying a negative unit price.
	WarnNegativePrice WarningCode = "negative-price"
	// WarnAmbiguousOrder flags two same-instrument records sharing an
	// identical timestamp; they are matched in export order.
	WarnAmbiguousOrder WarningCode = "ambiguous-order"
)

// Warning is a non-fatal diagnostic emitted by the matching engine. The
// engine always produces a full report; warnings only point at records
// whose figures may be financially implausible.
type Warning struct {
	Code WarningCode
	Name string
	ISIN string
	Date Date
	Time TimeOfDay

	// Quantity is the unmatched sell quantity for WarnOversell, zero
	// otherwise.
	Quantity Quantity
}

func newWarning(code WarningCode, tx Transaction, quantity Quantity) Warning {
	return Warning{
		Code:     code,
		Name:     tx.Name,
		ISIN:     tx.ISIN,
		Date:     tx.Date,
		Time:     tx.Time,
		Quantity: quantity,
	}
}

func (w Warning) String() string {
	switch w.Code {
	case WarnOversell:
		return fmt.Sprintf("%s %s: sale on %s %s exceeds open lots by %s; the excess is unmatched",
			w.Name, w.ISIN, w.Date, w.Time, w.Quantity)
	case WarnNegativePrice:
		return fmt.Sprintf("%s %s: negative unit price on %s %s", w.Name, w.ISIN, w.Date, w.Time)
	case WarnAmbiguousOrder:
		return fmt.Sprintf("%s %s: two trades share timestamp %s %s; matched in export order",
			w.Name, w.ISIN, w.Date, w.Time)
	default:
		return fmt.Sprintf("%s %s: %s", w.Name, w.ISIN, w.Code)
	}
}
