package folio

import "testing"

func TestCompareChronological(t *testing.T) {
	morning := trade(day(1), NewTimeOfDay(9, 0), "ACME", "US0000000001", 10, 100)
	afternoon := trade(day(1), NewTimeOfDay(15, 30), "ACME", "US0000000001", -5, 110)
	nextDay := trade(day(2), NewTimeOfDay(8, 0), "ACME", "US0000000001", -5, 120)

	if got := CompareChronological(morning, afternoon); got != -1 {
		t.Errorf("CompareChronological(morning, afternoon) = %d, want -1", got)
	}
	if got := CompareChronological(nextDay, afternoon); got != +1 {
		t.Errorf("CompareChronological(nextDay, afternoon) = %d, want +1", got)
	}

	// Equal timestamps compare as 0 so a stable sort keeps export order.
	same := trade(day(1), NewTimeOfDay(9, 0), "ACME", "US0000000001", -10, 200)
	if got := CompareChronological(morning, same); got != 0 {
		t.Errorf("CompareChronological(equal timestamps) = %d, want 0", got)
	}
}
