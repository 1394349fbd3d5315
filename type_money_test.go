package folio

import "testing"

func TestMoney_SignedString(t *testing.T) {
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := EUR(12.5).SignedString(); got[0] != '+' {
		t.Errorf("SignedString(12.5) = %q, want a leading '+'", got)
	}
	if got := EUR(-12.5).SignedString(); got[0] == '+' {
		t.Errorf("SignedString(-12.5) = %q, want no leading '+'", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	sum := EUR(10).Add(EUR(2.5))
	if want := EUR(12.5); !sum.Equal(want) {
		t.Errorf("Add() = %s, want %s", sum, want)
	}

	avg := EUR(2100).Div(Q(20))
	if want := EUR(105); !avg.Equal(want) {
		t.Errorf("Div() = %s, want %s", avg, want)
	}

	if got := EUR(-3).Abs(); !got.Equal(EUR(3)) {
		t.Errorf("Abs() = %s, want %s", got, EUR(3))
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	// A zero value with no currency adopts the other operand's currency.
	got := Money{}.Add(EUR(5))
	if got.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want %q", got.Currency(), "EUR")
	}
}

func TestQuantity_Min(t *testing.T) {
	if got := Q(3).Min(Q(5)); !got.Equal(Q(3)) {
		t.Errorf("Min(3,5) = %s, want 3", got)
	}
	if got := Q(5).Min(Q(3)); !got.Equal(Q(3)) {
		t.Errorf("Min(5,3) = %s, want 3", got)
	}
}
