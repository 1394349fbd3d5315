package cmd

import (
	"testing"

	"github.com/foliotool/folio"
)

func listing(names ...string) []folio.Transaction {
	txs := make([]folio.Transaction, len(names))
	for i, name := range names {
		txs[i] = folio.Transaction{Name: name}
	}
	return txs
}

func names(txs []folio.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Name
	}
	return out
}

func TestHeadTail(t *testing.T) {
	txs := listing("a", "b", "c", "d", "e")

	cases := []struct {
		name       string
		head, tail int
		want       []string
	}{
		{"unbounded", 0, 0, []string{"a", "b", "c", "d", "e"}},
		{"head only", 2, 0, []string{"a", "b"}},
		{"tail only", 0, 2, []string{"d", "e"}},
		// -head and -tail compose: the tail is taken from the head.
		{"head then tail", 3, 2, []string{"b", "c"}},
		{"head larger than input", 10, 0, []string{"a", "b", "c", "d", "e"}},
		{"tail larger than head", 2, 10, []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(headTail(txs, tc.head, tc.tail))
			if len(got) != len(tc.want) {
				t.Fatalf("headTail(%d, %d) = %v, want %v", tc.head, tc.tail, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("headTail(%d, %d) = %v, want %v", tc.head, tc.tail, got, tc.want)
				}
			}
		})
	}
}
