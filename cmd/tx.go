package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/foliotool/folio"
	"github.com/foliotool/folio/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	input string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of an export, oldest first" }
func (*txCmd) Usage() string {
	return `folio tx [-i <file>] [-head <n>] [-tail <n>]

  Reads a DeGiro transactions export and lists the parsed transactions in
  chronological order, without running the matching engine.

  -head and -tail compose: -head keeps the n oldest transactions first,
  then -tail keeps the last n of those.

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Transactions export to read, '-' for stdin.")
	f.IntVar(&c.head, "head", 0, "Only display the first n transactions.")
	f.IntVar(&c.tail, "tail", 0, "Only display the last n transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs, status := readTransactions(cfg, c.input)
	if status != subcommands.ExitSuccess {
		return status
	}

	// The export may be newest-first; the listing is always oldest
	// first, under the engine's ordering contract: ties keep export
	// order.
	slices.SortStableFunc(txs, folio.CompareChronological)

	printMarkdown(renderer.Transactions(headTail(txs, c.head, c.tail)))

	return subcommands.ExitSuccess
}

// headTail keeps the first head transactions, then the last tail of
// those. Zero means unbounded on that side.
func headTail(txs []folio.Transaction, head, tail int) []folio.Transaction {
	if head > 0 && len(txs) > head {
		txs = txs[:head]
	}
	if tail > 0 && len(txs) > tail {
		txs = txs[len(txs)-tail:]
	}
	return txs
}
