package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/foliotool/folio"
	"github.com/foliotool/folio/degiro"
	"github.com/foliotool/folio/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	input    string
	warnings bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "per-asset cost basis, realized gain and open position" }
func (*reportCmd) Usage() string {
	return `folio report [-i <file>] [-warnings]

  Reads a DeGiro transactions export, matches every sale against the
  oldest open purchase lots (FIFO), and displays one line per asset with
  break-even price, realized profit or loss and the remaining position.

Usage Examples:
# Report on an export file.
$ folio report -i Transactions.csv

# Report on an export piped in.
$ cat Transactions.csv | folio report -i -

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Transactions export to read, '-' for stdin.")
	f.BoolVar(&c.warnings, "warnings", false, "Also display matching warnings (oversells, ambiguous ordering). Defaults from the config file.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs, status := readTransactions(cfg, c.input)
	if status != subcommands.ExitSuccess {
		return status
	}

	reports, warnings := folio.ComputeReports(txs)

	md := renderer.Positions(reports)
	if c.warnings || cfg.Warnings {
		if section := renderer.Warnings(warnings); section != "" {
			md += "\n" + section
		}
	}
	printMarkdown(md)

	return subcommands.ExitSuccess
}

// readTransactions resolves the input flag against the config file and
// parses the export. It is shared by the report and tx subcommands.
func readTransactions(cfg Config, input string) ([]folio.Transaction, subcommands.ExitStatus) {
	if input == "" {
		input = cfg.Input
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "no input: use -i <file> or set 'input' in the config file")
		return nil, subcommands.ExitUsageError
	}

	var r io.Reader
	if input == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open transactions export: %v\n", err)
			return nil, subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	txs, err := degiro.Parse(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse transactions export %q: %v\n", input, err)
		return nil, subcommands.ExitFailure
	}
	return txs, subcommands.ExitSuccess
}
