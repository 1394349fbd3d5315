package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// sellOnlyExport is a minimal export whose single sale has no prior buy,
// so the engine is guaranteed to emit an oversell warning.
const sellOnlyExport = `Data,Hora,Produto,ISIN,Bolsa de,Centro de execução,Quantidade,Preço,,Valor local,,Valor,,Taxa de câmbio,Custos de transação,,Total,,ID da Ordem
02-06-2025,09:04,ACME,US0000000001,NSY,NSY,-10,"100,00",EUR,"1000,00",EUR,"1000,00",EUR,,"0,00",EUR,"1000,00",EUR,ord-1
`

// captureStdout runs fn and returns what it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

// writeConfig points the -config flag at a fresh config file naming the
// given export, and restores the flag when the test ends.
func writeConfig(t *testing.T, input, extra string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("input: "+input+"\n"+extra), 0o600); err != nil {
		t.Fatal(err)
	}

	old := *configFile
	*configFile = path
	t.Cleanup(func() { *configFile = old })
}

func writeExport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Transactions.csv")
	if err := os.WriteFile(path, []byte(sellOnlyExport), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runReport(t *testing.T, cmd *reportCmd) string {
	t.Helper()

	return captureStdout(t, func() {
		fs := flag.NewFlagSet("report", flag.ContinueOnError)
		if got := cmd.Execute(context.Background(), fs); got != subcommands.ExitSuccess {
			t.Errorf("Execute() = %v, want ExitSuccess", got)
		}
	})
}

func TestReportCmd_ConfigEnablesWarnings(t *testing.T) {
	writeConfig(t, writeExport(t), "warnings: true\n")

	out := runReport(t, &reportCmd{})

	if !strings.Contains(out, "ACME") {
		t.Errorf("output is missing the positions table:\n%s", out)
	}
	if !strings.Contains(out, "Warnings") || !strings.Contains(out, "unmatched") {
		t.Errorf("config warnings: true did not produce the warnings section:\n%s", out)
	}
}

func TestReportCmd_WarningsOffByDefault(t *testing.T) {
	writeConfig(t, writeExport(t), "warnings: false\n")

	out := runReport(t, &reportCmd{})

	if !strings.Contains(out, "ACME") {
		t.Errorf("output is missing the positions table:\n%s", out)
	}
	if strings.Contains(out, "Warnings") {
		t.Errorf("warnings section displayed without the flag or config toggle:\n%s", out)
	}
}

func TestReportCmd_WarningsFlagOverridesConfig(t *testing.T) {
	writeConfig(t, writeExport(t), "warnings: false\n")

	out := runReport(t, &reportCmd{warnings: true})

	if !strings.Contains(out, "Warnings") {
		t.Errorf("-warnings flag was ignored:\n%s", out)
	}
}
