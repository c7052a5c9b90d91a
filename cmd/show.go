package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fra"
	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	id string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the ratios and charts of a record" }
func (*showCmd) Usage() string {
	return `fra show -id <id>

  Displays a stored record: both ratios, the assessment and the proportion charts.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" && f.NArg() > 0 {
		c.id = f.Arg(0)
	}
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg := CurrentConfig()
	form := fra.NewForm()
	if !form.Edit(cfg.OpenStore(), c.id) {
		fmt.Fprintf(os.Stderr, "Error: record %q not found\n", c.id)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Form(form.Get(fra.FieldName), form.Preview(), cfg.Options()))
	return subcommands.ExitSuccess
}
