package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fra"
	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
)

// previewCmd holds the flags for the 'preview' subcommand.
type previewCmd struct {
	values map[fra.Field]*string
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "compute ratios and assessment without saving" }
func (*previewCmd) Usage() string {
	return `fra preview -ca <current assets> -cl <current liabilities> -td <total debt> -eq <equity> [-name <name>]

  Computes both ratios, the assessment and the proportion charts. Nothing is saved.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	c.values = make(map[fra.Field]*string)
	formFlags(f, c.values)
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := CurrentConfig()
	form := fra.NewForm()
	fillForm(form, f, c.values)
	printMarkdown(renderer.Form(form.Get(fra.FieldName), form.Preview(), cfg.Options()))
	return subcommands.ExitSuccess
}
