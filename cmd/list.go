package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	html bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all company records" }
func (*listCmd) Usage() string {
	return `fra list [-html]

  Displays every record with its ratios, investment decision and verdicts.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "write an html fragment instead of markdown")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := CurrentConfig()
	doc := renderer.Records(cfg.OpenStore().List(), cfg.Options())
	if !c.html {
		printMarkdown(doc)
		return subcommands.ExitSuccess
	}
	html, err := renderer.HTML(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering html: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, html)
	return subcommands.ExitSuccess
}
