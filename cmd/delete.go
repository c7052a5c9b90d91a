package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	id  string
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a company record" }
func (*deleteCmd) Usage() string {
	return `fra delete -id <id> [-y]

  Deletes a record after confirmation. Deleting an unknown id does nothing.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id")
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" && f.NArg() > 0 {
		c.id = f.Arg(0)
	}
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg := CurrentConfig()
	store := cfg.OpenStore()

	if !c.yes {
		name := c.id
		if r, ok := store.Get(c.id); ok {
			name = fmt.Sprintf("%s (%s)", r.Name, r.ID)
		}
		if !confirm(stdin, stdout, fmt.Sprintf("Delete %s?", name)) {
			fmt.Fprintln(stdout, "Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	if err := store.RemoveByID(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Records(store.List(), cfg.Options()))
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question, anything but yes is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return isYes(answer)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

