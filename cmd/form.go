package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fra"
	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
)

type formCmd struct{}

func (*formCmd) Name() string     { return "form" }
func (*formCmd) Synopsis() string { return "enter records in an interactive form" }
func (*formCmd) Usage() string {
	return `fra form

  Starts an interactive form. Every change prints the updated ratios and
  charts. Type "help" for the list of commands.
`
}

func (c *formCmd) SetFlags(f *flag.FlagSet) {}

func (c *formCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := CurrentConfig()
	s := newSession(cfg.OpenStore(), stdout, cfg.Options(), printMarkdown)
	if err := s.run(stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const sessionHelp = `Commands:
  set <field> <value>  change a field: name, ca, cl, td, eq
  load <id>            load a stored record
  reset                blank the form
  submit               save the form
  delete <id>          delete a record, after confirmation
  list                 show the records
  show                 show the current ratios
  quit                 end the session
`

// session drives a Form from text commands.
type session struct {
	store *fra.Store
	form  *fra.Form
	opts  renderer.Options
	out   io.Writer
	print func(string)
	// in reads the commands, and the answers to questions.
	in *bufio.Scanner
}

func newSession(store *fra.Store, out io.Writer, opts renderer.Options, print func(string)) *session {
	s := &session{
		store: store,
		form:  fra.NewForm(),
		opts:  opts,
		out:   out,
		print: print,
	}
	s.form.OnChange(func(p fra.Preview) {
		s.print(renderer.Form(s.form.Get(fra.FieldName), p, s.opts))
	})
	return s
}

// run executes commands read from in until quit or the end of in.
func (s *session) run(in io.Reader) error {
	s.in = bufio.NewScanner(in)
	// start with the first record loaded, or an empty preview.
	if records := s.store.List(); len(records) > 0 {
		s.form.Load(records[0])
	} else {
		s.form.Reset()
	}
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if quit := s.exec(s.in.Text()); quit {
			return nil
		}
	}
}

// exec runs a single command line and reports whether the session is over.
func (s *session) exec(line string) bool {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "":
	case "set":
		name, value, _ := strings.Cut(rest, " ")
		field, err := fra.ParseField(name)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		s.form.Set(field, strings.TrimSpace(value))
	case "load", "edit":
		if !s.form.Edit(s.store, rest) {
			fmt.Fprintf(s.out, "Error: record %q not found\n", rest)
		}
	case "reset", "clear":
		s.form.Reset()
	case "submit", "save":
		id, err := s.form.Submit(s.store)
		if errors.Is(err, fra.ErrNameRequired) {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return false
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error saving record: %v\n", err)
			return false
		}
		fmt.Fprintf(s.out, "Saved record %s\n", id)
		s.print(renderer.Records(s.store.List(), s.opts))
	case "delete":
		if rest == "" {
			fmt.Fprintln(s.out, "Error: delete needs a record id")
			return false
		}
		name := rest
		if r, ok := s.store.Get(rest); ok {
			name = fmt.Sprintf("%s (%s)", r.Name, r.ID)
		}
		if !s.confirm(fmt.Sprintf("Delete %s?", name)) {
			fmt.Fprintln(s.out, "Cancelled.")
			return false
		}
		if err := s.form.Delete(s.store, rest); err != nil {
			fmt.Fprintf(s.out, "Error deleting record: %v\n", err)
			return false
		}
		s.print(renderer.Records(s.store.List(), s.opts))
	case "list":
		s.print(renderer.Records(s.store.List(), s.opts))
	case "show":
		s.print(renderer.Form(s.form.Get(fra.FieldName), s.form.Preview(), s.opts))
	case "help", "?":
		fmt.Fprint(s.out, sessionHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "Error: unknown command %q, type help\n", verb)
	}
	return false
}

// confirm asks a yes/no question, the answer is the next input line.
func (s *session) confirm(question string) bool {
	fmt.Fprintf(s.out, "%s [y/N] ", question)
	if s.in == nil || !s.in.Scan() {
		return false
	}
	return isYes(s.in.Text())
}
