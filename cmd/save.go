package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fra"
	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
)

// figureFlags maps the form fields to their command line flag.
var figureFlags = []struct {
	name  string
	field fra.Field
	usage string
}{
	{"name", fra.FieldName, "Company name"},
	{"ca", fra.FieldCurrentAssets, "Current assets"},
	{"cl", fra.FieldCurrentLiabilities, "Current liabilities"},
	{"td", fra.FieldTotalDebt, "Total debt"},
	{"eq", fra.FieldEquity, "Equity"},
}

// formFlags registers one string flag per form field, values are kept in values.
func formFlags(f *flag.FlagSet, values map[fra.Field]*string) {
	for _, ff := range figureFlags {
		values[ff.field] = f.String(ff.name, "", ff.usage)
	}
}

// fillForm sets into form the fields whose flag was given on the command line.
func fillForm(form *fra.Form, f *flag.FlagSet, values map[fra.Field]*string) {
	f.Visit(func(fl *flag.Flag) {
		for _, ff := range figureFlags {
			if ff.name == fl.Name {
				form.Set(ff.field, *values[ff.field])
			}
		}
	})
}

// saveCmd holds the flags for the 'save' subcommand.
type saveCmd struct {
	id     string
	values map[fra.Field]*string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "create or update a company record" }
func (*saveCmd) Usage() string {
	return `fra save [-id <id>] -name <name> -ca <current assets> -cl <current liabilities> -td <total debt> -eq <equity>

  Saves a company record. Without -id a new record is created. With the -id of
  a stored record, only the given flags are changed and the ratios recomputed.
  Figures that are not non-negative numbers count as 0.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	c.values = make(map[fra.Field]*string)
	f.StringVar(&c.id, "id", "", "Record id to update")
	formFlags(f, c.values)
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := CurrentConfig()
	store := cfg.OpenStore()

	form := fra.NewForm()
	if c.id != "" && !form.Edit(store, c.id) {
		// an unknown id is saved as a new record under that id.
		form.Set(fra.FieldID, c.id)
	}
	fillForm(form, f, c.values)

	id, err := form.Submit(store)
	if errors.Is(err, fra.ErrNameRequired) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving record: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Saved record %s\n", id)
	printMarkdown(renderer.Records(store.List(), cfg.Options()))
	return subcommands.ExitSuccess
}
