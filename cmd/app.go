// Package cmd implements the CLI application to record and assess companies.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fra"
	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&saveCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&showCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&queryCmd{}, "records")

	c.Register(&previewCmd{}, "analysis")
	c.Register(&formCmd{}, "analysis")

	c.Register(&topicCmd{}, "help")
}

const (
	EnvStoreFile = "FRA_STORE_FILE"
	EnvLang      = "FRA_LANG"
	EnvCurrency  = "FRA_CURRENCY"
	EnvVerbose   = "FRA_VERBOSE"
)

const defaultStoreFile = "fra_records.json"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "", "Path to the JSON file holding the records (default $"+EnvStoreFile+" or "+defaultStoreFile+")")
var lang = flag.String("lang", "", "Language of the reports: en or ko (default $"+EnvLang+" or en)")
var currency = flag.String("currency", "", "ISO currency code used to display figures (default $"+EnvCurrency+")")
var plain = flag.Bool("plain", false, "print raw markdown instead of rendering it")
var Verbose = flag.Bool("v", false, "verbose logging (default $"+EnvVerbose+")")

// stdin and stdout are swapped in tests.
var stdin io.Reader = os.Stdin
var stdout io.Writer = os.Stdout

// Config is the resolved global configuration: flags first, then environment
// variables, then defaults.
type Config struct {
	StoreFile string
	Lang      string
	Currency  string
	Verbose   bool
}

// LoadEnv loads the .env file of the working directory, if any. Variables
// already in the environment are kept.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: cannot load .env: %v\n", err)
	}
}

// CurrentConfig resolves the global configuration.
func CurrentConfig() Config {
	c := Config{
		StoreFile: firstNonEmpty(*storeFile, os.Getenv(EnvStoreFile), defaultStoreFile),
		Lang:      firstNonEmpty(*lang, os.Getenv(EnvLang), "en"),
		Currency:  firstNonEmpty(*currency, os.Getenv(EnvCurrency)),
		Verbose:   *Verbose,
	}
	if !c.Verbose {
		if v, err := strconv.ParseBool(os.Getenv(EnvVerbose)); err == nil {
			c.Verbose = v
		}
	}
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Options returns the presentation options of the configuration.
func (c Config) Options() renderer.Options {
	return renderer.Options{Lang: c.Lang, Currency: c.Currency}
}

// Logger returns the logger of the configuration, writing to stderr.
func (c Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if c.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// OpenStore opens the store of the configuration. A missing file is an empty store.
func (c Config) OpenStore() *fra.Store {
	log := c.Logger()
	log.WithField("file", c.StoreFile).Debug("opening store")
	return fra.NewStore(fra.NewFileStorage(c.StoreFile), log)
}

// printMarkdown writes a markdown document to stdout, rendered for the
// terminal unless -plain is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
