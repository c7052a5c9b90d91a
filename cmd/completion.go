package cmd

import (
	"flag"

	"github.com/etnz/fra/docs"
	"github.com/etnz/fra/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the global flags and the subcommands registered in c
// for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch sc.Name() {
		case "topic":
			sub.Args = complete.PredictFunc(predictTopics)
		case "show", "delete":
			sub.Args = complete.PredictFunc(predictRecordIDs)
		}
		root.Sub[sc.Name()] = sub
	})
	return root
}

// IsRegistered reports whether a subcommand of that name is registered in c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		if sc.Name() == name {
			found = true
		}
	})
	return found
}

type boolFlag interface {
	IsBoolFlag() bool
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "id":
			flags[f.Name] = complete.PredictFunc(predictRecordIDs)
		case "store-file":
			flags[f.Name] = predict.Files("*.json")
		case "lang":
			flags[f.Name] = predict.Set(renderer.Locales())
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func predictRecordIDs(prefix string) []string {
	var ids []string
	for _, r := range CurrentConfig().OpenStore().List() {
		ids = append(ids, r.ID)
	}
	return ids
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return topics
}
