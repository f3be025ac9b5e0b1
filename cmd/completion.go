package cmd

import (
	"context"
	"flag"

	"github.com/etnz/registration"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests and returns when there are none.
//
// Install the completion with COMP_INSTALL=1 vreg.
func Complete(name string) {
	Completion(Commands).Complete(name)
}

// Completion builds the completion tree of commands and the global flags.
func Completion(commands []subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictors(flag.CommandLine),
	}
	for _, c := range commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: predictors(fs), Args: predict.Nothing}
		switch c.Name() {
		case "topic":
			sub.Args = complete.PredictFunc(func(string) []string { return topics() })
		case "import":
			sub.Args = predict.Files("*")
		}
		root.Sub[c.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Set(commandNames(commands))}
	}
	return root
}

func commandNames(commands []subcommands.Command) []string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name())
	}
	return names
}

// predictors returns a predictor per flag of fs, guessed from the flag name.
func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		m[f.Name] = predictor(f)
	})
	return m
}

func predictor(f *flag.Flag) complete.Predictor {
	switch f.Name {
	case "data", "o":
		return predict.Files("*")
	case "format":
		return predict.Set{"markdown", "table", "csv"}
	case "mode":
		return predict.Set{"yoy", "qoq"}
	case "granularity":
		return predict.Set{"month", "quarter"}
	case "by":
		return predict.Set{"category", "manufacturer"}
	case "category", "categories":
		return complete.PredictFunc(func(string) []string { return facets(registration.Category) })
	case "manufacturer", "manufacturers":
		return complete.PredictFunc(func(string) []string { return facets(registration.Manufacturer) })
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

// facets returns the labels of dim in the app dataset, nil when it cannot be loaded.
func facets(dim registration.Dimension) []string {
	ds, err := loadDataset(context.Background(), registration.Filter{})
	if err != nil {
		return nil
	}
	if dim == registration.Manufacturer {
		return ds.Manufacturers()
	}
	return ds.Categories()
}
