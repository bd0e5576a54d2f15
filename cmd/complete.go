package cmd

import (
	"flag"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors for flag values, by "<command>.<flag>" or by flag name.
var predictors = map[string]complete.Predictor{
	"config":           predict.Files("*.yaml"),
	"db":               predict.Files("*.db"),
	"p":                predict.Set{"day", "week", "month", "quarter", "year"},
	"add-tx.type":      predict.Set{finance.Income.String(), finance.Expense.String()},
	"add-tx.category":  predict.Set(finance.DefaultCategories),
	"add-holding.type": predict.Set{finance.Stock.String(), finance.Crypto.String()},
	"price.type":       predict.Set{finance.Stock.String(), finance.Crypto.String()},
}

// Completion describes the commands registered in c, and their flags, for
// shell completion.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors("", global, nil),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		root.Sub[sc.Name()] = &complete.Command{Flags: flagPredictors(sc.Name(), fs, root.Flags)}
	})
	return root
}

// flagPredictors returns the predictors of the flags in fs, skipping those
// already in parent.
func flagPredictors(command string, fs *flag.FlagSet, parent map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if _, exists := parent[f.Name]; exists {
			return
		}
		if p, ok := predictors[command+"."+f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if p, ok := predictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
