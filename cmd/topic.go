package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/finance/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Show documentation for the given topics, '*' for all of them.
  Without topic, list the available ones.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	topics := f.Args()
	if len(topics) == 0 {
		index, err := docs.Index()
		if err != nil {
			fmt.Fprintf(a.Err, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		var b strings.Builder
		b.WriteString("# Topics\n\n")
		for _, t := range index {
			fmt.Fprintf(&b, "* `%s`: %s\n", t.Name, t.Summary)
		}
		a.printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(a.Err, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	a.printMarkdown(doc)
	return subcommands.ExitSuccess
}
