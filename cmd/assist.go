package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finance/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	model string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `assist [-model <model>] [question]

  Starts an interactive session with the AI assistant about the logged in
  user's budget and investments. The optional question is asked first.
  Requires GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment.
  Type 'bye' to exit.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model. Defaults to assist.model from the configuration.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	initialPrompt := strings.Join(f.Args(), " ")
	model := c.model
	if model == "" {
		model = a.Config.Assist.Model
	}

	t, err := a.LoggedIn(ctx)
	if err != nil {
		return a.fail("", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(a.Err, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	trader := agent.NewTrader(model)
	accountant := agent.NewAccountant(model, t, a.Config.Currency)
	for _, e := range []*agent.Expert{trader, accountant} {
		e.Log = a.Log
	}
	ag := agent.New(a.Out, a.In, model, trader, accountant)
	ag.Print = func(_ io.Writer, md string) { a.printMarkdown(md) }

	if err := ag.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(a.Err, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
