package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"

	"github.com/google/shlex"
	"github.com/google/subcommands"
)

const shellPrompt = "fin> "

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run commands in a single session" }
func (*shellCmd) Usage() string {
	return `shell

  Reads commands from the standard input, one per line, and runs them in the
  same session: 'login' once, then run any other command. Arguments can be
  quoted with single or double quotes, and '#' starts a comment.
  Type 'exit' or 'quit' to leave.
`
}

func (*shellCmd) SetFlags(_ *flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	if a.email != "" {
		if _, err := a.LoggedIn(ctx); err != nil {
			fmt.Fprintf(a.Err, "Error: %v\n", err)
		}
	}
	// credentials from the command line are only used to open the shell.
	a.email, a.password = "", ""

	in := bufio.NewScanner(a.In)
	fmt.Fprint(a.Out, shellPrompt)
	for in.Scan() {
		words, err := splitLine(in.Text())
		switch {
		case err != nil:
			fmt.Fprintf(a.Err, "Error: %v\n", err)
		case len(words) == 0:
		case words[0] == "exit" || words[0] == "quit":
			return subcommands.ExitSuccess
		default:
			a.run(ctx, words)
		}
		fmt.Fprint(a.Out, shellPrompt)
	}
	fmt.Fprintln(a.Out)
	if err := in.Err(); err != nil {
		fmt.Fprintf(a.Err, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run executes one shell line with a fresh commander.
func (a *App) run(ctx context.Context, words []string) subcommands.ExitStatus {
	fs := flag.NewFlagSet("fin", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	c := subcommands.NewCommander(fs, "fin")
	c.Output = a.Out
	c.Error = a.Err
	c.Register(c.HelpCommand(), "")
	c.Register(c.CommandsCommand(), "")
	register(c, false)
	if err := fs.Parse(words); err != nil {
		return subcommands.ExitUsageError
	}
	return c.Execute(ctx, a)
}

// splitLine splits a line into words the way a POSIX shell does: quotes group
// words, a backslash escapes the next character and '#' starts a comment.
func splitLine(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("invalid line %q: %w", line, err)
	}
	return words, nil
}
