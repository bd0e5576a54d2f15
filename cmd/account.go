package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type registerCmd struct {
	email    string
	name     string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and log in" }
func (*registerCmd) Usage() string {
	return `register -email <email> -name <name> -password <password>

  Creates a new account and logs it in:
  - email: must contain '@', compared case-insensitively. Must be unique.
  - name: the display name.
  - password: at least 6 characters.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
	f.StringVar(&c.name, "name", "", "Display name (required)")
	f.StringVar(&c.password, "password", "", "Password, at least 6 characters (required)")
}

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	t, err := a.Tracker()
	if err != nil {
		return a.fail("opening database", err)
	}
	u, err := t.Register(ctx, finance.RegisterRequest{Email: c.email, Name: c.name, Password: c.password})
	if err != nil {
		return a.fail("registering", err)
	}
	fmt.Fprintf(a.Out, "Registered and logged in as %s <%s>\n", u.Name, u.Email)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to an account" }
func (*loginCmd) Usage() string {
	return `login -email <email> -password <password>

  Logs in for the rest of the session. Outside of 'fin shell' the session ends
  with the command, use the global -email and -password flags instead.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
	f.StringVar(&c.password, "password", "", "Password (required)")
}

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	if c.email == "" || c.password == "" {
		fmt.Fprintln(a.Err, "Error: -email and -password are required.")
		return subcommands.ExitUsageError
	}
	t, err := a.Tracker()
	if err != nil {
		return a.fail("opening database", err)
	}
	u, err := t.Login(ctx, c.email, c.password)
	if err != nil {
		return a.fail("logging in", err)
	}
	fmt.Fprintf(a.Out, "Logged in as %s <%s>\n", u.Name, u.Email)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "end the session" }
func (*logoutCmd) Usage() string {
	return `logout

  Ends the session. Logging out when nobody is logged in does nothing.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	t, err := a.Tracker()
	if err != nil {
		return a.fail("opening database", err)
	}
	t.Logout()
	fmt.Fprintln(a.Out, "Logged out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "print the logged in user" }
func (*whoamiCmd) Usage() string {
	return `whoami

  Prints the logged in user.
`
}

func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (*whoamiCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	t, err := a.LoggedIn(ctx)
	if err != nil {
		return a.fail("", err)
	}
	u := t.Session().User()
	fmt.Fprintf(a.Out, "%s <%s>\n", u.Name, u.Email)
	return subcommands.ExitSuccess
}
