// Package cmd implements the fin command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/etnz/finance"
	"github.com/etnz/finance/config"
	"github.com/etnz/finance/quote"
	"github.com/etnz/finance/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Environment variables used as fallback for the global flags. They are also
// passed to extensions.
const (
	EnvConfig   = "FIN_CONFIG"
	EnvDB       = "FIN_DB"
	EnvEmail    = "FIN_EMAIL"
	EnvPassword = "FIN_PASSWORD"
	EnvVerbose  = "FIN_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the YAML configuration file (env "+EnvConfig+").")
	dbFile     = flag.String("db", "", "Path to the SQLite database file, overrides database.path (env "+EnvDB+").")
	email      = flag.String("email", "", "Email to log in with for this command (env "+EnvEmail+").")
	password   = flag.String("password", "", "Password to log in with for this command (env "+EnvPassword+").")
	Verbose    = flag.Bool("v", false, "Log debug messages on stderr (env "+EnvVerbose+").")
	raw        = flag.Bool("raw", false, "Print markdown instead of rendering it for the terminal.")
)

// flagOrEnv returns the flag value, or the environment variable when the flag is not set.
func flagOrEnv(v *string, env string) string {
	if *v != "" {
		return *v
	}
	return os.Getenv(env)
}

func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one
// with an *App as argument.
func Register(c *subcommands.Commander) {
	register(c, true)
}

func register(c *subcommands.Commander, withShell bool) {
	c.Register(&registerCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&logoutCmd{}, "account")
	c.Register(&whoamiCmd{}, "account")

	c.Register(&addTxCmd{}, "budget")
	c.Register(&txCmd{}, "budget")
	c.Register(&budgetCmd{}, "budget")

	c.Register(&addHoldingCmd{}, "investments")
	c.Register(&holdingsCmd{}, "investments")
	c.Register(&priceCmd{}, "investments")

	if withShell {
		c.Register(&shellCmd{}, "")
	}
	c.Register(&assistCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// App holds what commands share for the lifetime of the process: the
// configuration, the tracker and its session.
type App struct {
	Config *config.Config
	Log    zerolog.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	// Raw prints markdown as is.
	Raw bool

	// credentials used to log in on demand, cleared once used.
	email, password string

	store   *store.Store
	quotes  *quote.Client
	tracker *finance.Tracker
}

// NewApp returns an App configured from the global flags and their
// environment variables. The store is opened on first use.
func NewApp() (*App, error) {
	cfg, err := config.LoadAndValidate(flagOrEnv(configFile, EnvConfig))
	if err != nil {
		return nil, err
	}
	if db := flagOrEnv(dbFile, EnvDB); db != "" {
		cfg.Database.Path = db
	}
	a := newApp(cfg, newLogger(os.Stderr, verbose()))
	a.email, a.password = flagOrEnv(email, EnvEmail), flagOrEnv(password, EnvPassword)
	a.Raw = *raw
	return a, nil
}

func newApp(cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Config: cfg,
		Log:    log,
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		quotes: quote.NewClient(cfg.Quotes.EquityURL, cfg.Quotes.CryptoURL,
			quote.WithTimeout(cfg.Quotes.Timeout),
			quote.WithLogger(log),
		),
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).Level(level).With().Timestamp().Logger()
}

// Tracker returns the tracker, opening the store on first call.
func (a *App) Tracker() (*finance.Tracker, error) {
	if a.tracker != nil {
		return a.tracker, nil
	}
	s, err := store.Open(a.Config.Database, store.WithLogger(a.Log))
	if err != nil {
		return nil, err
	}
	a.store = s
	a.tracker = finance.NewTracker(s, a.quotes,
		finance.WithLogger(a.Log),
		finance.WithCategories(a.Config.Budget.Categories),
		finance.WithThreshold(a.Config.Budget.Threshold),
	)
	return a.tracker, nil
}

// LoggedIn returns the tracker with a logged in user. When nobody is logged
// in, it logs in with the credentials given on the command line, once.
func (a *App) LoggedIn(ctx context.Context) (*finance.Tracker, error) {
	t, err := a.Tracker()
	if err != nil {
		return nil, err
	}
	if _, ok := t.Session().CurrentUserID(); ok {
		return t, nil
	}
	if a.email == "" {
		return nil, fmt.Errorf("%w: use -email and -password, or login in a shell", finance.ErrNotLoggedIn)
	}
	e, p := a.email, a.password
	a.email, a.password = "", ""
	if _, err := t.Login(ctx, e, p); err != nil {
		return nil, err
	}
	return t, nil
}

// Close releases the store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// app extracts the App from the subcommands arguments.
func app(args []any) *App {
	for _, arg := range args {
		if a, ok := arg.(*App); ok {
			return a
		}
	}
	panic("cmd: commands must be executed with an *App argument")
}

// fail prints err and returns the matching exit status.
func (a *App) fail(what string, err error) subcommands.ExitStatus {
	if what == "" {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
	} else {
		fmt.Fprintf(a.Err, "Error %s: %v\n", what, err)
	}
	if errors.Is(err, finance.ErrInvalidRequest) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
