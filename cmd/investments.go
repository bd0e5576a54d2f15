package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addHoldingCmd struct {
	kind     string
	symbol   string
	name     string
	quantity string
	price    string
	date     string
}

func (*addHoldingCmd) Name() string     { return "add-holding" }
func (*addHoldingCmd) Synopsis() string { return "record a stock or crypto purchase" }
func (*addHoldingCmd) Usage() string {
	return `add-holding -type <stock|crypto> -symbol <symbol> -qty <quantity> -price <price> [-name <name>] [-d <date>]

  Records an investment holding for the logged in user:
  - type: stock or crypto.
  - symbol: the ticker (e.g. "AAPL"), or the coin id (e.g. "bitcoin") for crypto.
  - qty: a positive quantity, fractions allowed.
  - price: the unit purchase price, zero or more.
  - name: a display name. Defaults to the symbol.
  - d: the purchase day. Defaults to today.
`
}

func (c *addHoldingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "stock", "Asset type: stock or crypto")
	f.StringVar(&c.symbol, "symbol", "", "Ticker or coin id (required)")
	f.StringVar(&c.name, "name", "", "Display name. Defaults to the symbol")
	f.StringVar(&c.quantity, "qty", "", "Positive quantity (required)")
	f.StringVar(&c.price, "price", "", "Unit purchase price (required)")
	f.StringVar(&c.date, "d", "", "Purchase date (YYYY-MM-DD). Defaults to today.")
}

func (c *addHoldingCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	kind, err := finance.ParseAssetKind(c.kind)
	if err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(a.Err, "Error: invalid quantity %q\n", c.quantity)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(a.Err, "Error: invalid price %q\n", c.price)
		return subcommands.ExitUsageError
	}
	var on date.Date
	if c.date != "" {
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(a.Err, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	t, err := a.LoggedIn(ctx)
	if err != nil {
		return a.fail("", err)
	}
	h, err := t.AddHolding(ctx, finance.CreateHoldingRequest{
		Symbol:        c.symbol,
		Name:          c.name,
		Quantity:      qty,
		PurchasePrice: price,
		PurchaseDate:  on,
		Kind:          kind,
	})
	if err != nil {
		return a.fail("adding holding", err)
	}
	fmt.Fprintln(a.Out, renderer.Holding(h, a.Config.Currency))
	return subcommands.ExitSuccess
}

type holdingsCmd struct {
	offline bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show the investment portfolio" }
func (*holdingsCmd) Usage() string {
	return `holdings [-offline]

  Shows the logged in user's holdings valued at live prices, the portfolio
  value, profit and loss, and the allocation per holding.
  Holdings without a live price are valued at their purchase price.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Do not fetch live prices, value holdings at purchase price.")
}

func (c *holdingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	t, err := a.LoggedIn(ctx)
	if err != nil {
		return a.fail("", err)
	}
	report, err := t.Investments(ctx, !c.offline)
	if err != nil {
		return a.fail("valuing holdings", err)
	}
	a.printMarkdown(renderer.RenderInvestments(renderer.NewInvestments(report, a.Config.Currency, c.offline)))
	return subcommands.ExitSuccess
}

type priceCmd struct {
	kind string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "look up the current price of a symbol" }
func (*priceCmd) Usage() string {
	return `price [-type <stock|crypto>] <symbol>...

  Prints the current price of each symbol, or "unavailable" when the quote
  service has none. Does not require to be logged in.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "stock", "Asset type: stock or crypto")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() == 0 {
		fmt.Fprintln(a.Err, "Error: at least one symbol is required.")
		return subcommands.ExitUsageError
	}
	kind, err := finance.ParseAssetKind(c.kind)
	if err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, symbol := range f.Args() {
		symbol = finance.NormalizeSymbol(symbol, kind)
		price, ok := a.quotes.Price(ctx, symbol, kind)
		if !ok {
			fmt.Fprintf(a.Out, "%s: unavailable\n", symbol)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(a.Out, "%s: %s\n", symbol, finance.M(price, a.Config.Currency))
	}
	return status
}
