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

// rangeFlags are the flags shared by commands reporting on a range of dates.
type rangeFlags struct {
	period string
	start  string
	date   string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.date, "d", "", "The end date for the range, or a day in the period. Defaults to today.")
}

// Range returns the selected range. Without any flag it is unbounded.
func (r *rangeFlags) Range() (date.Range, error) {
	if r.period == "" && r.start == "" && r.date == "" {
		return date.Range{}, nil
	}
	on := date.Today()
	if r.date != "" {
		d, err := date.Parse(r.date)
		if err != nil {
			return date.Range{}, err
		}
		on = d
	}
	if r.start != "" {
		from, err := date.Parse(r.start)
		if err != nil {
			return date.Range{}, err
		}
		if from.After(on) {
			return date.Range{}, fmt.Errorf("start date %s is after end date %s", from, on)
		}
		return date.Range{From: from, To: on}, nil
	}
	if r.period == "" {
		return date.Range{To: on}, nil
	}
	p, err := date.ParsePeriod(r.period)
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(on, p), nil
}

type addTxCmd struct {
	kind        string
	amount      string
	category    string
	description string
	date        string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record an income or an expense" }
func (*addTxCmd) Usage() string {
	return `add-tx -type <income|expense> -amount <amount> -category <category> [-desc <text>] [-d <date>]

  Records a transaction for the logged in user:
  - type: income or expense.
  - amount: zero or more, in the configured currency.
  - category: expenses must use one of the configured categories, incomes use any label.
  - desc: an optional description.
  - d: the day of the transaction. Defaults to today.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "expense", "Transaction type: income or expense")
	f.StringVar(&c.amount, "amount", "", "Amount, zero or more (required)")
	f.StringVar(&c.category, "category", "", "Category (required)")
	f.StringVar(&c.description, "desc", "", "Optional description")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
}

func (c *addTxCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	kind, err := finance.ParseTransactionKind(c.kind)
	if err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(a.Err, "Error: invalid amount %q\n", c.amount)
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
	tx, err := t.AddTransaction(ctx, finance.CreateTransactionRequest{
		Amount:      amount,
		Kind:        kind,
		Category:    c.category,
		Description: c.description,
		Date:        on,
	})
	if err != nil {
		return a.fail("adding transaction", err)
	}
	fmt.Fprintln(a.Out, renderer.Transaction(tx, a.Config.Currency))
	return subcommands.ExitSuccess
}

type txCmd struct {
	rangeFlags
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `tx [-p <period> | -s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists the logged in user's transactions, oldest first, with options for
  filtering and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(a.Err, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	t, err := a.LoggedIn(ctx)
	if err != nil {
		return a.fail("", err)
	}
	txs, err := t.Transactions(ctx)
	if err != nil {
		return a.fail("listing transactions", err)
	}
	txs = finance.TransactionsIn(txs, r)
	if c.head > 0 && c.head < len(txs) {
		txs = txs[:c.head]
	}
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}

	a.printMarkdown(renderer.RenderTransactions(renderer.NewTransactions(txs, a.Config.Currency)))
	return subcommands.ExitSuccess
}

type budgetCmd struct {
	rangeFlags
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the budget dashboard" }
func (*budgetCmd) Usage() string {
	return `budget [-p <period> | -s <start_date>] [-d <date>]

  Shows income, expenses, net balance and expenses per category, and warns
  when expenses exceed the configured share of income.
  Without flags, all transactions are accounted for.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) { c.rangeFlags.SetFlags(f) }

func (c *budgetCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := app(args)
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(a.Err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	t, err := a.LoggedIn(ctx)
	if err != nil {
		return a.fail("", err)
	}
	report, err := t.Budget(ctx, r)
	if err != nil {
		return a.fail("computing budget", err)
	}
	a.printMarkdown(renderer.RenderBudget(renderer.NewBudget(report, a.Config.Currency)))
	return subcommands.ExitSuccess
}
