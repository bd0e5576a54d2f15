package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/finance"
	"github.com/etnz/finance/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// newTestApp returns an App on a fresh SQLite database, printing raw markdown
// in buffers.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	return newTestAppWithConfig(t, config.Default(), input)
}

func newTestAppWithConfig(t *testing.T, cfg *config.Config, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg.Database.Path = filepath.Join(t.TempDir(), "fin.db")
	a := newApp(cfg, zerolog.Nop())
	var out, errOut bytes.Buffer
	a.In = strings.NewReader(input)
	a.Out = &out
	a.Err = &errOut
	a.Raw = true
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}
	})
	return a, &out, &errOut
}

func TestOneShotLogin(t *testing.T) {
	ctx := context.Background()
	a, out, errOut := newTestApp(t, "")

	if got := a.run(ctx, []string{"register", "-email", "ada@example.com", "-name", "Ada", "-password", "secret1"}); got != subcommands.ExitSuccess {
		t.Fatalf("register = %v, want success; stderr: %s", got, errOut)
	}
	a.run(ctx, []string{"logout"})

	if got := a.run(ctx, []string{"whoami"}); got != subcommands.ExitFailure {
		t.Fatalf("whoami without credentials = %v, want failure", got)
	}
	if !strings.Contains(errOut.String(), "not logged in") {
		t.Errorf("stderr = %q, want a 'not logged in' error", errOut)
	}

	out.Reset()
	a.email, a.password = "ADA@example.com", "secret1"
	if got := a.run(ctx, []string{"whoami"}); got != subcommands.ExitSuccess {
		t.Fatalf("whoami with credentials = %v, want success; stderr: %s", got, errOut)
	}
	if want := "Ada <ada@example.com>\n"; out.String() != want {
		t.Errorf("whoami printed %q, want %q", out, want)
	}
	if a.email != "" || a.password != "" {
		t.Errorf("credentials were kept after login")
	}
}

func TestLoggedIn_WrongPassword(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestApp(t, "")
	a.run(ctx, []string{"register", "-email", "ada@example.com", "-name", "Ada", "-password", "secret1"})
	a.run(ctx, []string{"logout"})

	a.email, a.password = "ada@example.com", "wrong-password"
	if _, err := a.LoggedIn(ctx); !errors.Is(err, finance.ErrInvalidCredentials) {
		t.Errorf("LoggedIn() error = %v, want %v", err, finance.ErrInvalidCredentials)
	}
}

func TestCommandErrors(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestApp(t, "")
	a.run(ctx, []string{"register", "-email", "ada@example.com", "-name", "Ada", "-password", "secret1"})

	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"bad type", []string{"add-tx", "-type", "gift", "-amount", "1", "-category", "Food"}, subcommands.ExitUsageError},
		{"bad amount", []string{"add-tx", "-amount", "ten", "-category", "Food"}, subcommands.ExitUsageError},
		{"negative amount", []string{"add-tx", "-amount", "-10", "-category", "Food"}, subcommands.ExitUsageError},
		{"unknown category", []string{"add-tx", "-amount", "10", "-category", "Travel"}, subcommands.ExitUsageError},
		{"bad date", []string{"add-tx", "-amount", "10", "-category", "Food", "-d", "yesterday"}, subcommands.ExitUsageError},
		{"head and tail", []string{"tx", "-head", "1", "-tail", "1"}, subcommands.ExitUsageError},
		{"bad period", []string{"budget", "-p", "decade"}, subcommands.ExitUsageError},
		{"zero quantity", []string{"add-holding", "-symbol", "AAPL", "-qty", "0", "-price", "1"}, subcommands.ExitUsageError},
		{"bad asset type", []string{"add-holding", "-type", "bond", "-symbol", "X", "-qty", "1", "-price", "1"}, subcommands.ExitUsageError},
		{"duplicate email", []string{"register", "-email", "ada@example.com", "-name", "Ada", "-password", "secret1"}, subcommands.ExitFailure},
		{"login missing password", []string{"login", "-email", "ada@example.com"}, subcommands.ExitUsageError},
		{"price without symbol", []string{"price"}, subcommands.ExitUsageError},
		{"unknown topic", []string{"topic", "nope"}, subcommands.ExitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.run(ctx, tc.args); got != tc.want {
				t.Errorf("fin %s = %v, want %v", strings.Join(tc.args, " "), got, tc.want)
			}
		})
	}
}

func TestTransactionsHeadTail(t *testing.T) {
	ctx := context.Background()
	a, out, errOut := newTestApp(t, "")
	a.run(ctx, []string{"register", "-email", "ada@example.com", "-name", "Ada", "-password", "secret1"})
	for i, day := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
		args := []string{"add-tx", "-amount", fmt.Sprint(i + 1), "-category", "Food", "-desc", "meal " + day, "-d", day}
		if got := a.run(ctx, args); got != subcommands.ExitSuccess {
			t.Fatalf("add-tx = %v; stderr: %s", got, errOut)
		}
	}

	tests := []struct {
		args    []string
		want    []string
		notWant []string
	}{
		{[]string{"tx"}, []string{"meal 2025-01-01", "meal 2025-01-03"}, nil},
		{[]string{"tx", "-head", "1"}, []string{"meal 2025-01-01"}, []string{"meal 2025-01-02"}},
		{[]string{"tx", "-tail", "1"}, []string{"meal 2025-01-03"}, []string{"meal 2025-01-02"}},
		{[]string{"tx", "-s", "2025-01-02", "-d", "2025-01-02"}, []string{"meal 2025-01-02"}, []string{"meal 2025-01-01", "meal 2025-01-03"}},
		{[]string{"tx", "-p", "year", "-d", "2024-06-01"}, []string{"_No transactions._"}, nil},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out.Reset()
			if got := a.run(ctx, tc.args); got != subcommands.ExitSuccess {
				t.Fatalf("status = %v; stderr: %s", got, errOut)
			}
			for _, w := range tc.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output does not contain %q:\n%s", w, out)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(out.String(), w) {
					t.Errorf("output contains %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbols") {
		case "AAPL":
			fmt.Fprint(w, `{"quoteResponse":{"result":[{"regularMarketPrice":189.5}]}}`)
		default:
			fmt.Fprint(w, `{"quoteResponse":{"result":[]}}`)
		}
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Quotes.EquityURL = srv.URL
	a, out, _ := newTestAppWithConfig(t, cfg, "")

	if got := a.run(context.Background(), []string{"price", "AAPL"}); got != subcommands.ExitSuccess {
		t.Fatalf("price AAPL = %v, want success", got)
	}
	// tickers are upper-cased like the stored holdings
	if got := a.run(context.Background(), []string{"price", " aapl"}); got != subcommands.ExitSuccess {
		t.Fatalf("price aapl = %v, want success", got)
	}
	if got := a.run(context.Background(), []string{"price", "NOPE"}); got != subcommands.ExitFailure {
		t.Fatalf("price NOPE = %v, want failure", got)
	}
	want := "AAPL: $189.50\nAAPL: $189.50\nNOPE: unavailable\n"
	if out.String() != want {
		t.Errorf("price printed %q, want %q", out, want)
	}
}

func TestRangeFlags(t *testing.T) {
	tests := []struct {
		flags   rangeFlags
		want    string
		wantErr bool
	}{
		{rangeFlags{}, "all time", false},
		{rangeFlags{period: "month", date: "2025-03-15"}, "2025-03-01 to 2025-03-31", false},
		{rangeFlags{period: "week", date: "2025-03-15"}, "2025-03-10 to 2025-03-16", false},
		{rangeFlags{start: "2025-01-01", date: "2025-02-01"}, "2025-01-01 to 2025-02-01", false},
		{rangeFlags{period: "year", start: "2025-01-10", date: "2025-02-01"}, "2025-01-10 to 2025-02-01", false},
		{rangeFlags{date: "2025-02-01"}, "until 2025-02-01", false},
		{rangeFlags{start: "2025-03-01", date: "2025-02-01"}, "", true},
		{rangeFlags{period: "fortnight"}, "", true},
		{rangeFlags{date: "2025-13-01"}, "", true},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%+v", tc.flags), func(t *testing.T) {
			r, err := tc.flags.Range()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Range() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil && r.String() != tc.want {
				t.Errorf("Range() = %q, want %q", r, tc.want)
			}
		})
	}
}

func TestTopicIndex(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	if got := a.run(context.Background(), []string{"topic"}); got != subcommands.ExitSuccess {
		t.Fatalf("topic = %v, want success", got)
	}
	for _, want := range []string{"# Topics", "`budget`", "`investments`"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("topic index does not contain %q:\n%s", want, out)
		}
	}
}
