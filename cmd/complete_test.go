package cmd

import (
	"flag"
	"reflect"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	global := flag.NewFlagSet("fin", flag.ContinueOnError)
	global.String("email", "", "")
	global.String("config", "", "")
	global.Bool("v", false, "")

	c := subcommands.NewCommander(global, "fin")
	Register(c)
	root := Completion(c, global)

	for _, name := range []string{"register", "add-tx", "budget", "holdings", "shell", "topic"} {
		if _, ok := root.Sub[name]; !ok {
			t.Errorf("no completion for command %q", name)
		}
	}
	if _, ok := root.Flags["v"]; !ok {
		t.Errorf("global flag -v is not completed")
	}
	if _, ok := root.Sub["register"].Flags["email"]; ok {
		t.Errorf("register completes -email, already a global flag")
	}
	if _, ok := root.Sub["register"].Flags["name"]; !ok {
		t.Errorf("register does not complete -name")
	}
	if _, ok := root.Sub["holdings"].Flags["offline"]; !ok {
		t.Errorf("holdings does not complete -offline")
	}

	tests := []struct {
		command, flag string
		want          []string
	}{
		{"add-tx", "type", []string{"income", "expense"}},
		{"add-holding", "type", []string{"stock", "crypto"}},
		{"budget", "p", []string{"day", "week", "month", "quarter", "year"}},
	}
	for _, tc := range tests {
		t.Run(tc.command+" -"+tc.flag, func(t *testing.T) {
			p := root.Sub[tc.command].Flags[tc.flag]
			if p == nil {
				t.Fatalf("no predictor")
			}
			if got := p.Predict(""); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Predict(\"\") = %v, want %v", got, tc.want)
			}
		})
	}
}
