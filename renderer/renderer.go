// Package renderer presents finance reports as markdown.
//
// Every report is an assembly template (e.g. budget.md) built from partials
// sharing its name as prefix (budget_summary.md, budget_categories.md...).
// Reports are first converted into a view struct holding display-ready
// values (Money, Percent) so that templates stay free of arithmetic.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderBudget renders the Budget struct to a markdown string.
func RenderBudget(b *Budget) string {
	partials := map[string]string{
		"budget_title":       "budget_title.md",
		"budget_summary":     "budget_summary.md",
		"budget_categories":  "budget_categories.md",
		"transactions_table": "transactions_table.md",
	}
	return renderTemplate("budget", "budget.md", partials, b)
}

// RenderTransactions renders a list of transactions to a markdown string.
func RenderTransactions(txs *Transactions) string {
	partials := map[string]string{
		"transactions_table": "transactions_table.md",
	}
	return renderTemplate("transactions", "transactions.md", partials, txs)
}

// RenderInvestments renders the Investments struct to a markdown string.
func RenderInvestments(inv *Investments) string {
	partials := map[string]string{
		"investments_title":      "investments_title.md",
		"investments_summary":    "investments_summary.md",
		"investments_holdings":   "investments_holdings.md",
		"investments_allocation": "investments_allocation.md",
	}
	// an empty portfolio has nothing to break down
	if len(inv.Holdings) == 0 {
		partials["investments_holdings"] = ""
		partials["investments_allocation"] = ""
	}
	return renderTemplate("investments", "investments.md", partials, inv)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// cell escapes a free text for use in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
