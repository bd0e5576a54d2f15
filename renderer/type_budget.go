package renderer

import (
	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Budget is the display form of a finance.BudgetReport.
type Budget struct {
	Range            date.Range
	Income           finance.Money
	Expense          finance.Money
	Net              finance.Money
	OverBudget       bool
	ThresholdPercent finance.Percent
	Categories       []BudgetCategory
	Transactions     []TransactionLine
}

// BudgetCategory is the expense total of one category and its share of all
// expenses.
type BudgetCategory struct {
	Name  string
	Total finance.Money
	Share finance.Percent
}

// NewBudget converts r for display in currency.
func NewBudget(r *finance.BudgetReport, currency string) *Budget {
	b := &Budget{
		Range:            r.Range,
		Income:           finance.M(r.Totals.Income, currency),
		Expense:          finance.M(r.Totals.Expense, currency),
		Net:              finance.M(r.Totals.Net(), currency),
		OverBudget:       r.OverBudget,
		ThresholdPercent: finance.Percent(r.Threshold * 100),
		Categories:       make([]BudgetCategory, 0, len(r.ByCategory)),
		Transactions:     newTransactionLines(r.Transactions, currency),
	}
	for _, c := range r.ByCategory {
		b.Categories = append(b.Categories, BudgetCategory{
			Name:  c.Category,
			Total: finance.M(c.Total, currency),
			Share: share(c.Total, r.Totals.Expense),
		})
	}
	return b
}

// share returns part as a percentage of total, zero when total is zero.
func share(part, total decimal.Decimal) finance.Percent {
	if total.IsZero() {
		return 0
	}
	return finance.Percent(part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64())
}
