package finance

import "github.com/shopspring/decimal"

// DefaultBudgetThreshold is the share of income above which expenses are
// reported as over budget.
const DefaultBudgetThreshold = 0.5

// Totals holds the income and expense sums of a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (t Totals) Net() decimal.Decimal { return t.Income.Sub(t.Expense) }

// CategoryTotal is the expense sum of a single category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// IncomeExpenseTotals sums transaction amounts by kind.
func IncomeExpenseTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Kind {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	return t
}

// ExpensesByCategory sums expenses for each category, in the order of
// categories. Categories with no expense have a zero total, expenses in a
// category outside the list are ignored.
func ExpensesByCategory(txs []Transaction, categories []string) []CategoryTotal {
	index := make(map[string]int, len(categories))
	result := make([]CategoryTotal, len(categories))
	for i, c := range categories {
		index[c] = i
		result[i] = CategoryTotal{Category: c, Total: decimal.Zero}
	}
	for _, tx := range txs {
		if tx.Kind != Expense {
			continue
		}
		if i, ok := index[tx.Category]; ok {
			result[i].Total = result[i].Total.Add(tx.Amount)
		}
	}
	return result
}

// IsOverBudget reports whether expense exceeds threshold times income.
//
// With no income any expense is over budget, and zero expense never is.
func IsOverBudget(income, expense decimal.Decimal, threshold float64) bool {
	return expense.GreaterThan(income.Mul(decimal.NewFromFloat(threshold)))
}
