package finance

import (
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// BudgetReport summarizes the transactions of a user over a range of dates.
type BudgetReport struct {
	Range        date.Range
	Totals       Totals
	ByCategory   []CategoryTotal
	Threshold    float64
	OverBudget   bool
	Transactions []Transaction
}

// NewBudgetReport folds txs into a BudgetReport. Transactions outside r are
// ignored.
func NewBudgetReport(txs []Transaction, r date.Range, categories []string, threshold float64) *BudgetReport {
	txs = TransactionsIn(txs, r)
	totals := IncomeExpenseTotals(txs)
	return &BudgetReport{
		Range:        r,
		Totals:       totals,
		ByCategory:   ExpensesByCategory(txs, categories),
		Threshold:    threshold,
		OverBudget:   IsOverBudget(totals.Income, totals.Expense, threshold),
		Transactions: txs,
	}
}

// InvestmentReport summarizes the holdings of a user valued at current prices.
type InvestmentReport struct {
	Holdings      []HoldingValuation
	Value         decimal.Decimal
	CostBasis     decimal.Decimal
	ProfitAndLoss decimal.Decimal
	Allocation    []AllocationEntry
	Live          int // number of holdings valued at a live price
}

// NewInvestmentReport values holdings at prices.
func NewInvestmentReport(holdings []Holding, prices Prices) *InvestmentReport {
	value := PortfolioValue(holdings, prices)
	cost := CostBasis(holdings)
	r := &InvestmentReport{
		Holdings:      Valuate(holdings, prices),
		Value:         value,
		CostBasis:     cost,
		ProfitAndLoss: ProfitAndLoss(value, cost),
		Allocation:    Allocation(holdings, prices, value),
	}
	for _, h := range r.Holdings {
		if h.Live {
			r.Live++
		}
	}
	return r
}
