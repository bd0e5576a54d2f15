package renderer

import (
	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
)

// Transactions is a list of transactions ready for display.
type Transactions struct {
	Transactions []TransactionLine
}

// TransactionLine is a single transaction row. Amount is negative for
// expenses.
type TransactionLine struct {
	ID          uint
	Date        date.Date
	Kind        finance.TransactionKind
	Category    string
	Description string
	Amount      finance.Money
}

// NewTransactions converts txs for display in currency.
func NewTransactions(txs []finance.Transaction, currency string) *Transactions {
	return &Transactions{Transactions: newTransactionLines(txs, currency)}
}

func newTransactionLines(txs []finance.Transaction, currency string) []TransactionLine {
	lines := make([]TransactionLine, 0, len(txs))
	for _, tx := range txs {
		amount := tx.Amount
		if tx.Kind == finance.Expense {
			amount = amount.Neg()
		}
		lines = append(lines, TransactionLine{
			ID:          tx.ID,
			Date:        tx.Date,
			Kind:        tx.Kind,
			Category:    cell(tx.Category),
			Description: cell(tx.Description),
			Amount:      finance.M(amount, currency),
		})
	}
	return lines
}
