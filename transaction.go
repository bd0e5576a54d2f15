package finance

import (
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// DefaultCategories is the canonical, ordered list of expense categories.
var DefaultCategories = []string{"Food", "Transport", "Entertainment", "Bills", "Other"}

// Transaction is an income or expense event.
type Transaction struct {
	ID          uint
	UserID      uint
	Amount      decimal.Decimal // never negative, Kind carries the direction
	Kind        TransactionKind
	Category    string
	Description string
	Date        date.Date
}

// TransactionsIn returns the transactions dated within r, in their original order.
func TransactionsIn(txs []Transaction, r date.Range) []Transaction {
	if r.IsZero() {
		return txs
	}
	result := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			result = append(result, tx)
		}
	}
	return result
}
