package renderer

import (
	"fmt"

	"github.com/etnz/finance"
)

// Transaction renders a transaction to a string.
func Transaction(tx finance.Transaction, currency string) string {
	amount := finance.M(tx.Amount, currency)
	switch tx.Kind {
	case finance.Income:
		return fmt.Sprintf("Received %s (%s) on %s", amount, tx.Category, tx.Date)
	case finance.Expense:
		return fmt.Sprintf("Spent %s on %s on %s", amount, tx.Category, tx.Date)
	default:
		return fmt.Sprintf("%s %s on %s", tx.Kind, amount, tx.Date)
	}
}
