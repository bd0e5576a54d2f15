package renderer

import (
	"fmt"

	"github.com/etnz/finance"
)

// Holding renders a holding to a string.
func Holding(h finance.Holding, currency string) string {
	return fmt.Sprintf("Bought %s %s (%s) at %s on %s, cost %s",
		h.Quantity, h.Symbol, h.Kind, finance.M(h.PurchasePrice, currency), h.PurchaseDate, finance.M(h.Cost(), currency))
}
