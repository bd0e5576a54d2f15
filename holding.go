package finance

import (
	"strings"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Holding is a recorded ownership of a quantity of a stock or a crypto asset
// acquired at a given unit price.
type Holding struct {
	ID            uint
	UserID        uint
	Symbol        string // ticker for stocks, asset id for crypto (e.g. "bitcoin")
	Name          string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal // per unit
	PurchaseDate  date.Date
	Kind          AssetKind
}

// Cost returns what the holding was paid for.
func (h Holding) Cost() decimal.Decimal { return h.Quantity.Mul(h.PurchasePrice) }

// NormalizeSymbol trims symbol and upper-cases stock tickers. Crypto ids are
// kept as entered.
func NormalizeSymbol(symbol string, kind AssetKind) string {
	symbol = strings.TrimSpace(symbol)
	if kind == Stock {
		return strings.ToUpper(symbol)
	}
	return symbol
}

// PriceRequest returns the request for the current price of h.
func (h Holding) PriceRequest() PriceRequest { return PriceRequest{Symbol: h.Symbol, Kind: h.Kind} }
