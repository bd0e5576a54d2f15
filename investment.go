package finance

import "github.com/shopspring/decimal"

// Prices maps a symbol of a given kind to its current unit price. A missing
// entry means the price is unavailable.
type Prices map[PriceRequest]decimal.Decimal

// Lookup returns the price for r when it is known and positive.
func (p Prices) Lookup(r PriceRequest) (decimal.Decimal, bool) {
	v, ok := p[r]
	if !ok || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}

// EffectivePrice returns the current price of h from prices, or its purchase
// price when none is available. The boolean reports a live price.
func EffectivePrice(h Holding, prices Prices) (decimal.Decimal, bool) {
	if v, ok := prices.Lookup(h.PriceRequest()); ok {
		return v, true
	}
	return h.PurchasePrice, false
}

// MarketValue returns the quantity of h times its effective price.
func MarketValue(h Holding, prices Prices) decimal.Decimal {
	price, _ := EffectivePrice(h, prices)
	return h.Quantity.Mul(price)
}

// PortfolioValue returns the sum of the holdings market values.
func PortfolioValue(holdings []Holding, prices Prices) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(MarketValue(h, prices))
	}
	return total
}

// CostBasis returns what was paid for the holdings.
func CostBasis(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Cost())
	}
	return total
}

// ProfitAndLoss returns value minus cost.
func ProfitAndLoss(value, cost decimal.Decimal) decimal.Decimal { return value.Sub(cost) }

// AllocationEntry is the share of a single holding in the portfolio.
type AllocationEntry struct {
	Name    string
	Symbol  string
	Value   decimal.Decimal
	Percent Percent
}

// Allocation returns the share of each holding in the total value, in the
// holdings order. Every share is zero when value is zero.
func Allocation(holdings []Holding, prices Prices, value decimal.Decimal) []AllocationEntry {
	result := make([]AllocationEntry, 0, len(holdings))
	for _, h := range holdings {
		v := MarketValue(h, prices)
		e := AllocationEntry{Name: h.Name, Symbol: h.Symbol, Value: v}
		if !value.IsZero() {
			e.Percent = Percent(v.Div(value).Mul(decimal.NewFromInt(100)).InexactFloat64())
		}
		result = append(result, e)
	}
	return result
}

// HoldingValuation is a holding valued at its effective price.
type HoldingValuation struct {
	Holding
	Price         decimal.Decimal // effective unit price
	Live          bool            // false when Price is the purchase price fallback
	Value         decimal.Decimal
	ProfitAndLoss decimal.Decimal
}

// Valuate values every holding at its effective price.
func Valuate(holdings []Holding, prices Prices) []HoldingValuation {
	result := make([]HoldingValuation, 0, len(holdings))
	for _, h := range holdings {
		price, live := EffectivePrice(h, prices)
		value := h.Quantity.Mul(price)
		result = append(result, HoldingValuation{
			Holding:       h,
			Price:         price,
			Live:          live,
			Value:         value,
			ProfitAndLoss: ProfitAndLoss(value, h.Cost()),
		})
	}
	return result
}
