package renderer

import (
	"github.com/etnz/finance"
	"github.com/shopspring/decimal"
)

// Investments is the display form of a finance.InvestmentReport.
type Investments struct {
	Offline       bool // prices were not looked up
	Live          int
	Value         finance.Money
	CostBasis     finance.Money
	ProfitAndLoss finance.Money
	Return        finance.Percent
	Holdings      []InvestmentHolding
	Allocation    []InvestmentAllocation
}

// InvestmentHolding is a single holding row.
type InvestmentHolding struct {
	Symbol        string
	Name          string
	Kind          finance.AssetKind
	Quantity      decimal.Decimal
	PurchasePrice finance.Money
	Price         finance.Money
	Live          bool
	Value         finance.Money
	ProfitAndLoss finance.Money
}

// InvestmentAllocation is the share of one holding in the portfolio.
type InvestmentAllocation struct {
	Name    string
	Symbol  string
	Value   finance.Money
	Percent finance.Percent
}

// NewInvestments converts r for display in currency.
func NewInvestments(r *finance.InvestmentReport, currency string, offline bool) *Investments {
	inv := &Investments{
		Offline:       offline,
		Live:          r.Live,
		Value:         finance.M(r.Value, currency),
		CostBasis:     finance.M(r.CostBasis, currency),
		ProfitAndLoss: finance.M(r.ProfitAndLoss, currency),
		Return:        share(r.ProfitAndLoss, r.CostBasis),
		Holdings:      make([]InvestmentHolding, 0, len(r.Holdings)),
		Allocation:    make([]InvestmentAllocation, 0, len(r.Allocation)),
	}
	for _, h := range r.Holdings {
		inv.Holdings = append(inv.Holdings, InvestmentHolding{
			Symbol:        cell(h.Symbol),
			Name:          cell(h.Name),
			Kind:          h.Kind,
			Quantity:      h.Quantity,
			PurchasePrice: finance.M(h.PurchasePrice, currency),
			Price:         finance.M(h.Price, currency),
			Live:          h.Live,
			Value:         finance.M(h.Value, currency),
			ProfitAndLoss: finance.M(h.ProfitAndLoss, currency),
		})
	}
	for _, a := range r.Allocation {
		inv.Allocation = append(inv.Allocation, InvestmentAllocation{
			Name:    cell(a.Name),
			Symbol:  cell(a.Symbol),
			Value:   finance.M(a.Value, currency),
			Percent: a.Percent,
		})
	}
	return inv
}

// Count returns the number of holdings.
func (inv *Investments) Count() int { return len(inv.Holdings) }

// Fallback reports whether some holding is valued at its purchase price.
func (inv *Investments) Fallback() bool { return inv.Live < len(inv.Holdings) }
