package finance

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// RegisterRequest holds the fields entered to create an account.
type RegisterRequest struct {
	Email    string
	Name     string
	Password string
}

// Validate normalizes the request in place and returns all validation
// failures joined with ErrInvalidRequest.
func (r *RegisterRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)

	var errs error
	if r.Email == "" {
		errs = errors.Join(errs, errors.New("email is missing"))
	} else if !strings.Contains(r.Email, "@") {
		errs = errors.Join(errs, fmt.Errorf("email %q is not an address", r.Email))
	}
	if r.Name == "" {
		errs = errors.Join(errs, errors.New("name is missing"))
	}
	if len(r.Password) < MinPasswordLength {
		errs = errors.Join(errs, fmt.Errorf("password must be at least %d characters", MinPasswordLength))
	}
	return invalid(errs)
}

// CreateTransactionRequest holds the fields entered to record a transaction.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal
	Kind        TransactionKind
	Category    string
	Description string
	Date        date.Date // today when zero
}

// Validate checks the request against the given expense categories. A nil
// list accepts any category. Income may use any label.
func (r *CreateTransactionRequest) Validate(categories []string) error {
	if r.Date.IsZero() {
		r.Date = date.Today()
	}
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)

	var errs error
	if r.Amount.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("amount must not be negative, got %s", r.Amount))
	}
	switch r.Kind {
	case Income:
	case Expense:
		if categories != nil && !slices.Contains(categories, r.Category) {
			errs = errors.Join(errs, fmt.Errorf("unknown expense category %q, want one of %s", r.Category, strings.Join(categories, ", ")))
		}
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown transaction type %q", r.Kind))
	}
	if r.Category == "" {
		errs = errors.Join(errs, errors.New("category is missing"))
	}
	return invalid(errs)
}

// CreateHoldingRequest holds the fields entered to record a holding.
type CreateHoldingRequest struct {
	Symbol        string
	Name          string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  date.Date // today when zero
	Kind          AssetKind
}

// Validate normalizes the request in place. Stock tickers are upper-cased and
// the name defaults to the symbol.
func (r *CreateHoldingRequest) Validate() error {
	if r.PurchaseDate.IsZero() {
		r.PurchaseDate = date.Today()
	}
	r.Symbol = NormalizeSymbol(r.Symbol, r.Kind)
	r.Name = strings.TrimSpace(r.Name)

	var errs error
	switch r.Kind {
	case Stock, Crypto:
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown asset type %q", r.Kind))
	}
	if r.Symbol == "" {
		errs = errors.Join(errs, errors.New("symbol is missing"))
	}
	if r.Name == "" {
		r.Name = r.Symbol
	}
	if !r.Quantity.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("quantity must be positive, got %s", r.Quantity))
	}
	if r.PurchasePrice.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("purchase price cannot be negative, got %s", r.PurchasePrice))
	}
	return invalid(errs)
}

func invalid(errs error) error {
	if errs == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, errs)
}
