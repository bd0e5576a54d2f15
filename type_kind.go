package finance

import (
	"fmt"
	"strings"
)

// TransactionKind tells income from expense.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

func (k TransactionKind) String() string { return string(k) }

// ParseTransactionKind parses a string into a TransactionKind, ignoring case.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch k := TransactionKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Income, Expense:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q, want %q or %q", s, Income, Expense)
	}
}

// AssetKind tells which price source values a holding.
type AssetKind string

const (
	Stock  AssetKind = "stock"
	Crypto AssetKind = "crypto"
)

func (k AssetKind) String() string { return string(k) }

// ParseAssetKind parses a string into an AssetKind, ignoring case.
func ParseAssetKind(s string) (AssetKind, error) {
	switch k := AssetKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Stock, Crypto:
		return k, nil
	default:
		return "", fmt.Errorf("unknown asset type %q, want %q or %q", s, Stock, Crypto)
	}
}
