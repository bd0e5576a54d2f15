package finance

import (
	"context"
	"fmt"
	"sync"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a const string.
func D(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

func expense(amount, category string) Transaction {
	return Transaction{Amount: D(amount), Kind: Expense, Category: category, Date: date.New(2025, 1, 15)}
}

func income(amount string) Transaction {
	return Transaction{Amount: D(amount), Kind: Income, Category: "Salary", Date: date.New(2025, 1, 1)}
}

// stock and crypto are Prices keys.
func stock(symbol string) PriceRequest  { return PriceRequest{Symbol: symbol, Kind: Stock} }
func crypto(symbol string) PriceRequest { return PriceRequest{Symbol: symbol, Kind: Crypto} }

func holding(symbol string, kind AssetKind, qty, price string) Holding {
	return Holding{Symbol: symbol, Name: symbol, Kind: kind, Quantity: D(qty), PurchasePrice: D(price), PurchaseDate: date.New(2024, 6, 1)}
}

// memRepository is an in-memory Repository.
type memRepository struct {
	mu           sync.Mutex
	users        []User
	transactions []Transaction
	holdings     []Holding
}

func (r *memRepository) CreateUser(_ context.Context, email, passwordHash, name string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = NormalizeEmail(email)
	for _, u := range r.users {
		if u.Email == email {
			return User{}, fmt.Errorf("create user: %w", ErrDuplicateEmail)
		}
	}
	u := User{ID: uint(len(r.users) + 1), Email: email, PasswordHash: passwordHash, Name: name}
	r.users = append(r.users, u)
	return u, nil
}

func (r *memRepository) FindUserByEmail(_ context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = NormalizeEmail(email)
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *memRepository) AddTransaction(_ context.Context, tx Transaction) (Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = uint(len(r.transactions) + 1)
	r.transactions = append(r.transactions, tx)
	return tx, nil
}

func (r *memRepository) ListTransactions(_ context.Context, userID uint) ([]Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var txs []Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (r *memRepository) AddHolding(_ context.Context, h Holding) (Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = uint(len(r.holdings) + 1)
	r.holdings = append(r.holdings, h)
	return h, nil
}

func (r *memRepository) ListHoldings(_ context.Context, userID uint) ([]Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var hs []Holding
	for _, h := range r.holdings {
		if h.UserID == userID {
			hs = append(hs, h)
		}
	}
	return hs, nil
}

// fixedPrices is a PriceSource returning known prices and recording requests.
type fixedPrices struct {
	prices   Prices
	requests []PriceRequest
}

func (f *fixedPrices) FetchAll(_ context.Context, requests []PriceRequest) Prices {
	f.requests = append(f.requests, requests...)
	result := Prices{}
	for _, r := range requests {
		if v, ok := f.prices[r]; ok {
			result[r] = v
		}
	}
	return result
}

var _ Repository = (*memRepository)(nil)
var _ PriceSource = (*fixedPrices)(nil)
