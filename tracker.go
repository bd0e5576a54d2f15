package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/finance/date"
	"github.com/rs/zerolog"
)

// Repository persists users, transactions and holdings.
type Repository interface {
	CreateUser(ctx context.Context, email, passwordHash, name string) (User, error)
	FindUserByEmail(ctx context.Context, email string) (User, error)
	AddTransaction(ctx context.Context, tx Transaction) (Transaction, error)
	ListTransactions(ctx context.Context, userID uint) ([]Transaction, error)
	AddHolding(ctx context.Context, h Holding) (Holding, error)
	ListHoldings(ctx context.Context, userID uint) ([]Holding, error)
}

// PriceRequest asks for the current price of a symbol.
type PriceRequest struct {
	Symbol string
	Kind   AssetKind
}

// PriceSource looks up current prices. Unavailable prices are absent from
// the result.
type PriceSource interface {
	FetchAll(ctx context.Context, requests []PriceRequest) Prices
}

// Tracker is the entry point of the finance tracker: it scopes every record
// operation to the session's user and derives reports from them.
type Tracker struct {
	repo       Repository
	prices     PriceSource
	session    Session
	categories []string
	threshold  float64
	log        zerolog.Logger
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) TrackerOption {
	return func(t *Tracker) { t.log = log }
}

// WithCategories sets the expense categories, in reporting order.
func WithCategories(categories []string) TrackerOption {
	return func(t *Tracker) { t.categories = categories }
}

// WithThreshold sets the over-budget threshold as a share of income.
func WithThreshold(threshold float64) TrackerOption {
	return func(t *Tracker) { t.threshold = threshold }
}

// NewTracker returns a logged out Tracker.
func NewTracker(repo Repository, prices PriceSource, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		repo:       repo,
		prices:     prices,
		categories: DefaultCategories,
		threshold:  DefaultBudgetThreshold,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session returns the tracker's session.
func (t *Tracker) Session() *Session { return &t.session }

// Categories returns the expense categories.
func (t *Tracker) Categories() []string { return t.categories }

// Register creates a user and logs it in.
func (t *Tracker) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if err := req.Validate(); err != nil {
		return User{}, err
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return User{}, err
	}
	user, err := t.repo.CreateUser(ctx, req.Email, hash, req.Name)
	if err != nil {
		return User{}, fmt.Errorf("register %s: %w", req.Email, err)
	}
	t.session.Login(user)
	t.log.Info().Str("session", t.session.ID()).Uint("user", user.ID).Msg("registered")
	return user, nil
}

// Login checks the credentials and starts a session. Unknown emails and wrong
// passwords both fail with ErrInvalidCredentials.
func (t *Tracker) Login(ctx context.Context, email, password string) (User, error) {
	user, err := t.repo.FindUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		t.log.Debug().Str("email", email).Msg("login for unknown email")
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}
	if !CheckPassword(user.PasswordHash, password) {
		t.log.Debug().Str("email", email).Msg("login with wrong password")
		return User{}, ErrInvalidCredentials
	}
	t.session.Login(user)
	t.log.Info().Str("session", t.session.ID()).Uint("user", user.ID).Msg("logged in")
	return user, nil
}

// Logout ends the session.
func (t *Tracker) Logout() {
	if id, ok := t.session.CurrentUserID(); ok {
		t.log.Info().Str("session", t.session.ID()).Uint("user", id).Msg("logged out")
	}
	t.session.Logout()
}

func (t *Tracker) currentUser() (uint, error) {
	id, ok := t.session.CurrentUserID()
	if !ok {
		return 0, ErrNotLoggedIn
	}
	return id, nil
}

// AddTransaction records a transaction for the current user.
func (t *Tracker) AddTransaction(ctx context.Context, req CreateTransactionRequest) (Transaction, error) {
	userID, err := t.currentUser()
	if err != nil {
		return Transaction{}, err
	}
	if err := req.Validate(t.categories); err != nil {
		return Transaction{}, err
	}
	tx, err := t.repo.AddTransaction(ctx, Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	return tx, nil
}

// Transactions returns the transactions of the current user.
func (t *Tracker) Transactions(ctx context.Context) ([]Transaction, error) {
	userID, err := t.currentUser()
	if err != nil {
		return nil, err
	}
	txs, err := t.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// AddHolding records a holding for the current user.
func (t *Tracker) AddHolding(ctx context.Context, req CreateHoldingRequest) (Holding, error) {
	userID, err := t.currentUser()
	if err != nil {
		return Holding{}, err
	}
	if err := req.Validate(); err != nil {
		return Holding{}, err
	}
	h, err := t.repo.AddHolding(ctx, Holding{
		UserID:        userID,
		Symbol:        req.Symbol,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		Kind:          req.Kind,
	})
	if err != nil {
		return Holding{}, fmt.Errorf("add holding: %w", err)
	}
	return h, nil
}

// Holdings returns the holdings of the current user.
func (t *Tracker) Holdings(ctx context.Context) ([]Holding, error) {
	userID, err := t.currentUser()
	if err != nil {
		return nil, err
	}
	hs, err := t.repo.ListHoldings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	return hs, nil
}

// Budget reports the current user's transactions dated within r. A zero
// range covers all transactions.
func (t *Tracker) Budget(ctx context.Context, r date.Range) (*BudgetReport, error) {
	txs, err := t.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	return NewBudgetReport(txs, r, t.categories, t.threshold), nil
}

// Investments reports the current user's holdings. When live is false no
// price is looked up and holdings are valued at their purchase price.
func (t *Tracker) Investments(ctx context.Context, live bool) (*InvestmentReport, error) {
	hs, err := t.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	prices := Prices{}
	if live && t.prices != nil && len(hs) > 0 {
		prices = t.prices.FetchAll(ctx, PriceRequests(hs))
	}
	r := NewInvestmentReport(hs, prices)
	t.log.Debug().Int("holdings", len(hs)).Int("live", r.Live).Msg("valued holdings")
	return r, nil
}

// PriceRequests returns one request per distinct symbol and kind of holdings.
func PriceRequests(holdings []Holding) []PriceRequest {
	seen := make(map[PriceRequest]bool)
	var requests []PriceRequest
	for _, h := range holdings {
		r := h.PriceRequest()
		if seen[r] {
			continue
		}
		seen[r] = true
		requests = append(requests, r)
	}
	return requests
}
