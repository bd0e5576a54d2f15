// Package store persists users, transactions and holdings in a SQL database
// through gorm. SQLite is the default, PostgreSQL is supported for users who
// already run one.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/etnz/finance"
	"github.com/etnz/finance/config"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is a finance.Repository backed by gorm.
type Store struct {
	db  *gorm.DB
	mu  sync.Mutex // serializes writes
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open connects to the database described by cfg and migrates the schema.
func Open(cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	case "postgres":
		dialector = postgres.Open(BuildDSN(cfg.Postgres))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&userRow{}, &transactionRow{}, &holdingRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	s := &Store{db: db, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug().Str("driver", dialector.Name()).Msg("database opened")
	return s, nil
}

// BuildDSN builds a PostgreSQL connection string from config.
func BuildDSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Name,
		sslMode,
	)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateUser creates a user. It fails with finance.ErrDuplicateEmail when the
// email is already registered.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash, name string) (finance.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := userRow{Email: finance.NormalizeEmail(email), Name: name, PasswordHash: passwordHash}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userRow{}).Where("email = ?", row.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return finance.ErrDuplicateEmail
		}
		return tx.Create(&row).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = finance.ErrDuplicateEmail
	}
	if err != nil {
		return finance.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.Debug().Uint("id", row.ID).Msg("user created")
	return row.user(), nil
}

// FindUserByEmail returns the user registered with email, or
// finance.ErrUserNotFound.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (finance.User, error) {
	var row userRow
	err := s.db.WithContext(ctx).Where("email = ?", finance.NormalizeEmail(email)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return finance.User{}, finance.ErrUserNotFound
	}
	if err != nil {
		return finance.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return row.user(), nil
}

// AddTransaction saves tx and returns it with its assigned id.
func (s *Store) AddTransaction(ctx context.Context, tx finance.Transaction) (finance.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := newTransactionRow(tx)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return finance.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
	}
	return row.transaction(), nil
}

// ListTransactions returns the transactions of a user ordered by date.
func (s *Store) ListTransactions(ctx context.Context, userID uint) ([]finance.Transaction, error) {
	var rows []transactionRow
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("occurred_on, id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	txs := make([]finance.Transaction, len(rows))
	for i, r := range rows {
		txs[i] = r.transaction()
	}
	return txs, nil
}

// AddHolding saves h and returns it with its assigned id.
func (s *Store) AddHolding(ctx context.Context, h finance.Holding) (finance.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := newHoldingRow(h)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return finance.Holding{}, fmt.Errorf("failed to save holding: %w", err)
	}
	return row.holding(), nil
}

// ListHoldings returns the holdings of a user in insertion order.
func (s *Store) ListHoldings(ctx context.Context, userID uint) ([]finance.Holding, error) {
	var rows []holdingRow
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	hs := make([]finance.Holding, len(rows))
	for i, r := range rows {
		hs[i] = r.holding()
	}
	return hs, nil
}

var _ finance.Repository = (*Store)(nil)
