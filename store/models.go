package store

import (
	"time"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Decimals are stored as text to keep them exact on every driver.

type userRow struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:320;uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) user() finance.User {
	return finance.User{ID: r.ID, Email: r.Email, Name: r.Name, PasswordHash: r.PasswordHash}
}

type transactionRow struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Amount      decimal.Decimal `gorm:"type:text;not null"`
	Kind        string          `gorm:"size:16;not null"`
	Category    string          `gorm:"size:64"`
	Description string          `gorm:"type:text"`
	OccurredOn  date.Date       `gorm:"type:date;index"`
	CreatedAt   time.Time
}

func (transactionRow) TableName() string { return "transactions" }

func newTransactionRow(tx finance.Transaction) transactionRow {
	return transactionRow{
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		Kind:        string(tx.Kind),
		Category:    tx.Category,
		Description: tx.Description,
		OccurredOn:  tx.Date,
	}
}

func (r transactionRow) transaction() finance.Transaction {
	return finance.Transaction{
		ID:          r.ID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		Kind:        finance.TransactionKind(r.Kind),
		Category:    r.Category,
		Description: r.Description,
		Date:        r.OccurredOn,
	}
}

type holdingRow struct {
	ID            uint            `gorm:"primaryKey"`
	UserID        uint            `gorm:"index;not null"`
	Symbol        string          `gorm:"size:64;not null"`
	Name          string          `gorm:"not null"`
	Quantity      decimal.Decimal `gorm:"type:text;not null"`
	PurchasePrice decimal.Decimal `gorm:"type:text;not null"`
	PurchasedOn   date.Date       `gorm:"type:date"`
	Kind          string          `gorm:"size:16;not null"`
	CreatedAt     time.Time
}

func (holdingRow) TableName() string { return "holdings" }

func newHoldingRow(h finance.Holding) holdingRow {
	return holdingRow{
		UserID:        h.UserID,
		Symbol:        h.Symbol,
		Name:          h.Name,
		Quantity:      h.Quantity,
		PurchasePrice: h.PurchasePrice,
		PurchasedOn:   h.PurchaseDate,
		Kind:          string(h.Kind),
	}
}

func (r holdingRow) holding() finance.Holding {
	return finance.Holding{
		ID:            r.ID,
		UserID:        r.UserID,
		Symbol:        r.Symbol,
		Name:          r.Name,
		Quantity:      r.Quantity,
		PurchasePrice: r.PurchasePrice,
		PurchaseDate:  r.PurchasedOn,
		Kind:          finance.AssetKind(r.Kind),
	}
}
