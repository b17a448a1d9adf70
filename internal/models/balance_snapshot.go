package models

import (
	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceSnapshot caches the opening and closing balance of one
// household month.
//
// Snapshots are derived data. They are rebuilt from scratch from the
// transaction history whenever records change and must never be treated
// as authoritative: a retroactive edit invalidates every later month.
type BalanceSnapshot struct {
	Timestamps
	HouseholdID    uuid.UUID       `gorm:"primaryKey"`
	Month          types.Month     `gorm:"primaryKey"`
	OpeningBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ClosingBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}
