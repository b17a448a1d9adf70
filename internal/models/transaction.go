package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordType partitions transactions and budget items into money coming
// in and money going out.
type RecordType string

const (
	TypeIncome  RecordType = "income"
	TypeExpense RecordType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t RecordType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single posted income or expense of a household.
type Transaction struct {
	DefaultModel
	HouseholdID uuid.UUID `gorm:"index"`
	Household   Household `json:"-"`
	Type        RecordType
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string
	Date        time.Time // Time of day is currently only used for sorting
	Memo        string
	Person      string // Which member of the household posted it
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - validates the type and the amount
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Memo = strings.TrimSpace(t.Memo)
	t.Person = strings.TrimSpace(t.Person)

	if !t.Type.Valid() {
		return ErrTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	return t.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced household exists.
func (t *Transaction) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&Household{}, t.HouseholdID).Error
}

func (t *Transaction) AfterCreate(_ *gorm.DB) error {
	notifyChange(TableTransactions, t.HouseholdID)
	return nil
}

func (t *Transaction) AfterUpdate(_ *gorm.DB) error {
	notifyChange(TableTransactions, t.HouseholdID)
	return nil
}

func (t *Transaction) AfterDelete(_ *gorm.DB) error {
	notifyChange(TableTransactions, t.HouseholdID)
	return nil
}
