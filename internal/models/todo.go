package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Todo is a task one household member requests from the other.
type Todo struct {
	DefaultModel
	HouseholdID uuid.UUID `gorm:"index"`
	Household   Household `json:"-"`
	Title       string
	Requester   string
	Assignee    string
	DueDate     time.Time
	Completed   bool
	Memo        string
	CompletedAt *time.Time
}

// BeforeSave trims whitespace and keeps CompletedAt in sync with the
// completion state.
func (t *Todo) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Requester = strings.TrimSpace(t.Requester)
	t.Assignee = strings.TrimSpace(t.Assignee)
	t.Memo = strings.TrimSpace(t.Memo)

	if t.Completed && t.CompletedAt == nil {
		now := time.Now().In(time.UTC)
		t.CompletedAt = &now
	}

	if !t.Completed {
		t.CompletedAt = nil
	}

	return nil
}

func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	return tx.First(&Household{}, t.HouseholdID).Error
}

func (t *Todo) AfterCreate(_ *gorm.DB) error {
	notifyChange(TableTodos, t.HouseholdID)
	return nil
}

func (t *Todo) AfterUpdate(_ *gorm.DB) error {
	notifyChange(TableTodos, t.HouseholdID)
	return nil
}

func (t *Todo) AfterDelete(_ *gorm.DB) error {
	notifyChange(TableTodos, t.HouseholdID)
	return nil
}
