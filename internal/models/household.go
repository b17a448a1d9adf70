package models

import (
	"strings"

	"gorm.io/gorm"
)

// Household is the shared ledger of two people.
//
// It is the highest level of organization, all other resources
// reference it directly.
type Household struct {
	DefaultModel
	Person1Name string
	Person2Name string
}

// BeforeSave trims whitespace from the member names.
func (h *Household) BeforeSave(_ *gorm.DB) error {
	h.Person1Name = strings.TrimSpace(h.Person1Name)
	h.Person2Name = strings.TrimSpace(h.Person2Name)

	if h.Person1Name == "" && h.Person2Name == "" {
		return ErrHouseholdNoMember
	}

	return nil
}
