package models

import (
	"strings"

	"gorm.io/gorm"
)

// Book represents a ledger.
//
// A book is the highest level of organization, categories and transactions
// reference it directly.
type Book struct {
	DefaultModel
	UserID   string `json:"userId" gorm:"uniqueIndex:book_user_name" example:"0f2b7f1c-1c55-4b55-9d53-8bd1d1b0f0e4"` // Opaque identifier of the owning user
	Name     string `json:"name" gorm:"uniqueIndex:book_user_name" example:"My first ledger" default:""`            // Name of the book
	Currency string `json:"currency" example:"USD"`                                                                 // ISO 4217 currency code
	Default  bool   `json:"default" example:"true"`                                                                 // Is this the default book of the user?
}

func (b *Book) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	return nil
}
