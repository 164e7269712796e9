package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single signed monetary entry in a book.
type Transaction struct {
	DefaultModel
	TransactionCreate
	Book     Book     `json:"-"`
	Category Category `json:"-"`
}

// TransactionCreate holds all values that are set when a transaction is created.
//
// The amount is negative for expenses and non-negative for income.
type TransactionCreate struct {
	BookID          uuid.UUID       `json:"bookId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the book
	CategoryID      uuid.UUID       `json:"categoryId" example:"6d5c1f3e-5b32-4a8e-9d3e-0e1a9c0f5b7d"` // ID of the category
	Name            *string         `json:"name" example:"Lunch"`                                      // Optional note
	Amount          decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-14.03"`         // Signed amount
	TransactionDate time.Time       `json:"transactionDate" example:"2024-03-05T00:00:00Z"`            // Date of the transaction
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	return t.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced book and category exist and
// that the category belongs to the book.
func (t *Transaction) checkIntegrity(tx *gorm.DB) error {
	db := tx.Session(&gorm.Session{NewDB: true})

	err := db.First(&Book{}, "id = ?", t.BookID).Error
	if err != nil {
		return err
	}

	var category Category
	err = db.First(&category, "id = ?", t.CategoryID).Error
	if err != nil {
		return err
	}

	if category.BookID != t.BookID {
		return fmt.Errorf("%w, category %s belongs to book %s", ErrTransactionBookScope, category.ID, category.BookID)
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.TransactionDate = t.TransactionDate.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the TransactionDate to UTC, defaulting it to now
//   - trims whitespace from the name and unsets empty names
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Name != nil {
		name := strings.TrimSpace(*t.Name)
		t.Name = &name

		if name == "" {
			t.Name = nil
		}
	}

	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now().In(time.UTC)
	} else {
		t.TransactionDate = t.TransactionDate.In(time.UTC)
	}

	return
}
