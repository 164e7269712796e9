package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType partitions categories into expense and income categories.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// CategoryTypes lists all category types in display order.
var CategoryTypes = []CategoryType{CategoryTypeExpense, CategoryTypeIncome}

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category represents a classification of transactions within a book.
type Category struct {
	DefaultModel
	Book   Book         `json:"-"`
	BookID uuid.UUID    `json:"bookId" gorm:"uniqueIndex:category_book_name"`
	Name   string       `json:"name" gorm:"uniqueIndex:category_book_name"`
	Icon   string       `json:"icon"`
	Type   CategoryType `json:"type"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	return c.checkIntegrity(tx)
}

// checkIntegrity verifies that the book the category references exists.
func (c *Category) checkIntegrity(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{NewDB: true}).First(&Book{}, "id = ?", c.BookID).Error
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}
