package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"gorm.io/gorm"
)

type Transactions struct {
	db *gorm.DB
}

func NewTransactions(db *gorm.DB) *Transactions {
	return &Transactions{db: db}
}

// Insert appends one transaction and returns its ID.
func (r *Transactions) Insert(ctx context.Context, create models.TransactionCreate) (uuid.UUID, error) {
	transaction := models.Transaction{TransactionCreate: create}

	err := r.db.WithContext(ctx).Create(&transaction).Error
	if err != nil {
		return uuid.Nil, err
	}

	return transaction.ID, nil
}

// ListByBook returns the transactions of a book, newest first.
func (r *Transactions) ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("transaction_date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
