// Package repository provides access to books, categories and transactions.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
)

var (
	ErrNoUser        = errors.New("no user is signed in")
	ErrNoDefaultBook = errors.New("there is no default book for the current user")
)

// BookRepository reads and creates books.
type BookRepository interface {
	// FindByUserID returns the book of the user, preferring the default
	// book. It returns nil and no error if the user has no book.
	FindByUserID(ctx context.Context, userID string) (*models.Book, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Book, error)
	// GetDefaultBook returns the default book of the current user.
	GetDefaultBook(ctx context.Context) (models.Book, error)
	Create(ctx context.Context, book *models.Book) error
}

// CategoryRepository reads and creates categories.
type CategoryRepository interface {
	// GetCategories returns the categories of the book in creation order.
	GetCategories(ctx context.Context, bookID uuid.UUID) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// TransactionRepository persists transactions.
type TransactionRepository interface {
	Insert(ctx context.Context, transaction models.TransactionCreate) (uuid.UUID, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.Transaction, error)
}
