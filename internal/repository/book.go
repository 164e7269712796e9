package repository

import (
	"context"
	"fmt"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/preferences"
	"gorm.io/gorm"
)

type Books struct {
	db    *gorm.DB
	prefs preferences.Store
}

// NewBooks returns a BookRepository backed by db. The current user is read
// from prefs.
func NewBooks(db *gorm.DB, prefs preferences.Store) *Books {
	return &Books{db: db, prefs: prefs}
}

func (r *Books) FindByUserID(ctx context.Context, userID string) (*models.Book, error) {
	var books []models.Book
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("\"default\" DESC, created_at ASC").
		Limit(1).
		Find(&books).Error
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, nil
	}

	return &books[0], nil
}

func (r *Books) ListByUserID(ctx context.Context, userID string) ([]models.Book, error) {
	var books []models.Book
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}

	return books, nil
}

func (r *Books) GetDefaultBook(ctx context.Context) (models.Book, error) {
	userID, ok, err := r.prefs.Get(ctx, preferences.KeyUserID)
	if err != nil {
		return models.Book{}, err
	}

	if !ok || userID == "" {
		return models.Book{}, fmt.Errorf("%w: %w", ErrNoDefaultBook, ErrNoUser)
	}

	book, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return models.Book{}, err
	}

	if book == nil {
		return models.Book{}, ErrNoDefaultBook
	}

	return *book, nil
}

func (r *Books) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}
