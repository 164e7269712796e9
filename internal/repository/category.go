package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"gorm.io/gorm"
)

type Categories struct {
	db *gorm.DB
}

func NewCategories(db *gorm.DB) *Categories {
	return &Categories{db: db}
}

func (r *Categories) GetCategories(ctx context.Context, bookID uuid.UUID) ([]models.Category, error) {
	db := r.db.WithContext(ctx)

	// Verify the book exists so that unknown books are not reported as empty
	err := db.First(&models.Book{}, "id = ?", bookID).Error
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}

	var categories []models.Category
	err = db.
		Where("book_id = ?", bookID).
		Order("created_at ASC, rowid ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *Categories) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}
