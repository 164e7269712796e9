package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/icons"
	"github.com/pocket-ledger/backend/internal/models"
	ledger_uuid "github.com/pocket-ledger/backend/internal/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	BookID uuid.UUID           `json:"bookId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the book the category belongs to
	Name   string              `json:"name" example:"Food"`                                   // Name of the category
	Icon   string              `json:"icon" example:"food"`                                   // Name of the icon
	Type   models.CategoryType `json:"type" example:"expense"`                                // Either expense or income
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		BookID: editable.BookID,
		Name:   editable.Name,
		Icon:   editable.Icon,
		Type:   editable.Type,
	}
}

type CategoryLinks struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?book=52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Transactions of the book of the category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Glyph     string        `json:"glyph" example:"fa-utensils"` // Glyph of the resolved icon
	TypeLabel string        `json:"typeLabel" example:"book.expense"` // Translation key for the category type
	Links     CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))
	icon := icons.ResolveOrPlaceholder(model.Icon)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BookID: model.BookID,
			Name:   model.Name,
			Icon:   icon.Name,
			Type:   model.Type,
		},
		Glyph:     icon.Glyph,
		TypeLabel: typeLabel(model.Type),
		Links: CategoryLinks{
			Transactions: fmt.Sprintf("%s/v1/transactions?book=%s", url, model.BookID),
		},
	}
}

// typeLabel returns the translation key for a category type.
func typeLabel(t models.CategoryType) string {
	return "book." + string(t)
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	BookID ledger_uuid.UUID `form:"book"` // By ID of the book. Defaults to the default book
	Type   string           `form:"type"` // By type
	Name   string           `form:"name"` // By name, supports * as wildcard
}
