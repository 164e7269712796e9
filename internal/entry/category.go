package entry

import (
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/icons"
	"github.com/pocket-ledger/backend/internal/models"
)

// CategoryView is a category with its icon resolved for display.
type CategoryView struct {
	ID     uuid.UUID           `json:"id" example:"6d5c1f3e-5b32-4a8e-9d3e-0e1a9c0f5b7d"`
	BookID uuid.UUID           `json:"bookId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Name   string              `json:"name" example:"Food"`
	Type   models.CategoryType `json:"type" example:"expense"`
	Icon   icons.Icon          `json:"icon"`
}

func newCategoryView(c models.Category) CategoryView {
	return CategoryView{
		ID:     c.ID,
		BookID: c.BookID,
		Name:   c.Name,
		Type:   c.Type,
		Icon:   icons.ResolveOrPlaceholder(c.Icon),
	}
}

// filterByType returns the categories of the given type, keeping their order.
func filterByType(categories []CategoryView, categoryType models.CategoryType) []CategoryView {
	filtered := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		if c.Type == categoryType {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
