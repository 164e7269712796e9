package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
)

// BookEditable holds the values needed to create a book.
type BookEditable struct {
	Name     string `json:"name" example:"My first ledger"` // Name of the book
	Currency string `json:"currency" example:"JPY"`         // ISO 4217 currency code. Defaults to the currency of the locale
}

type BookLinks struct {
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories?book=52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // Categories of the book
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?book=52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Transactions of the book
}

type Book struct {
	models.Book
	Links BookLinks `json:"links"`
}

func newBook(c *gin.Context, model models.Book) Book {
	url := c.GetString(string(models.DBContextURL))

	return Book{
		Book: model,
		Links: BookLinks{
			Categories:   fmt.Sprintf("%s/v1/categories?book=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?book=%s", url, model.ID),
		},
	}
}

type BookListResponse struct {
	Data  []Book  `json:"data"`                                            // List of books
	Error *string `json:"error" example:"you need to sign in first"` // The error, if any occurred
}

type BookResponse struct {
	Data  *Book   `json:"data"`                                                                      // Data for the book
	Error *string `json:"error" example:"there is no default book for the current user"` // The error, if any occurred
}
