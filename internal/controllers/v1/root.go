package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Preferences  string `json:"preferences" example:"https://example.com/api/v1/preferences"`   // URL of the preferences
	Locale       string `json:"locale" example:"https://example.com/api/v1/locale"`             // URL of the resolved locale
	Session      string `json:"session" example:"https://example.com/api/v1/session"`           // URL of the session
	Books        string `json:"books" example:"https://example.com/api/v1/books"`               // URL of book list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of transaction list endpoint
	Entries      string `json:"entries" example:"https://example.com/api/v1/entries"`           // URL of the entry form endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Preferences:  url + "/v1/preferences",
			Locale:       url + "/v1/locale",
			Session:      url + "/v1/session",
			Books:        url + "/v1/books",
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Entries:      url + "/v1/entries",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
