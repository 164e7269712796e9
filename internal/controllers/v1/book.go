package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/preferences"
	"github.com/pocket-ledger/backend/internal/session"
)

// RegisterBookRoutes registers the routes for books with
// the RouterGroup that is passed.
func (co Controller) RegisterBookRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBookList)
	r.GET("", co.GetBooks)
	r.POST("", co.CreateBook)

	r.OPTIONS("/default", OptionsDefaultBook)
	r.GET("/default", co.GetDefaultBook)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Books
// @Success		204
// @Router			/v1/books [options]
func OptionsBookList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Books
// @Success		204
// @Router			/v1/books/default [options]
func OptionsDefaultBook(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get books
// @Description	Returns the books of the signed in user
// @Tags			Books
// @Produce		json
// @Success		200	{object}	BookListResponse
// @Failure		400	{object}	BookListResponse
// @Failure		500	{object}	BookListResponse
// @Router			/v1/books [get]
func (co Controller) GetBooks(c *gin.Context) {
	userID, ok, err := co.Preferences.Get(c.Request.Context(), preferences.KeyUserID)
	if err == nil && (!ok || userID == "") {
		err = session.ErrNotSignedIn
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), BookListResponse{
			Error: &s,
		})
		return
	}

	books, err := co.Books.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BookListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Book, 0, len(books))
	for _, book := range books {
		data = append(data, newBook(c, book))
	}

	c.JSON(http.StatusOK, BookListResponse{Data: data})
}

// @Summary		Create book
// @Description	Creates a new book for the signed in user. The first book of a user is the default book and gets the default categories.
// @Tags			Books
// @Accept			json
// @Produce		json
// @Success		201		{object}	BookResponse
// @Failure		400		{object}	BookResponse
// @Failure		500		{object}	BookResponse
// @Param			book	body		BookEditable	true	"Book"
// @Router			/v1/books [post]
func (co Controller) CreateBook(c *gin.Context) {
	var editable BookEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BookResponse{
			Error: &s,
		})
		return
	}

	book, err := co.Session.CreateLedger(c.Request.Context(), editable.Name, editable.Currency)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BookResponse{
			Error: &s,
		})
		return
	}

	data := newBook(c, book)
	c.JSON(http.StatusCreated, BookResponse{Data: &data})
}

// @Summary		Get default book
// @Description	Returns the default book of the signed in user
// @Tags			Books
// @Produce		json
// @Success		200	{object}	BookResponse
// @Failure		404	{object}	BookResponse
// @Failure		500	{object}	BookResponse
// @Router			/v1/books/default [get]
func (co Controller) GetDefaultBook(c *gin.Context) {
	book, err := co.Books.GetDefaultBook(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BookResponse{
			Error: &s,
		})
		return
	}

	data := newBook(c, book)
	c.JSON(http.StatusOK, BookResponse{Data: &data})
}
