// Package v1 implements the v1 HTTP API.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/entry"
	"github.com/pocket-ledger/backend/internal/locale"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/preferences"
	"github.com/pocket-ledger/backend/internal/repository"
	"github.com/pocket-ledger/backend/internal/session"
	ledger_uuid "github.com/pocket-ledger/backend/internal/uuid"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	DB           *gorm.DB
	Preferences  preferences.Store
	Locales      *locale.Resolver
	Books        repository.BookRepository
	Categories   repository.CategoryRepository
	Transactions repository.TransactionRepository
	Session      *session.Service
	Entries      *entry.Registry
}

// New wires a Controller backed by db.
func New(db *gorm.DB, fallback locale.Locale) Controller {
	prefs := preferences.NewDBStore(db)
	locales := locale.NewResolver(prefs, fallback)
	books := repository.NewBooks(db, prefs)
	categories := repository.NewCategories(db)
	transactions := repository.NewTransactions(db)

	return Controller{
		DB:           db,
		Preferences:  prefs,
		Locales:      locales,
		Books:        books,
		Categories:   categories,
		Transactions: transactions,
		Session:      session.NewService(db, prefs, locales),
		Entries: entry.NewRegistry(entry.Config{
			Preferences:  prefs,
			Books:        books,
			Categories:   categories,
			Transactions: transactions,
		}),
	}
}

// RegisterRoutes registers all v1 resources with the group.
func (co Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("", Get)
	v1.OPTIONS("", Options)

	co.RegisterPreferenceRoutes(v1.Group("/preferences"))
	co.RegisterLocaleRoutes(v1.Group("/locale"))
	co.RegisterSessionRoutes(v1.Group("/session"))
	co.RegisterBookRoutes(v1.Group("/books"))
	co.RegisterCategoryRoutes(v1.Group("/categories"))
	co.RegisterTransactionRoutes(v1.Group("/transactions"))
	co.RegisterEntryRoutes(v1.Group("/entries"))
}

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, repository.ErrNoDefaultBook) ||
		errors.Is(err, entry.ErrFormNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

type URIID struct {
	ID ledger_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
