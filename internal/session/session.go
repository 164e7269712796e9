// Package session implements signing in and the creation of ledgers for the
// signed in user.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/locale"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/preferences"
	"github.com/pocket-ledger/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

var (
	ErrNotSignedIn     = errors.New("you need to sign in first")
	ErrInvalidMethod   = errors.New("the sign in method is not supported")
	ErrNameEmpty       = errors.New("the name of the ledger must not be empty")
	ErrInvalidCurrency = errors.New("the currency is not a valid ISO 4217 currency code")
)

// Method is a sign in method.
type Method string

const (
	MethodFacebook Method = "facebook"
	MethodGoogle   Method = "google"
	MethodLine     Method = "line"
	MethodApple    Method = "apple"
	MethodGuest    Method = "guest"
)

// Methods lists all sign in methods in display order.
var Methods = []Method{MethodFacebook, MethodGoogle, MethodLine, MethodApple, MethodGuest}

func (m Method) Valid() bool {
	return slices.Contains(Methods, m)
}

// Status describes the current session.
type Status struct {
	SignedIn    bool   `json:"signedIn" example:"true"`
	LoginMethod string `json:"loginMethod" example:"guest"`
	UserID      string `json:"userId" example:"0f2b7f1c-1c55-4b55-9d53-8bd1d1b0f0e4"`
}

type Service struct {
	db      *gorm.DB
	prefs   preferences.Store
	locales *locale.Resolver
}

func NewService(db *gorm.DB, prefs preferences.Store, locales *locale.Resolver) *Service {
	return &Service{db: db, prefs: prefs, locales: locales}
}

// Status returns the session status. A user is signed in as soon as a login
// method is stored.
func (s *Service) Status(ctx context.Context) (Status, error) {
	method, signedIn, err := s.prefs.Get(ctx, preferences.KeyLoginMethod)
	if err != nil {
		return Status{}, err
	}

	userID, _, err := s.prefs.Get(ctx, preferences.KeyUserID)
	if err != nil {
		return Status{}, err
	}

	return Status{SignedIn: signedIn, LoginMethod: method, UserID: userID}, nil
}

// SignIn stores the login method and creates a user ID unless one exists.
func (s *Service) SignIn(ctx context.Context, method Method) (Status, error) {
	if !method.Valid() {
		return Status{}, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	err := s.prefs.Set(ctx, preferences.KeyLoginMethod, string(method))
	if err != nil {
		return Status{}, err
	}

	userID, ok, err := s.prefs.Get(ctx, preferences.KeyUserID)
	if err != nil {
		return Status{}, err
	}

	if !ok || userID == "" {
		userID = uuid.NewString()
		err = s.prefs.Set(ctx, preferences.KeyUserID, userID)
		if err != nil {
			return Status{}, err
		}
		log.Info().Str("user", userID).Str("method", string(method)).Msg("created user")
	}

	return Status{SignedIn: true, LoginMethod: string(method), UserID: userID}, nil
}

// CreateLedger creates a book for the signed in user.
//
// The currency defaults to the currency of the user's locale. The first book
// of a user becomes the default book and is seeded with the default categories.
func (s *Service) CreateLedger(ctx context.Context, name, currencyCode string) (models.Book, error) {
	userID, ok, err := s.prefs.Get(ctx, preferences.KeyUserID)
	if err != nil {
		return models.Book{}, err
	}

	if !ok || userID == "" {
		return models.Book{}, ErrNotSignedIn
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Book{}, ErrNameEmpty
	}

	unit := s.locales.Locale(ctx).Currency()
	if strings.TrimSpace(currencyCode) != "" {
		unit, err = currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
		if err != nil {
			return models.Book{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currencyCode)
		}
	}

	book := models.Book{UserID: userID, Name: name, Currency: unit.String()}

	// Preferences must not be read inside the transaction, the database only
	// has a single connection.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := repository.NewBooks(tx, s.prefs)
		categories := repository.NewCategories(tx)

		existing, err := books.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		book.Default = existing == nil

		err = books.Create(ctx, &book)
		if err != nil {
			return err
		}

		if !book.Default {
			return nil
		}

		for _, c := range DefaultCategories {
			category := models.Category{BookID: book.ID, Name: c.Name, Icon: c.Icon, Type: c.Type}
			err = categories.Create(ctx, &category)
			if err != nil {
				return fmt.Errorf("seeding category %s: %w", c.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return models.Book{}, err
	}

	log.Info().Str("user", userID).Str("book", book.ID.String()).Bool("default", book.Default).Msg("created book")
	return book, nil
}
