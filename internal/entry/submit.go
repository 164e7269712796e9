package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/preferences"
	"github.com/rs/zerolog/log"
)

// Outcome is the result of a submission.
type Outcome string

const (
	// OutcomeAborted means nothing was stored because there is no user or no book.
	OutcomeAborted Outcome = "aborted"
	OutcomeSaved   Outcome = "saved"
	// OutcomeFailed means the submission was alerted and nothing was stored.
	OutcomeFailed Outcome = "failed"
)

// Result describes a submission.
type Result struct {
	Outcome       Outcome   `json:"outcome" example:"saved"`
	TransactionID uuid.UUID `json:"transactionId" example:"fd1c2a8b-9c2f-45e4-8a8e-3f4b5c6d7e8f"`
}

// Submit stores a transaction for the form's state and navigates to the
// book on success.
//
// Without a signed in user or a book for the user, Submit does nothing.
// All other failures are alerted. The state of the form is never changed.
func (f *Form) Submit(ctx context.Context) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	logger := log.With().Str("form", f.ID.String()).Logger()

	userID, ok, err := f.config.Preferences.Get(ctx, preferences.KeyUserID)
	if err != nil {
		return f.fail(err)
	}

	if !ok || userID == "" {
		logger.Debug().Msg("no user is signed in, not adding transaction")
		return Result{Outcome: OutcomeAborted}
	}

	book, err := f.config.Books.FindByUserID(ctx, userID)
	if err != nil {
		return f.fail(err)
	}

	if book == nil {
		logger.Debug().Str("user", userID).Msg("user has no book, not adding transaction")
		return Result{Outcome: OutcomeAborted}
	}

	amount, err := AdjustedAmount(f.categoryType, f.calculatorValue)
	if err != nil {
		return f.fail(err)
	}

	if f.selected == uuid.Nil {
		return f.fail(ErrNoCategory)
	}

	var name *string
	if f.content != "" {
		content := f.content
		name = &content
	}

	id, err := f.config.Transactions.Insert(ctx, models.TransactionCreate{
		BookID:          book.ID,
		CategoryID:      f.selected,
		Name:            name,
		Amount:          amount,
		TransactionDate: f.date,
	})
	if err != nil {
		return f.fail(err)
	}

	logger.Info().Str("transaction", id.String()).Str("amount", amount.String()).Msg("transaction added")
	f.ui.Navigate(RouteBook)

	return Result{Outcome: OutcomeSaved, TransactionID: id}
}

// fail logs and alerts err. f.mu must be held.
func (f *Form) fail(err error) Result {
	log.Error().Err(err).Str("form", f.ID.String()).Msg("add transaction error:")
	f.ui.Alert(err.Error())

	return Result{Outcome: OutcomeFailed}
}
