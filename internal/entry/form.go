// Package entry implements the transaction entry form: the category, date
// and amount selection for a new transaction and its submission.
package entry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/preferences"
	"github.com/pocket-ledger/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Config holds the collaborators of entry forms.
type Config struct {
	Preferences  preferences.Store
	Books        repository.BookRepository
	Categories   repository.CategoryRepository
	Transactions repository.TransactionRepository

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// IdleTimeout is the time after which a form in a Registry that has not
	// been accessed is removed. Defaults to DefaultIdleTimeout.
	IdleTimeout time.Duration
}

// Form is the state of one transaction entry form.
//
// A form lives from Mount to Unmount. Fetches still in flight when the form
// is unmounted do not update it.
type Form struct {
	ID uuid.UUID

	config Config
	ui     UI

	ctx    context.Context
	cancel context.CancelFunc

	mu               sync.Mutex
	categories       []CategoryView
	categoryType     models.CategoryType
	selected         uuid.UUID
	date             time.Time
	calculatorValue  string
	content          string
	dayPickerVisible bool
}

// State is a snapshot of a form.
//
// Categories only contains the categories of the selected type.
// SelectedCategoryID is nil while no category of that type exists.
type State struct {
	ID                 uuid.UUID           `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	CategoryType       models.CategoryType `json:"categoryType" example:"expense"`
	Categories         []CategoryView      `json:"categories"`
	SelectedCategoryID *uuid.UUID          `json:"selectedCategoryId" example:"6d5c1f3e-5b32-4a8e-9d3e-0e1a9c0f5b7d"`
	SelectedDate       time.Time           `json:"selectedDate" example:"2024-03-05T00:00:00Z"`
	CalculatorValue    string              `json:"calculatorValue" example:"42"`
	Content            string              `json:"content" example:"Lunch"`
	DayPickerVisible   bool                `json:"dayPickerVisible" example:"false"`
}

// NewForm creates an unmounted form that reports side effects to ui.
func NewForm(config Config, ui UI) *Form {
	if config.Now == nil {
		config.Now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Form{
		ID:              uuid.New(),
		config:          config,
		ui:              ui,
		ctx:             ctx,
		cancel:          cancel,
		categoryType:    models.CategoryTypeExpense,
		date:            day(config.Now()),
		calculatorValue: "0",
	}
}

// Mount loads the categories of the default book.
//
// Failures are logged and alerted. The fetch is cancelled when ctx is done
// or the form is unmounted.
func (f *Form) Mount(ctx context.Context) {
	fetchCtx, cancel := context.WithCancel(f.ctx)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	categories, err := f.fetchCategories(fetchCtx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ctx.Err() != nil {
		log.Debug().Str("form", f.ID.String()).Msg("form unmounted, discarding categories")
		return
	}

	if err != nil {
		log.Error().Err(err).Str("form", f.ID.String()).Msg("Failed to initialize categories:")
		f.ui.Alert(err.Error())
		return
	}

	f.categories = categories
	f.resetSelection()
}

func (f *Form) fetchCategories(ctx context.Context) ([]CategoryView, error) {
	book, err := f.config.Books.GetDefaultBook(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := f.config.Categories.GetCategories(ctx, book.ID)
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, newCategoryView(c))
	}

	return views, nil
}

// Unmount ends the lifetime of the form.
func (f *Form) Unmount() {
	f.cancel()
}

// Mounted reports whether the form has not been unmounted.
func (f *Form) Mounted() bool {
	return f.ctx.Err() == nil
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := State{
		ID:               f.ID,
		CategoryType:     f.categoryType,
		Categories:       f.filtered(),
		SelectedDate:     f.date,
		CalculatorValue:  f.calculatorValue,
		Content:          f.content,
		DayPickerVisible: f.dayPickerVisible,
	}

	if f.selected != uuid.Nil {
		id := f.selected
		state.SelectedCategoryID = &id
	}

	return state
}

// filtered returns the categories of the selected type. f.mu must be held.
func (f *Form) filtered() []CategoryView {
	return filterByType(f.categories, f.categoryType)
}

// resetSelection selects the first category of the selected type. f.mu must be held.
func (f *Form) resetSelection() {
	f.selected = uuid.Nil

	filtered := f.filtered()
	if len(filtered) > 0 {
		f.selected = filtered[0].ID
	}
}

// SwitchType selects the category type and the first category of that type.
func (f *Form) SwitchType(categoryType models.CategoryType) error {
	if !categoryType.Valid() {
		return models.ErrCategoryTypeInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.categoryType = categoryType
	f.resetSelection()
	return nil
}

// SelectCategory selects a category of the selected type.
func (f *Form) SelectCategory(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if slices.IndexFunc(f.filtered(), func(c CategoryView) bool { return c.ID == id }) == -1 {
		return fmt.Errorf("%w: %s", ErrCategoryNotAvailable, id)
	}

	f.selected = id
	return nil
}

func (f *Form) PreviousDay() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = f.date.AddDate(0, 0, -1)
}

func (f *Form) NextDay() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = f.date.AddDate(0, 0, 1)
}

// day returns midnight UTC of the calendar day of t in t's location.
// Stepping such a time by days never hits a DST transition.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today selects the current date and closes the day picker.
func (f *Form) Today() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.date = day(f.config.Now())
	f.setDayPicker(false)
}

// SelectDate selects the calendar day of date in its location.
func (f *Form) SelectDate(date time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = day(date)
}

func (f *Form) ToggleDayPicker() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setDayPicker(!f.dayPickerVisible)
}

func (f *Form) CloseDayPicker() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setDayPicker(false)
}

// setDayPicker sets the day picker visibility and locks scrolling while it
// is visible. f.mu must be held.
func (f *Form) setDayPicker(visible bool) {
	f.dayPickerVisible = visible
	f.ui.LockScroll(visible)
}

func (f *Form) SetCalculatorValue(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculatorValue = value
}

func (f *Form) SetContent(content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = content
}
