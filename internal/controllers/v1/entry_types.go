package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/entry"
	"github.com/pocket-ledger/backend/internal/locale"
	"github.com/pocket-ledger/backend/internal/models"
)

var (
	errEntryActionUnknown = errors.New("unknown entry action")
	errEntryDateMissing   = errors.New("the selectDate action needs a date")
)

// EntryActionName names a change to an entry form.
type EntryActionName string

const (
	EntryActionSwitchType      EntryActionName = "switchType"
	EntryActionSelectCategory  EntryActionName = "selectCategory"
	EntryActionPreviousDay     EntryActionName = "previousDay"
	EntryActionNextDay         EntryActionName = "nextDay"
	EntryActionToday           EntryActionName = "today"
	EntryActionSelectDate      EntryActionName = "selectDate"
	EntryActionToggleDayPicker EntryActionName = "toggleDayPicker"
	EntryActionCloseDayPicker  EntryActionName = "closeDayPicker"
	EntryActionSetAmount       EntryActionName = "setAmount"
	EntryActionSetContent      EntryActionName = "setContent"
)

// EntryAction is one change to an entry form. Only the field the
// action needs is read.
type EntryAction struct {
	Action     EntryActionName     `json:"action" example:"selectCategory"`                           // The action to apply
	Type       models.CategoryType `json:"type" example:"income"`                                     // For switchType
	CategoryID uuid.UUID           `json:"categoryId" example:"6d5c1f3e-5b32-4a8e-9d3e-0e1a9c0f5b7d"` // For selectCategory
	Date       time.Time           `json:"date" example:"2024-03-05T00:00:00Z"`                       // For selectDate
	Value      string              `json:"value" example:"42.5"`                                      // For setAmount
	Content    string              `json:"content" example:"Lunch"`                                   // For setContent
}

// apply applies the action to the form.
func (a EntryAction) apply(form *entry.Form) error {
	switch a.Action {
	case EntryActionSwitchType:
		return form.SwitchType(a.Type)
	case EntryActionSelectCategory:
		return form.SelectCategory(a.CategoryID)
	case EntryActionPreviousDay:
		form.PreviousDay()
	case EntryActionNextDay:
		form.NextDay()
	case EntryActionToday:
		form.Today()
	case EntryActionSelectDate:
		if a.Date.IsZero() {
			return errEntryDateMissing
		}
		form.SelectDate(a.Date)
	case EntryActionToggleDayPicker:
		form.ToggleDayPicker()
	case EntryActionCloseDayPicker:
		form.CloseDayPicker()
	case EntryActionSetAmount:
		form.SetCalculatorValue(a.Value)
	case EntryActionSetContent:
		form.SetContent(a.Content)
	default:
		return fmt.Errorf("%w: '%s'", errEntryActionUnknown, a.Action)
	}

	return nil
}

type EntryLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/entries/1e777d24-3f5b-4c43-8000-04f65f895578"`          // The entry form itself
	Submit string `json:"submit" example:"https://example.com/api/v1/entries/1e777d24-3f5b-4c43-8000-04f65f895578/submit"` // Submits the entry form
}

// Entry is the state of an entry form together with the side effects that
// happened since the last response for it.
type Entry struct {
	entry.State
	FormattedDate string        `json:"formattedDate" example:"Tue, Mar 5, 2024"` // The selected date, formatted for the locale
	Events        entry.Events  `json:"events"`                                   // Side effects since the last response
	Links         EntryLinks    `json:"links"`
	Locale        locale.Locale `json:"locale" example:"en-US"` // The locale used for formatting
}

func (co Controller) newEntry(c *gin.Context, form *entry.Form, outbox *entry.Outbox) Entry {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/entries/%s", url, form.ID)

	l := co.Locales.Locale(c.Request.Context())
	state := form.State()

	return Entry{
		State:         state,
		FormattedDate: l.FormatDate(state.SelectedDate),
		Events:        outbox.Drain(),
		Locale:        l,
		Links: EntryLinks{
			Self:   self,
			Submit: self + "/submit",
		},
	}
}

type EntryResponse struct {
	Data  *Entry  `json:"data"`                                                  // Data for the entry form
	Error *string `json:"error" example:"there is no entry form with this ID"` // The error, if any occurred
}

type EntrySubmission struct {
	entry.Result
	Entry Entry `json:"entry"` // The entry form after the submission
}

type EntrySubmitResponse struct {
	Data  *EntrySubmission `json:"data"`                                                  // Result of the submission
	Error *string          `json:"error" example:"there is no entry form with this ID"` // The error, if any occurred
}
