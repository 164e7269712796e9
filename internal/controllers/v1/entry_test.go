package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/entry"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestEntry(t *testing.T) v1.Entry {
	r := suite.request(t, http.MethodPost, "http://example.com/v1/entries", "")
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.EntryResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) updateTestEntry(t *testing.T, id uuid.UUID, action v1.EntryAction, expectedStatus ...int) v1.EntryResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := suite.request(t, http.MethodPatch, "http://example.com/v1/entries/"+id.String(), action)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.EntryResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) submitTestEntry(t *testing.T, id uuid.UUID) v1.EntrySubmission {
	r := suite.request(t, http.MethodPost, "http://example.com/v1/entries/"+id.String()+"/submit", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.EntrySubmitResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) TestEntryCreate() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})

	e := suite.createTestEntry(suite.T())
	assert.Equal(suite.T(), models.CategoryTypeExpense, e.CategoryType)
	assert.Equal(suite.T(), "0", e.CalculatorValue)
	assert.False(suite.T(), e.DayPickerVisible)
	assert.Empty(suite.T(), e.Events.Alerts)
	assert.Nil(suite.T(), e.Events.Navigate)
	assert.NotEmpty(suite.T(), e.FormattedDate)
	assert.Equal(suite.T(), "http://example.com/v1/entries/"+e.ID.String()+"/submit", e.Links.Submit)

	require.Len(suite.T(), e.Categories, 8)
	assert.Equal(suite.T(), "Food", e.Categories[0].Name)
	assert.Equal(suite.T(), "food", e.Categories[0].Icon.Name)
	require.NotNil(suite.T(), e.SelectedCategoryID)
	assert.Equal(suite.T(), e.Categories[0].ID, *e.SelectedCategoryID)
}

func (suite *TestSuiteStandard) TestEntryNotSignedIn() {
	e := suite.createTestEntry(suite.T())
	assert.Len(suite.T(), e.Categories, 0)
	assert.Nil(suite.T(), e.SelectedCategoryID)
	assert.Len(suite.T(), e.Events.Alerts, 1, "failing to load the categories must be alerted")

	submission := suite.submitTestEntry(suite.T(), e.ID)
	assert.Equal(suite.T(), entry.OutcomeAborted, submission.Outcome)
	assert.Empty(suite.T(), submission.Entry.Events.Alerts)
	assert.Nil(suite.T(), submission.Entry.Events.Navigate)
}

func (suite *TestSuiteStandard) TestEntrySubmitExpense() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})

	e := suite.createTestEntry(suite.T())
	drinks := e.Categories[1]

	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSelectCategory, CategoryID: drinks.ID})
	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSetAmount, Value: "42.5"})
	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSetContent, Content: "Coffee"})
	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSelectDate, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)})
	updated := suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionPreviousDay})
	assert.Equal(suite.T(), "Mon, Mar 4, 2024", updated.Data.FormattedDate)

	submission := suite.submitTestEntry(suite.T(), e.ID)
	require.Equal(suite.T(), entry.OutcomeSaved, submission.Outcome)
	assert.NotEqual(suite.T(), uuid.Nil, submission.TransactionID)
	require.NotNil(suite.T(), submission.Entry.Events.Navigate)
	assert.Equal(suite.T(), entry.RouteBook, *submission.Entry.Events.Navigate)

	transactions := suite.getTransactions(suite.T(), "", http.StatusOK)
	require.Len(suite.T(), transactions.Data, 1)
	transaction := transactions.Data[0]
	assert.Equal(suite.T(), submission.TransactionID, transaction.ID)
	assert.Equal(suite.T(), drinks.ID, transaction.CategoryID)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.RequireFromString("-42.5")), "amount is %s", transaction.Amount)
	require.NotNil(suite.T(), transaction.Name)
	assert.Equal(suite.T(), "Coffee", *transaction.Name)
	assert.Equal(suite.T(), 4, transaction.TransactionDate.Day())
}

func (suite *TestSuiteStandard) TestEntrySubmitIncome() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})

	e := suite.createTestEntry(suite.T())
	updated := suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSwitchType, Type: models.CategoryTypeIncome})
	require.Len(suite.T(), updated.Data.Categories, 4)
	assert.Equal(suite.T(), "Salary", updated.Data.Categories[0].Name)
	assert.Equal(suite.T(), updated.Data.Categories[0].ID, *updated.Data.SelectedCategoryID)

	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSetAmount, Value: "-1000"})

	submission := suite.submitTestEntry(suite.T(), e.ID)
	require.Equal(suite.T(), entry.OutcomeSaved, submission.Outcome)

	transaction := suite.getTransactions(suite.T(), "", http.StatusOK).Data[0]
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromInt(1000)), "amount is %s", transaction.Amount)
	assert.Nil(suite.T(), transaction.Name)
}

func (suite *TestSuiteStandard) TestEntrySubmitInvalidAmount() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})

	e := suite.createTestEntry(suite.T())
	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSetAmount, Value: "12+"})

	submission := suite.submitTestEntry(suite.T(), e.ID)
	assert.Equal(suite.T(), entry.OutcomeFailed, submission.Outcome)
	require.Len(suite.T(), submission.Entry.Events.Alerts, 1)
	assert.Contains(suite.T(), submission.Entry.Events.Alerts[0], entry.ErrInvalidAmount.Error())
	assert.Equal(suite.T(), "12+", submission.Entry.CalculatorValue, "the form must keep its state")

	assert.Len(suite.T(), suite.getTransactions(suite.T(), "", http.StatusOK).Data, 0)
}

func (suite *TestSuiteStandard) TestEntryDayPicker() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})
	e := suite.createTestEntry(suite.T())

	updated := suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionToggleDayPicker})
	assert.True(suite.T(), updated.Data.DayPickerVisible)
	assert.True(suite.T(), updated.Data.Events.ScrollLocked)

	updated = suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionToday})
	assert.False(suite.T(), updated.Data.DayPickerVisible)
	assert.False(suite.T(), updated.Data.Events.ScrollLocked)

	suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionToggleDayPicker})
	updated = suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionCloseDayPicker})
	assert.False(suite.T(), updated.Data.DayPickerVisible)
	before := updated.Data.SelectedDate

	updated = suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionNextDay})
	assert.True(suite.T(), before.AddDate(0, 0, 1).Equal(updated.Data.SelectedDate), "date moved from %s to %s", before, updated.Data.SelectedDate)
}

func (suite *TestSuiteStandard) TestEntryUpdateInvalid() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})
	e := suite.createTestEntry(suite.T())

	tests := []struct {
		name   string
		id     uuid.UUID
		action v1.EntryAction
		status int
	}{
		{"Unknown form", uuid.New(), v1.EntryAction{Action: v1.EntryActionNextDay}, http.StatusNotFound},
		{"Unknown action", e.ID, v1.EntryAction{Action: "jump"}, http.StatusBadRequest},
		{"Invalid type", e.ID, v1.EntryAction{Action: v1.EntryActionSwitchType, Type: "transfer"}, http.StatusBadRequest},
		{"Category not shown", e.ID, v1.EntryAction{Action: v1.EntryActionSelectCategory, CategoryID: uuid.New()}, http.StatusBadRequest},
		{"Date missing", e.ID, v1.EntryAction{Action: v1.EntryActionSelectDate}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.updateTestEntry(t, tt.id, tt.action, tt.status)
			assert.NotNil(t, response.Error)
			assert.Nil(t, response.Data)
		})
	}

	r := suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/entries/NotAUUID", v1.EntryAction{Action: v1.EntryActionNextDay})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Rejected actions leave the date alone
	r = suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/entries/"+e.ID.String(), `{"action":"selectDate"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(suite.T(), http.MethodGet, "http://example.com/v1/entries/"+e.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var current v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &current)
	assert.True(suite.T(), e.SelectedDate.Equal(current.Data.SelectedDate))
}

func (suite *TestSuiteStandard) TestEntryDelete() {
	e := suite.createTestEntry(suite.T())
	assert.Equal(suite.T(), 1, suite.controller.Entries.Len())

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/entries/"+e.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/entries/"+e.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Empty(suite.T(), r.Body.String(), "no content must not carry a body")
	assert.Equal(suite.T(), 0, suite.controller.Entries.Len())

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		r = suite.request(suite.T(), method, "http://example.com/v1/entries/"+e.ID.String(), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/entries/"+e.ID.String()+"/submit", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEntryLocalizedDate() {
	suite.setPreference(suite.T(), "locale", "ja-JP")
	e := suite.createTestEntry(suite.T())

	updated := suite.updateTestEntry(suite.T(), e.ID, v1.EntryAction{Action: v1.EntryActionSelectDate, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)})
	assert.Equal(suite.T(), "火曜日, 2024年3月5日", updated.Data.FormattedDate)
	assert.Equal(suite.T(), "ja-JP", string(updated.Data.Locale))
}
