package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.Type == "" {
		c.Type = models.CategoryTypeExpense
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com/v1/categories", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CategoryResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) getCategories(t *testing.T, query string, expectedStatus int) v1.CategoryListResponse {
	r := suite.request(t, http.MethodGet, "http://example.com/v1/categories"+query, "")
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.CategoryListResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestCategoriesDefaultBook() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})

	categories := suite.getCategories(suite.T(), "", http.StatusOK)
	require.Len(suite.T(), categories.Data, 12)

	first := categories.Data[0]
	assert.Equal(suite.T(), "Food", first.Name)
	assert.Equal(suite.T(), models.CategoryTypeExpense, first.Type)
	assert.Equal(suite.T(), "food", first.Icon)
	assert.NotEmpty(suite.T(), first.Glyph)
	assert.Equal(suite.T(), "book.expense", first.TypeLabel)

	last := categories.Data[11]
	assert.Equal(suite.T(), "Other", last.Name)
	assert.Equal(suite.T(), "book.income", last.TypeLabel)
}

func (suite *TestSuiteStandard) TestCategoriesFilter() {
	suite.signIn(suite.T())
	book := suite.createTestBook(suite.T(), v1.BookEditable{})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"Expenses", "?type=expense", []string{"Food", "Drinks", "Transport", "Shopping", "Entertainment", "Home", "Bills", "Health"}},
		{"Income", "?type=income", []string{"Salary", "Bonus", "Investment", "Other"}},
		{"Name glob", "?name=B*", []string{"Bills", "Bonus"}},
		{"Name glob and type", "?name=B*&type=income", []string{"Bonus"}},
		{"Explicit book", "?type=income&book=" + book.Data.ID.String(), []string{"Salary", "Bonus", "Investment", "Other"}},
		{"No match", "?name=Rent", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			categories := suite.getCategories(t, tt.query, http.StatusOK)

			names := make([]string, 0, len(categories.Data))
			for _, c := range categories.Data {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesErrors() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No user", "", http.StatusNotFound},
		{"Invalid type", "?type=transfer", http.StatusBadRequest},
		{"Invalid book ID", "?book=NotAUUID", http.StatusBadRequest},
		{"Unknown book", "?book=" + uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			categories := suite.getCategories(t, tt.query, tt.status)
			assert.NotNil(t, categories.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	suite.signIn(suite.T())
	suite.createTestBook(suite.T(), v1.BookEditable{})
	travel := suite.createTestBook(suite.T(), v1.BookEditable{Name: "Travel"})

	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{
		BookID: travel.Data.ID,
		Name:   "Flights",
		Icon:   "spaceship",
	})
	require.NotNil(suite.T(), category.Data)
	assert.Equal(suite.T(), "Flights", category.Data.Name)
	assert.Equal(suite.T(), "question", category.Data.Icon, "unknown icons must be replaced by the placeholder")

	categories := suite.getCategories(suite.T(), "?book="+travel.Data.ID.String(), http.StatusOK)
	require.Len(suite.T(), categories.Data, 1)
	assert.Equal(suite.T(), category.Data.ID, categories.Data[0].ID)

	// The default book is unchanged
	assert.Len(suite.T(), suite.getCategories(suite.T(), "", http.StatusOK).Data, 12)
}

func (suite *TestSuiteStandard) TestCategoriesCreateInvalid() {
	suite.signIn(suite.T())
	book := suite.createTestBook(suite.T(), v1.BookEditable{})

	tests := []struct {
		name     string
		editable v1.CategoryEditable
		status   int
	}{
		{"Unknown book", v1.CategoryEditable{BookID: uuid.New()}, http.StatusNotFound},
		{"Invalid type", v1.CategoryEditable{BookID: book.Data.ID, Type: "transfer"}, http.StatusBadRequest},
		{"Duplicate name", v1.CategoryEditable{BookID: book.Data.ID, Name: "Food"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTestCategory(t, tt.editable, tt.status)
			assert.NotNil(t, response.Error)
		})
	}
}
