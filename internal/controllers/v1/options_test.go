package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	id := uuid.NewString()

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/", "OPTIONS, GET"},
		{"http://example.com/version", "OPTIONS, GET"},
		{"http://example.com/healthz", "OPTIONS, GET"},
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/preferences/locale", "OPTIONS, GET, PUT"},
		{"http://example.com/v1/locale", "OPTIONS, GET"},
		{"http://example.com/v1/session", "OPTIONS, GET, POST"},
		{"http://example.com/v1/books", "OPTIONS, GET, POST"},
		{"http://example.com/v1/books/default", "OPTIONS, GET"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/entries", "OPTIONS, POST"},
		{"http://example.com/v1/entries/" + id, "OPTIONS, GET, PATCH, DELETE"},
		{"http://example.com/v1/entries/" + id + "/submit", "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsUnknownPreference() {
	recorder := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/preferences/theme", "")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := suite.request(suite.T(), http.MethodDelete, "http://example.com/v1/books", "")
	assert.Equal(suite.T(), http.StatusMethodNotAllowed, recorder.Code)
}
