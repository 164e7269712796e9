package v1_test

import (
	"net/http"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSessionNotSignedIn() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/session", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.SignedIn)
	assert.Equal(suite.T(), "", response.Data.UserID)
}

func (suite *TestSuiteStandard) TestSessionSignIn() {
	signedIn := suite.signIn(suite.T())
	require.NotNil(suite.T(), signedIn.Data)
	assert.True(suite.T(), signedIn.Data.SignedIn)
	assert.Equal(suite.T(), "guest", signedIn.Data.LoginMethod)
	assert.NotEmpty(suite.T(), signedIn.Data.UserID)

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/session", "")
	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), *signedIn.Data, *response.Data)

	// Signing in again keeps the user
	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/session", v1.SignIn{Method: "line"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), signedIn.Data.UserID, response.Data.UserID)
	assert.Equal(suite.T(), "line", response.Data.LoginMethod)
}

func (suite *TestSuiteStandard) TestSessionSignInInvalid() {
	for _, body := range []any{"", v1.SignIn{Method: "myspace"}, `{"method": 12}`} {
		r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/session", body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.SessionResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.NotNil(suite.T(), response.Error)
	}
}
