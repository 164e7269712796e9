package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/session"
)

type SignIn struct {
	Method session.Method `json:"method" example:"guest"` // The sign in method, one of facebook, google, line, apple or guest
}

type SessionResponse struct {
	Data  *session.Status `json:"data"`                                                        // Status of the session
	Error *string         `json:"error" example:"the sign in method is not supported"` // The error, if any occurred
}

// RegisterSessionRoutes registers the routes for the session with
// the RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSession)
	r.GET("", co.GetSession)
	r.POST("", co.CreateSession)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session [options]
func OptionsSession(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get session
// @Description	Returns whether a user is signed in
// @Tags			Session
// @Produce		json
// @Success		200	{object}	SessionResponse
// @Failure		500	{object}	SessionResponse
// @Router			/v1/session [get]
func (co Controller) GetSession(c *gin.Context) {
	s, err := co.Session.Status(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &s})
}

// @Summary		Sign in
// @Description	Signs in with the given method. A user is created on the first sign in.
// @Tags			Session
// @Accept			json
// @Produce		json
// @Success		200		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			signIn	body		SignIn	true	"Sign in method"
// @Router			/v1/session [post]
func (co Controller) CreateSession(c *gin.Context) {
	var signIn SignIn
	err := httputil.BindData(c, &signIn)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	s, err := co.Session.SignIn(c.Request.Context(), signIn.Method)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &s})
}
