package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
)

// RegisterEntryRoutes registers the routes for entry forms with
// the RouterGroup that is passed.
func (co Controller) RegisterEntryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsEntryList)
	r.POST("", co.CreateEntry)

	r.OPTIONS("/:id", OptionsEntryDetail)
	r.GET("/:id", co.GetEntry)
	r.PATCH("/:id", co.UpdateEntry)
	r.DELETE("/:id", co.DeleteEntry)

	r.OPTIONS("/:id/submit", OptionsEntrySubmit)
	r.POST("/:id/submit", co.SubmitEntry)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func OptionsEntryList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [options]
func OptionsEntryDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id}/submit [options]
func OptionsEntrySubmit(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create entry form
// @Description	Creates an entry form and loads the categories of the default book.
// @Description	Failures to load the categories are reported as alerts in the events of the entry form.
// @Tags			Entries
// @Produce		json
// @Success		201	{object}	EntryResponse
// @Router			/v1/entries [post]
func (co Controller) CreateEntry(c *gin.Context) {
	form, outbox := co.Entries.Create()
	form.Mount(c.Request.Context())

	data := co.newEntry(c, form, outbox)
	c.JSON(http.StatusCreated, EntryResponse{Data: &data})
}

// @Summary		Get entry form
// @Description	Returns the state of an entry form
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryResponse
// @Failure		400	{object}	EntryResponse
// @Failure		404	{object}	EntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [get]
func (co Controller) GetEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{Error: &s})
		return
	}

	form, outbox, err := co.Entries.Get(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{Error: &s})
		return
	}

	data := co.newEntry(c, form, outbox)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Update entry form
// @Description	Applies one action to an entry form
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			action	body		EntryAction	true	"Action"
// @Router			/v1/entries/{id} [patch]
func (co Controller) UpdateEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{Error: &s})
		return
	}

	form, outbox, err := co.Entries.Get(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{Error: &s})
		return
	}

	var action EntryAction
	err = httputil.BindData(c, &action)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{Error: &s})
		return
	}

	err = action.apply(form)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{Error: &s})
		return
	}

	data := co.newEntry(c, form, outbox)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Delete entry form
// @Description	Unmounts and deletes an entry form. Category loads still in flight are discarded.
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [delete]
func (co Controller) DeleteEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Entries.Remove(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Submit entry form
// @Description	Stores a transaction for the entry form. Expenses are stored with a negative amount, income with a positive one.
// @Description	Without a signed in user or a book, nothing is stored and the outcome is "aborted".
// @Description	Other failures have the outcome "failed" and are reported as alerts in the events of the entry form.
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntrySubmitResponse
// @Failure		400	{object}	EntrySubmitResponse
// @Failure		404	{object}	EntrySubmitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id}/submit [post]
func (co Controller) SubmitEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntrySubmitResponse{Error: &s})
		return
	}

	form, outbox, err := co.Entries.Get(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntrySubmitResponse{Error: &s})
		return
	}

	result := form.Submit(c.Request.Context())

	c.JSON(http.StatusOK, EntrySubmitResponse{Data: &EntrySubmission{
		Result: result,
		Entry:  co.newEntry(c, form, outbox),
	}})
}
