package handlers

import (
	"context"
	"errors"
	"net/http"

	"betterrest/internal/models"
	"betterrest/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Get form
// @Description  Current wake time, desired sleep and coffee intake. Defaults for a new user.
// @Tags         form
// @Produce      json
// @Success      200  {object}  models.Form
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/form [get]
// @Security     BearerAuth
func (h *Handler) getForm(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	f, err := h.services.Form.Get(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadForm, "form_get_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, f)
}

// @Summary      Replace form
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body      InputsRequest  true  "Form values"
// @Success      200   {object}  models.Form
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/form [put]
// @Security     BearerAuth
func (h *Handler) replaceForm(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req InputsRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	in, err := req.toInputs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	f, err := h.services.Form.Replace(c.Request.Context(), userID, in)
	h.respondForm(c, userID, f, err)
}

// @Summary      Step desired sleep
// @Description  Moves desired sleep by steps×0.25 h, clamped to 4..12.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body      StepRequest  true  "Steps"
// @Success      200   {object}  models.Form
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/form/sleep/step [post]
// @Security     BearerAuth
func (h *Handler) stepSleep(c *gin.Context) {
	h.step(c, h.services.Form.StepSleep)
}

// @Summary      Step coffee intake
// @Description  Moves coffee intake by steps cups, clamped to 0..10.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body      StepRequest  true  "Steps"
// @Success      200   {object}  models.Form
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/form/coffee/step [post]
// @Security     BearerAuth
func (h *Handler) stepCoffee(c *gin.Context) {
	h.step(c, h.services.Form.StepCoffee)
}

func (h *Handler) step(c *gin.Context, fn func(ctx context.Context, userID, steps int) (models.Form, error)) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var req StepRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	f, err := fn(c.Request.Context(), userID, req.Steps)
	h.respondForm(c, userID, f, err)
}

func (h *Handler) respondForm(c *gin.Context, userID int, f models.Form, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, f)
	case errors.Is(err, service.ErrInvalidForm):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveForm, "form_save_failed", err, "user_id", userID)
	}
}
