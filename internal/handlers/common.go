package handlers

import (
	"net/http"

	"betterrest/internal/estimator"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errLoadForm        = "failed to load form"
	errSaveForm        = "failed to save form"
	errCalculate       = "failed to calculate bedtime"
	errLoadHistory     = "failed to load history"
	errUnauthorized    = "unauthorized"
	errInvalidBodyPref = "invalid body: "

	localeQuery = "locale"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// userOrAbort fetches the authenticated user id or writes a 401.
func userOrAbort(c *gin.Context) (int, bool) {
	id, ok := currentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
	}
	return id, ok
}

// clockFor picks the time format: ?locale= first, then Accept-Language,
// then the configured default.
func (h *Handler) clockFor(c *gin.Context) estimator.Clock {
	if loc := c.Query(localeQuery); loc != "" {
		return estimator.ClockForLocale(loc, h.clock)
	}
	return estimator.ClockForAcceptLanguage(c.GetHeader("Accept-Language"), h.clock)
}

// @Summary      Health check
// @Description  Reports liveness and the currently loaded model, if any.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := gin.H{"status": statusOK}
	if h.services != nil && h.services.Bedtime != nil {
		if info, ok := h.services.ModelInfo(); ok {
			resp["model"] = info
		}
	}
	c.JSON(http.StatusOK, resp)
}
