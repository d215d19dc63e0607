package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"betterrest/internal/models"
	"betterrest/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// @Summary      Calculate bedtime
// @Description  Estimates the ideal bedtime from the stored form, or from the body when one is sent.
// @Description  A failed estimate is still 200: the alert then carries the generic error message.
// @Tags         bedtime
// @Accept       json
// @Produce      json
// @Param        locale  query     string         false  "BCP 47 tag deciding 12h/24h output, overrides Accept-Language"  example(en-GB)
// @Param        body    body      InputsRequest  false  "Inputs overriding the stored form"
// @Success      200     {object}  service.Calculation
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/bedtime/calculate [post]
// @Security     BearerAuth
func (h *Handler) calculate(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}

	var override *models.UserInputs
	var req InputsRequest
	switch err := c.ShouldBindJSON(&req); {
	case errors.Is(err, io.EOF):
		// no body: use the stored form
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	default:
		in, err := req.toInputs()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}
		override = &in
	}

	calc, err := h.services.Calculate(c.Request.Context(), userID, override, h.clockFor(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCalculate, "bedtime_calculate_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, calc)
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List past calculations
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). A date-only 'to' is end-of-day inclusive.
// @Tags         bedtime
// @Produce      json
// @Param        from     query     string  false  "Start of range"  example(2025-08-01)
// @Param        to       query     string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        outcome  query     string  false  "Outcome"  Enums(success,failure)
// @Success      200      {object}  map[string]interface{}  "count, estimates"
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/v1/bedtime/history [get]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	userID, ok := userOrAbort(c)
	if !ok {
		return
	}
	var (
		from, to time.Time
		err      error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	records, err := h.services.History(c.Request.Context(), userID, service.HistoryFilter{
		From:    from,
		To:      to,
		Outcome: c.Query("outcome"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "bedtime_history_failed", err,
			"user_id", userID, "from", from, "to", to)
		return
	}
	if records == nil {
		records = []models.EstimateRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(records),
		"estimates": records,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
