package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"parking_kiosk/internal/service"
)

var errReversedRange = errors.New("'from' must be <= 'to'")

// journalLayouts are tried in order; the last one is date-only.
var journalLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// parseBound reads one journal bound in UTC. A date-only upper bound covers
// the whole day.
func parseBound(name, s string, upper bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for i, layout := range journalLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if upper && i == len(journalLayouts)-1 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid '%s' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD", name)
}

func journalFilter(c *gin.Context) (service.LogFilter, error) {
	from, err := parseBound("from", strings.TrimSpace(c.Query("from")), false)
	if err != nil {
		return service.LogFilter{}, err
	}
	to, err := parseBound("to", strings.TrimSpace(c.Query("to")), true)
	if err != nil {
		return service.LogFilter{}, err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return service.LogFilter{}, errReversedRange
	}
	return service.LogFilter{From: from, To: to, Type: c.Query("type")}, nil
}

// @Summary      List push journal
// @Description  Push events as the kiosk received them. A date-only 'to' covers the whole day.
// @Tags         journal
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2024-05-01)
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."  example(2024-05-31)
// @Param        type  query   string  false  "Event type"  Enums(CONNECT,DISCONNECT,NEW_LOG,SENSOR_UPDATE)
// @Success      200   {object}  map[string]interface{}  "count, entries"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/journal [get]
// @Security     BearerAuth
func (h *Handler) getJournal(c *gin.Context) {
	filter, err := journalFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.services.Entries(c.Request.Context(), filter)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load journal", "journal_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}
