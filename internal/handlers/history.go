package handlers

import (
	"errors"
	"net/http"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/models"

	"github.com/gin-gonic/gin"
)

func rangeFromQuery(c *gin.Context) models.DateRange {
	return models.DateRange{Start: c.Query("start"), End: c.Query("end")}
}

// @Summary      Filter history
// @Description  Fetches the history for [start, end] and re-renders the table, revenue and chart. Without both dates the backend's latest set is fetched.
// @Tags         history
// @Produce      json
// @Param        start  query  string  false  "First day (YYYY-MM-DD)"  example(2024-05-01)
// @Param        end    query  string  false  "Last day (YYYY-MM-DD)"   example(2024-05-31)
// @Success      200  {object}  map[string]interface{}  "filter, rows, revenue"
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/history [post]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	rng := rangeFromQuery(c)
	if err := h.services.FetchHistory(c.Request.Context(), rng); err != nil {
		h.respondError(c, msgHistoryFailed, "history_fetch_failed", err, "start", rng.Start, "end", rng.End)
		return
	}
	h.respondHistory(c)
}

// @Summary      Reset history filter
// @Tags         history
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/history/reset [post]
// @Security     BearerAuth
func (h *Handler) resetHistory(c *gin.Context) {
	if err := h.services.ResetHistory(c.Request.Context()); err != nil {
		h.respondError(c, msgHistoryFailed, "history_reset_failed", err)
		return
	}
	h.respondHistory(c)
}

// @Summary      Search history by plate
// @Description  Filters the cached history without a refetch. Revenue is not touched.
// @Tags         history
// @Produce      json
// @Param        plate  query  string  false  "Plate substring"  example(30A)
// @Success      202  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/history/search [post]
// @Security     BearerAuth
func (h *Handler) searchHistory(c *gin.Context) {
	term := c.Query("plate")
	if err := h.services.SearchHistory(term); err != nil {
		h.respondError(c, msgHistoryFailed, "history_search_failed", err, "plate", term)
		return
	}
	// Applied asynchronously; the filtered rows arrive over /ws.
	c.JSON(http.StatusAccepted, gin.H{"search": term})
}

// @Summary      Revenue for a period
// @Description  today, yesterday, this_month, or custom with start and end.
// @Tags         history
// @Produce      json
// @Param        period  path   string  true   "Period"  Enums(today,yesterday,this_month,custom)
// @Param        start   query  string  false  "First day for custom (YYYY-MM-DD)"
// @Param        end     query  string  false  "Last day for custom (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}  "title, range, revenue, chart"
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/revenue/{period} [post]
// @Security     BearerAuth
func (h *Handler) fetchRevenue(c *gin.Context) {
	period := c.Param("period")
	view, err := h.services.FetchRevenue(c.Request.Context(), period, rangeFromQuery(c))
	if err != nil {
		if period == board.PeriodCustom && errors.Is(err, board.ErrIncompleteRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgCustomDate})
			return
		}
		h.respondError(c, msgHistoryFailed, "revenue_fetch_failed", err, "period", period)
		return
	}
	snap := h.services.Board()
	c.JSON(http.StatusOK, gin.H{
		"title":         view.Title,
		"range":         view.Range,
		"revenue":       snap.Revenue,
		"revenue_total": snap.RevenueTotal,
		"chart":         snap.Chart,
	})
}

func (h *Handler) respondHistory(c *gin.Context) {
	snap := h.services.Board()
	c.JSON(http.StatusOK, gin.H{
		"filter":        snap.Filter,
		"rows":          snap.Rows,
		"revenue":       snap.Revenue,
		"revenue_total": snap.RevenueTotal,
		"revenue_title": snap.RevenueTitle,
		"chart":         snap.Chart,
	})
}
