package handlers

import (
	"errors"
	"net/http"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/service"

	"github.com/gin-gonic/gin"
)

// Operator-facing messages, as the kiosk page shows them.
const (
	msgRangeRequired   = "Vui lòng chọn đủ ngày bắt đầu và kết thúc!"
	msgCustomDate      = "Chọn ngày!"
	msgPlateRequired   = "Vui lòng nhập biển số!"
	msgInvalidAction   = "Lệnh không hợp lệ"
	msgInvalidDate     = "invalid date; use YYYY-MM-DD"
	msgUnknownPeriod   = "unknown revenue period"
	msgNotConfirmed    = "delete must be confirmed with confirm=true"
	msgBoardStopped    = "board is not running"
	msgHistoryFailed   = "failed to load history"
	msgVehiclesFailed  = "failed to load registered vehicles"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// validationStatus maps the errors raised before any backend call to a 400
// and its message. ok is false for every other error.
func validationStatus(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, board.ErrIncompleteRange):
		return msgRangeRequired, true
	case errors.Is(err, service.ErrInvalidDate):
		return msgInvalidDate, true
	case errors.Is(err, board.ErrUnknownPeriod):
		return msgUnknownPeriod, true
	case errors.Is(err, service.ErrPlateRequired):
		return msgPlateRequired, true
	case errors.Is(err, service.ErrNotConfirmed):
		return msgNotConfirmed, true
	case errors.Is(err, service.ErrUnknownAction):
		return msgInvalidAction, true
	}
	return "", false
}

// respondError writes a validation error as 400, a stopped board as 503 and
// anything else as 502 with fallback as the message.
func (h *Handler) respondError(c *gin.Context, fallback, logKey string, err error, kv ...interface{}) {
	if msg, ok := validationStatus(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if errors.Is(err, dispatch.ErrStopped) {
		h.logAndJSONError(c, http.StatusServiceUnavailable, msgBoardStopped, logKey, err, kv...)
		return
	}
	h.logAndJSONError(c, http.StatusBadGateway, fallback, logKey, err, kv...)
}

// respondOutcome writes an operator outcome. A failed backend call still
// carries the outcome so the page can show its message.
func (h *Handler) respondOutcome(c *gin.Context, out service.Outcome, err error, logKey string, kv ...interface{}) {
	if err != nil {
		if msg, ok := validationStatus(err); ok {
			c.JSON(http.StatusBadRequest, service.Outcome{Message: msg})
			return
		}
		if h.log != nil {
			h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(http.StatusBadGateway, out)
		return
	}
	c.JSON(http.StatusOK, out)
}
