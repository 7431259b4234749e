package handlers

import (
	"github.com/gin-gonic/gin"
)

// @Summary      Open a barrier
// @Description  The backend's message is returned verbatim; a transport failure yields "Lỗi kết nối Server!".
// @Tags         control
// @Produce      json
// @Param        action  path  string  true  "Action"  Enums(open_entry,open_exit)
// @Success      200  {object}  service.Outcome
// @Failure      400  {object}  service.Outcome
// @Failure      502  {object}  service.Outcome
// @Router       /api/v1/control/{action} [post]
// @Security     BearerAuth
func (h *Handler) triggerControl(c *gin.Context) {
	action := c.Param("action")
	out, err := h.services.Trigger(c.Request.Context(), action)
	h.respondOutcome(c, out, err, "control_failed", "action", action)
}
