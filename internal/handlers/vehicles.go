package handlers

import (
	"net/http"
	"strconv"

	"parking_kiosk/internal/models"

	"github.com/gin-gonic/gin"
)

// AddVehicleRequest is an exported model for Swagger docs of the addVehicle payload.
type AddVehicleRequest struct {
	// Plate as printed, e.g. 30A-12345. Required.
	Plate string `json:"plate" example:"30A-12345"`
	// Owner name
	Owner string `json:"owner" example:"Nguyen Van A"`
	// Vehicle type shown in the table
	Type string `json:"type" example:"Car"`
}

// @Summary      List registered vehicles
// @Tags         vehicles
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, vehicles"
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	list, err := h.services.ListVehicles(c.Request.Context())
	if err != nil {
		h.respondError(c, msgVehiclesFailed, "vehicles_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(list),
		"vehicles": list,
	})
}

// @Summary      Register a vehicle
// @Description  A blank plate is rejected before the backend is called. ok=false carries the backend's reason.
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body  AddVehicleRequest  true  "Vehicle"
// @Success      200  {object}  service.Outcome
// @Failure      400  {object}  service.Outcome
// @Failure      502  {object}  service.Outcome
// @Router       /api/v1/vehicles [post]
// @Security     BearerAuth
func (h *Handler) addVehicle(c *gin.Context) {
	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	out, err := h.services.AddVehicle(c.Request.Context(), models.VehicleInput{
		Plate: req.Plate,
		Owner: req.Owner,
		Type:  req.Type,
	})
	h.respondOutcome(c, out, err, "vehicle_add_failed", "plate", req.Plate)
}

// @Summary      Delete a registered vehicle
// @Description  Must be confirmed with confirm=true. The list is refreshed whatever the backend answers.
// @Tags         vehicles
// @Produce      json
// @Param        plate    path   string  true   "Plate"
// @Param        confirm  query  bool    true   "Operator confirmation"
// @Success      200  {object}  service.Outcome
// @Failure      400  {object}  service.Outcome
// @Failure      502  {object}  service.Outcome
// @Router       /api/v1/vehicles/{plate} [delete]
// @Security     BearerAuth
func (h *Handler) removeVehicle(c *gin.Context) {
	plate := c.Param("plate")
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	out, err := h.services.RemoveVehicle(c.Request.Context(), plate, confirmed)
	h.respondOutcome(c, out, err, "vehicle_delete_failed", "plate", plate)
}
